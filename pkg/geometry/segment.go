package geometry

// Segment represents a straight line between two points in display space
type Segment struct {
	Start Vec2
	End   Vec2
}

// NewSegment creates a new segment
func NewSegment(start, end Vec2) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the center of the segment
func (s Segment) Midpoint() Vec2 {
	return s.Start.Midpoint(s.End)
}

// Angle returns the direction from start to end, atan2(Δy, Δx)
func (s Segment) Angle() float64 {
	return s.End.Sub(s.Start).Angle()
}

// ClosestPoint returns the point on the segment nearest to p
func (s Segment) ClosestPoint(p Vec2) Vec2 {
	d := s.End.Sub(s.Start)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		return s.Start
	}

	t := p.Sub(s.Start).Dot(d) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.Start.Add(d.Mul(t))
}

// DistanceTo returns the shortest distance from p to the segment
func (s Segment) DistanceTo(p Vec2) float64 {
	return s.ClosestPoint(p).Distance(p)
}

// WithinCorridor reports whether p lies in the band of the given total width
// centred on the segment
func (s Segment) WithinCorridor(p Vec2, width float64) bool {
	return s.DistanceTo(p) <= width/2
}
