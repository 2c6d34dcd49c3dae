package geometry

import "math"

// SnapThreshold is the distance (in percentage points) under which a dragged
// endpoint is aligned with the other endpoint of its segment.
const SnapThreshold = 1.5

// StraightTolerance is the distance under which a segment is displayed as
// straight (horizontal or vertical).
const StraightTolerance = 0.1

// SnapToAxis aligns moved with other when they are nearly level or plumb.
// The Y snap (horizontal segment) and the X snap (vertical segment) are
// evaluated independently, so both apply only when the points nearly coincide.
func SnapToAxis(moved, other Point, threshold float64) Point {
	snapped := moved

	// Horizontal snap: align Y
	if math.Abs(moved.Y-other.Y) < threshold {
		snapped.Y = other.Y
	}

	// Vertical snap: align X
	if math.Abs(moved.X-other.X) < threshold {
		snapped.X = other.X
	}

	return snapped
}

// TranslateSegment moves the segment start..end so that it begins at
// newStart, preserving the displacement end-start. When the translated end
// would leave the plane it is clamped and the start is recomputed from it, so
// a segment pushed against a wall settles there instead of shrinking.
func TranslateSegment(start, end, newStart Point) (Point, Point) {
	d := end.Sub(start)

	s := newStart.Clamp()
	e := s.Add(d).Clamp()

	// Re-derive start from the (possibly clamped) end
	s = e.Sub(d).Clamp()

	return s, e
}

// IsHorizontal reports whether a and b are level within StraightTolerance
func IsHorizontal(a, b Point) bool {
	return math.Abs(a.Y-b.Y) < StraightTolerance
}

// IsVertical reports whether a and b are plumb within StraightTolerance
func IsVertical(a, b Point) bool {
	return math.Abs(a.X-b.X) < StraightTolerance
}
