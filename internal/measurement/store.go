package measurement

import (
	"github.com/philipparndt/measurekit/pkg/geometry"
)

// Toggle flips the active flag of kind. Geometry and value are untouched.
func (s *Set) Toggle(kind Kind) {
	s.items[kind].Active = !s.items[kind].Active
}

// SetActive sets the active flag of kind
func (s *Set) SetActive(kind Kind, active bool) {
	s.items[kind].Active = active
}

// SetValue replaces the label text verbatim. An empty string means no label.
func (s *Set) SetValue(kind Kind, text string) {
	s.items[kind].Value = text
}

// SetEndpoint replaces one endpoint with p clamped to the plane
func (s *Set) SetEndpoint(kind Kind, which Endpoint, p geometry.Point) {
	p = p.Clamp()
	if which == Start {
		s.items[kind].Start = p
	} else {
		s.items[kind].End = p
	}
}

// TranslateSegment moves the whole segment of kind so that it starts at
// newStart, keeping its displacement and settling against the plane edges
func (s *Set) TranslateSegment(kind Kind, newStart geometry.Point) {
	m := &s.items[kind]
	m.Start, m.End = geometry.TranslateSegment(m.Start, m.End, newStart)
}

// Straightness reports whether the segment of kind is displayed as
// horizontal and/or vertical. It is recomputed by tolerance on every call.
func (s *Set) Straightness(kind Kind) (horizontal, vertical bool) {
	m := s.items[kind]
	return geometry.IsHorizontal(m.Start, m.End), geometry.IsVertical(m.Start, m.End)
}

// IsStraight reports whether the segment of kind is horizontal or vertical
func (s *Set) IsStraight(kind Kind) bool {
	h, v := s.Straightness(kind)
	return h || v
}

// GuideLine returns the dashed guide drawn across the whole image when the
// segment of kind is straight: a full-width line at its height when it is
// horizontal, a full-height line at its x when vertical. ok is false when
// the segment is not straight.
func (s *Set) GuideLine(kind Kind) (from, to geometry.Point, ok bool) {
	m := s.items[kind]
	horizontal, vertical := s.Straightness(kind)
	if !horizontal && !vertical {
		return geometry.Point{}, geometry.Point{}, false
	}

	from = geometry.NewPoint(0, 0)
	to = geometry.NewPoint(100, 100)
	if vertical {
		from.X, to.X = m.Start.X, m.End.X
	}
	if horizontal {
		from.Y, to.Y = m.Start.Y, m.End.Y
	}
	return from, to, true
}

// Validate checks that every stored point lies within [0,100]. A failure
// means a caller bypassed the clamping mutators.
func (s *Set) Validate() error {
	for _, m := range s.items {
		for _, which := range []Endpoint{Start, End} {
			if p := m.Point(which); !p.InBounds() {
				return &GeometryError{Kind: m.Kind, Endpoint: which, Point: p}
			}
		}
	}
	return nil
}
