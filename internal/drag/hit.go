package drag

import (
	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/pkg/geometry"
)

// Grab region sizes in display pixels
const (
	HandleRadius  = 8.0  // endpoint handles are 16px discs
	CorridorWidth = 20.0 // invisible hit band around the line
)

// Layout describes the display area the annotations are shown in
type Layout struct {
	Width, Height float64

	// Labels holds the on-screen label boxes, in display pixels, for kinds
	// showing a value. Missing entries are simply not hit tested.
	Labels map[measurement.Kind]geometry.Rect
}

// ToPercent converts a display position into percentage space (not clamped)
func (l Layout) ToPercent(p geometry.Vec2) geometry.Point {
	return geometry.FromPixel(p, l.Width, l.Height)
}

// Target is the result of a successful hit test
type Target struct {
	Kind   measurement.Kind
	Handle Handle
}

// HitTest finds what the pointer at p grabs. Endpoint handles take priority
// over label boxes, which take priority over line corridors; within a layer
// later kinds (drawn on top) win.
func HitTest(set *measurement.Set, p geometry.Vec2, layout Layout) (Target, bool) {
	if layout.Width <= 0 || layout.Height <= 0 {
		return Target{}, false
	}

	all := set.All()

	// Endpoint handles
	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		if !m.Active {
			continue
		}
		for _, h := range []Handle{HandleEnd, HandleStart} {
			center := m.Point(h.endpoint()).ToPixel(layout.Width, layout.Height)
			if geometry.NewCircle(center, HandleRadius).Contains(p) {
				return Target{Kind: m.Kind, Handle: h}, true
			}
		}
	}

	// Label boxes grab the whole segment
	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		if !m.Active || m.Value == "" {
			continue
		}
		if box, ok := layout.Labels[m.Kind]; ok && box.Contains(p) {
			return Target{Kind: m.Kind, Handle: HandleLine}, true
		}
	}

	// Line corridors
	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		if !m.Active {
			continue
		}
		seg := geometry.NewSegment(
			m.Start.ToPixel(layout.Width, layout.Height),
			m.End.ToPixel(layout.Width, layout.Height),
		)
		if seg.WithinCorridor(p, CorridorWidth) {
			return Target{Kind: m.Kind, Handle: HandleLine}, true
		}
	}

	return Target{}, false
}
