package viewer

import (
	"math"

	"github.com/philipparndt/measurekit/internal/drag"
	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/pkg/geometry"
)

// Viewport maps between widget coordinates and the letterboxed frame the
// image is shown in. Annotation percentages are relative to the frame.
type Viewport struct {
	ImageWidth, ImageHeight float64
	Width, Height           float64
}

// Frame returns the largest rectangle with the image aspect ratio centred
// in the widget
func (v Viewport) Frame() geometry.Rect {
	if v.ImageWidth <= 0 || v.ImageHeight <= 0 || v.Width <= 0 || v.Height <= 0 {
		return geometry.Rect{}
	}

	scale := math.Min(v.Width/v.ImageWidth, v.Height/v.ImageHeight)
	w := v.ImageWidth * scale
	h := v.ImageHeight * scale

	return geometry.NewRect((v.Width-w)/2, (v.Height-h)/2, w, h)
}

// ToFrame converts a widget position into frame pixels (unclamped)
func (v Viewport) ToFrame(p geometry.Vec2) geometry.Vec2 {
	f := v.Frame()
	return geometry.NewVec2(p.X-f.X, p.Y-f.Y)
}

// ToPercent converts a widget position into percentage space (unclamped)
func (v Viewport) ToPercent(p geometry.Vec2) geometry.Point {
	f := v.Frame()
	return geometry.FromPixel(v.ToFrame(p), f.Width, f.Height)
}

// ToWidget converts a percentage point into widget coordinates
func (v Viewport) ToWidget(p geometry.Point) geometry.Vec2 {
	f := v.Frame()
	return p.ToPixel(f.Width, f.Height).Add(geometry.NewVec2(f.X, f.Y))
}

// Layout returns the hit-test layout of the frame. labels are label boxes
// in widget coordinates and are shifted into frame pixels.
func (v Viewport) Layout(labels map[measurement.Kind]geometry.Rect) drag.Layout {
	f := v.Frame()
	layout := drag.Layout{
		Width:  f.Width,
		Height: f.Height,
		Labels: make(map[measurement.Kind]geometry.Rect, len(labels)),
	}
	for k, r := range labels {
		layout.Labels[k] = geometry.NewRect(r.X-f.X, r.Y-f.Y, r.Width, r.Height)
	}
	return layout
}
