package measurement

import (
	"image/color"

	"github.com/philipparndt/measurekit/pkg/geometry"
)

// LabelBackground is the fill behind a measurement value (white, 90% opaque)
var LabelBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 230}

// Label describes the text box drawn at the midpoint of a measurement
type Label struct {
	Text     string
	Center   geometry.Vec2 // Midpoint of the segment
	Color    color.RGBA    // Text color
	FontSize float64
	Padding  float64
}

// NewLabel builds the label of m for an image (or display area) of the
// given size. ok is false when the measurement is inactive or has no value.
func NewLabel(m Measurement, width, height, fontSize, padding float64) (Label, bool) {
	if !m.Active || m.Value == "" {
		return Label{}, false
	}

	start := m.Start.ToPixel(width, height)
	end := m.End.ToPixel(width, height)

	return Label{
		Text:     m.Value,
		Center:   start.Midpoint(end),
		Color:    m.Color(),
		FontSize: fontSize,
		Padding:  padding,
	}, true
}

// Box returns the background rectangle for a text of the given rendered
// width: the text extent plus half the padding on every side, centred on
// the label position
func (l Label) Box(textWidth float64) geometry.Rect {
	return LabelBox(l.Center, textWidth, l.FontSize, l.Padding)
}

// LabelBox returns the background rectangle of a label centred on mid
func LabelBox(mid geometry.Vec2, textWidth, fontSize, padding float64) geometry.Rect {
	return geometry.Rect{
		X:      mid.X - textWidth/2 - padding/2,
		Y:      mid.Y - fontSize/2 - padding/2,
		Width:  textWidth + padding,
		Height: fontSize + padding,
	}
}
