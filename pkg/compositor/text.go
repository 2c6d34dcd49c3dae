package compositor

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/philipparndt/measurekit/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	boldOnce sync.Once
	boldFont *opentype.Font
	boldErr  error
)

// labelFont returns the parsed bold sans-serif used for measurement values
func labelFont() (*opentype.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = opentype.Parse(gobold.TTF)
	})
	return boldFont, boldErr
}

// newLabelFace creates a face of the given pixel size
func newLabelFace(size float64) (font.Face, error) {
	f, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label face: %w", err)
	}
	return face, nil
}

// measureText returns the advance width of text in pixels
func measureText(face font.Face, text string) float64 {
	return fixedToFloat(font.MeasureString(face, text))
}

// drawTextCentered draws text with its horizontal center and the middle of
// its em box at center
func drawTextCentered(dst *image.RGBA, face font.Face, center geometry.Vec2, text string, col color.Color) {
	width := measureText(face, text)
	metrics := face.Metrics()

	// Baseline so that the ascent/descent box is vertically centred
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	baseline := center.Y + (ascent-descent)/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: toFixed(center.X - width/2),
			Y: toFixed(baseline),
		},
	}
	d.DrawString(text)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
