// Package compositor burns measurement annotations into a raster image:
// strokes, arrowheads and label boxes scaled to the image resolution.
package compositor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/pkg/geometry"
)

// Reference resolution the style constants are expressed in
const referenceSize = 1000.0

// Style constants at the reference resolution
const (
	baseLineWidth   = 1.5
	baseFontSize    = 24.0
	baseArrowLength = 12.0
	basePadding     = 10.0

	// minFontSize keeps labels legible on very small images
	minFontSize = 6.0
)

// DefaultQuality is the JPEG quality used for composited output
const DefaultQuality = 95

// Options controls rendering and encoding
type Options struct {
	// Background fills the canvas before the source is drawn, so
	// transparent sources flatten the same way as any JPEG conversion
	Background color.Color

	// Quality is the JPEG quality (1-100)
	Quality int
}

// DefaultOptions returns white background and quality 95
func DefaultOptions() Options {
	return Options{
		Background: color.White,
		Quality:    DefaultQuality,
	}
}

func (o Options) withDefaults() Options {
	if o.Background == nil {
		o.Background = color.White
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	return o
}

// Style holds the resolution-dependent drawing sizes, all in pixels
type Style struct {
	Scale       float64
	LineWidth   float64
	FontSize    float64
	ArrowLength float64
	Padding     float64
}

// StyleFor derives the drawing sizes from the largest image dimension, so
// annotations look the same on small and large photos
func StyleFor(width, height int) Style {
	s := math.Max(float64(width), float64(height)) / referenceSize
	return Style{
		Scale:       s,
		LineWidth:   baseLineWidth * s,
		FontSize:    math.Max(baseFontSize*s, minFontSize),
		ArrowLength: baseArrowLength * s,
		Padding:     basePadding * s,
	}
}

// Render composites the active measurements of set over src. The result
// has the source's native pixel size; src is never modified.
func Render(src image.Image, set *measurement.Set, opts Options) (*image.RGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("no source image")
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	sb := src.Bounds()
	width, height := sb.Dx(), sb.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("source image is empty (%dx%d)", width, height)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), src, sb.Min, draw.Over)

	if set.ActiveCount() == 0 {
		return out, nil
	}

	style := StyleFor(width, height)
	r := newRasterizer(out)

	for _, m := range set.All() {
		if !m.Active {
			continue
		}
		if err := drawMeasurement(r, m, style, float64(width), float64(height)); err != nil {
			return nil, fmt.Errorf("failed to draw %s: %w", m.Kind, err)
		}
	}

	return out, nil
}

// drawMeasurement draws one segment with arrowheads and its value label
func drawMeasurement(r *rasterizer, m measurement.Measurement, style Style, width, height float64) error {
	start := m.Start.ToPixel(width, height)
	end := m.End.ToPixel(width, height)
	angle := geometry.NewSegment(start, end).Angle()
	col := m.Color()

	r.strokeLine(start, end, style.LineWidth, col)
	r.fillTriangle(geometry.Arrowhead(end, angle, style.ArrowLength), col)
	r.fillTriangle(geometry.Arrowhead(start, angle+math.Pi, style.ArrowLength), col)

	label, ok := measurement.NewLabel(m, width, height, style.FontSize, style.Padding)
	if !ok {
		return nil
	}

	face, err := newLabelFace(label.FontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	box := label.Box(measureText(face, label.Text))
	r.fillRect(box, measurement.LabelBackground)
	drawTextCentered(r.img, face, label.Center, label.Text, label.Color)

	return nil
}
