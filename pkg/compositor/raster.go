package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/measurekit/pkg/geometry"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// rasterizer draws anti-aliased vector shapes onto an RGBA image
type rasterizer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

func newRasterizer(img *image.RGBA) *rasterizer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(width, height, img, bounds)

	return &rasterizer{
		img:    img,
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

// strokeLine draws a straight line with butt caps. A zero-length line is
// drawn as a dot of the stroke width.
func (r *rasterizer) strokeLine(from, to geometry.Vec2, width float64, col color.Color) {
	if from.Distance(to) < 1e-9 {
		r.fillPolygon(geometry.NewCircle(from, width/2).Polygon(16), col)
		return
	}

	r.dasher.Clear()
	r.dasher.SetStroke(toFixed(width), 0, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.MiterClip, nil, 0)
	r.dasher.SetColor(col)
	r.dasher.Start(rasterx.ToFixedP(from.X, from.Y))
	r.dasher.Line(rasterx.ToFixedP(to.X, to.Y))
	r.dasher.Stop(false)
	r.dasher.Draw()
	r.dasher.Clear()
}

// fillTriangle fills a triangle
func (r *rasterizer) fillTriangle(t geometry.Triangle, col color.Color) {
	vertices := t.Vertices()
	r.fillPolygon(vertices[:], col)
}

// fillPolygon fills a closed polygon using the non-zero winding rule
func (r *rasterizer) fillPolygon(points []geometry.Vec2, col color.Color) {
	if len(points) < 3 {
		return
	}

	r.filler.Clear()
	r.filler.SetColor(col)
	r.filler.Start(rasterx.ToFixedP(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		r.filler.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	r.filler.Stop(true)
	r.filler.Draw()
	r.filler.Clear()
}

// fillRect composites a (possibly translucent) rectangle over the image.
// Edges are rounded to whole pixels.
func (r *rasterizer) fillRect(rect geometry.Rect, col color.Color) {
	area := image.Rect(
		int(math.Round(rect.X)),
		int(math.Round(rect.Y)),
		int(math.Round(rect.X+rect.Width)),
		int(math.Round(rect.Y+rect.Height)),
	).Intersect(r.img.Bounds())
	if area.Empty() {
		return
	}
	draw.Draw(r.img, area, image.NewUniform(col), image.Point{}, draw.Over)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
