package viewer

import (
	"image/color"
	"math"

	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/pkg/geometry"
)

// Editor overlay styling in display pixels
const (
	lineWidth    = 2.0
	handleSize   = 2 * 8.0
	labelSize    = 14.0
	labelPadding = 8.0
	guideDash    = 6.0
	guideGap     = 4.0
	badgeSize    = 11.0
	badgeText    = "RECTO"
	badgeMargin  = 16.0
)

var (
	guideColor   = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
	handleFill   = color.White
	badgeColor   = color.NRGBA{R: 22, G: 163, B: 74, A: 255}
	overlayBlack = color.Black
)

// dashSegments splits from..to into dash-long pieces separated by gap
func dashSegments(from, to geometry.Vec2, dash, gap float64) []geometry.Segment {
	seg := geometry.NewSegment(from, to)
	length := seg.Length()
	if length == 0 || dash <= 0 {
		return nil
	}

	dir := to.Sub(from).Normalize()
	var out []geometry.Segment
	for pos := 0.0; pos < length; pos += dash + gap {
		end := pos + dash
		if end > length {
			end = length
		}
		out = append(out, geometry.NewSegment(from.Add(dir.Mul(pos)), from.Add(dir.Mul(end))))
	}
	return out
}

// overlayItem is the display geometry of one active measurement in widget
// coordinates
type overlayItem struct {
	Kind       measurement.Kind
	Start, End geometry.Vec2
	Label      string
	LabelBox   geometry.Rect
	HasLabel   bool
	Straight   bool
	Guides     []geometry.Segment
	Badge      geometry.Rect
}

// measureFunc returns the display width of text at the given size
type measureFunc func(text string, size float64) float64

// buildOverlay computes the overlay of every active measurement
func buildOverlay(set *measurement.Set, v Viewport, measure measureFunc) []overlayItem {
	var items []overlayItem
	f := v.Frame()
	if f.Empty() {
		return nil
	}

	for _, m := range set.All() {
		if !m.Active {
			continue
		}

		item := overlayItem{
			Kind:  m.Kind,
			Start: v.ToWidget(m.Start),
			End:   v.ToWidget(m.End),
			Label: m.Value,
		}

		if m.Value != "" {
			mid := item.Start.Midpoint(item.End)
			item.LabelBox = measurement.LabelBox(mid, measure(m.Value, labelSize), labelSize, labelPadding)
			item.HasLabel = true
		}

		if from, to, ok := set.GuideLine(m.Kind); ok {
			item.Straight = true
			item.Guides = dashSegments(v.ToWidget(from), v.ToWidget(to), guideDash, guideGap)
			item.Badge = badgeBox(item, measure(badgeText, badgeSize))
		}

		items = append(items, item)
	}
	return items
}

// badgeBox places the straight indicator centred above the midpoint, or
// above the label when there is one
func badgeBox(item overlayItem, textWidth float64) geometry.Rect {
	w := textWidth + labelPadding
	h := badgeSize + labelPadding/2
	mid := item.Start.Midpoint(item.End)

	bottom := mid.Y - badgeMargin
	if item.HasLabel {
		bottom = math.Min(bottom, item.LabelBox.Y-labelPadding/2)
	}
	return geometry.NewRect(mid.X-w/2, bottom-h, w, h)
}
