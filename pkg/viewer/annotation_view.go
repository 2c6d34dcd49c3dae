package viewer

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/internal/session"
	"github.com/philipparndt/measurekit/pkg/geometry"
	"go.uber.org/zap"
)

// AnnotationView shows the session image with draggable measurement
// overlays. Presses are hit tested by the session; moves and releases go
// through its pointer hub for as long as the gesture lasts, even outside
// the widget.
type AnnotationView struct {
	widget.BaseWidget
	session  *session.Controller
	image    *canvas.Image
	viewport Viewport
	items    []overlayItem
	objects  []fyne.CanvasObject
	pressed  bool
	onChange func()
	log      *zap.Logger
}

// NewAnnotationView creates a view for an open session
func NewAnnotationView(s *session.Controller, src image.Image, log *zap.Logger) *AnnotationView {
	if log == nil {
		log = zap.NewNop()
	}

	img := canvas.NewImageFromImage(src)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth

	b := src.Bounds()
	v := &AnnotationView{
		session: s,
		image:   img,
		viewport: Viewport{
			ImageWidth:  float64(b.Dx()),
			ImageHeight: float64(b.Dy()),
		},
		log: log,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange sets the callback run after a gesture changed the annotations
func (v *AnnotationView) SetOnChange(callback func()) {
	v.onChange = callback
}

// CreateRenderer creates the renderer for the widget
func (v *AnnotationView) CreateRenderer() fyne.WidgetRenderer {
	return &annotationRenderer{view: v}
}

// rebuild recomputes the overlay for the current size and annotations
func (v *AnnotationView) rebuild(size fyne.Size) {
	v.viewport.Width = float64(size.Width)
	v.viewport.Height = float64(size.Height)

	set := v.session.Snapshot()
	v.items = buildOverlay(&set, v.viewport, measureLabel)

	v.image.Resize(size)
	v.image.Move(fyne.NewPos(0, 0))

	v.objects = []fyne.CanvasObject{v.image}
	for _, item := range v.items {
		v.objects = append(v.objects, itemObjects(item)...)
	}
}

// layout returns the hit-test layout for the current overlay
func (v *AnnotationView) layout() (labels map[measurement.Kind]geometry.Rect) {
	labels = make(map[measurement.Kind]geometry.Rect)
	for _, item := range v.items {
		if item.HasLabel {
			labels[item.Kind] = item.LabelBox
		}
	}
	return labels
}

// MouseDown starts a gesture on whatever is under the pointer
func (v *AnnotationView) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}

	p := toVec2(event.Position)
	began, err := v.session.PointerDown(v.viewport.ToFrame(p), v.viewport.Layout(v.layout()))
	if err != nil {
		v.log.Debug("pointer down ignored", zap.Error(err))
		return
	}
	v.pressed = began
}

// MouseUp ends a press that never turned into a drag
func (v *AnnotationView) MouseUp(*desktop.MouseEvent) {
	v.release()
}

// Dragged feeds pointer moves to the gesture in progress
func (v *AnnotationView) Dragged(event *fyne.DragEvent) {
	if !v.pressed {
		return
	}

	p := v.viewport.ToPercent(toVec2(event.Position))
	if err := v.session.PointerMove(p); err != nil {
		v.log.Debug("pointer move ignored", zap.Error(err))
		return
	}
	v.Refresh()
}

// DragEnd ends the gesture, wherever the pointer was released
func (v *AnnotationView) DragEnd() {
	v.release()
}

func (v *AnnotationView) release() {
	if !v.pressed {
		return
	}
	v.pressed = false

	if err := v.session.PointerUp(); err != nil {
		v.log.Debug("pointer up ignored", zap.Error(err))
	}
	v.Refresh()

	if v.onChange != nil {
		v.onChange()
	}
}

func toVec2(p fyne.Position) geometry.Vec2 {
	return geometry.NewVec2(float64(p.X), float64(p.Y))
}

func toPos(v geometry.Vec2) fyne.Position {
	return fyne.NewPos(float32(v.X), float32(v.Y))
}

// measureLabel measures bold overlay text
func measureLabel(text string, size float64) float64 {
	return float64(fyne.MeasureText(text, float32(size), fyne.TextStyle{Bold: true}).Width)
}

// itemObjects builds the canvas objects of one measurement, back to front
func itemObjects(item overlayItem) []fyne.CanvasObject {
	var objects []fyne.CanvasObject

	for _, g := range item.Guides {
		objects = append(objects, newLine(g.Start, g.End, guideColor, 1))
	}

	objects = append(objects, newLine(item.Start, item.End, overlayBlack, lineWidth))

	for _, p := range []geometry.Vec2{item.Start, item.End} {
		handle := canvas.NewCircle(handleFill)
		handle.StrokeColor = overlayBlack
		handle.StrokeWidth = 2
		handle.Resize(fyne.NewSize(handleSize, handleSize))
		handle.Move(fyne.NewPos(float32(p.X-handleSize/2), float32(p.Y-handleSize/2)))
		objects = append(objects, handle)
	}

	if item.HasLabel {
		objects = append(objects, newBox(item.LabelBox, measurement.LabelBackground, overlayBlack))
		objects = append(objects, newText(item.Label, item.LabelBox, labelSize, overlayBlack))
	}

	if item.Straight {
		objects = append(objects, newBox(item.Badge, color.NRGBA{R: 220, G: 252, B: 231, A: 255}, badgeColor))
		objects = append(objects, newText(badgeText, item.Badge, badgeSize, badgeColor))
	}

	return objects
}

func newLine(from, to geometry.Vec2, col color.Color, width float32) *canvas.Line {
	line := canvas.NewLine(col)
	line.StrokeWidth = width
	line.Position1 = toPos(from)
	line.Position2 = toPos(to)
	return line
}

func newBox(r geometry.Rect, fill, stroke color.Color) *canvas.Rectangle {
	box := canvas.NewRectangle(fill)
	box.StrokeColor = stroke
	box.StrokeWidth = 1
	box.CornerRadius = 4
	box.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
	box.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	return box
}

func newText(s string, r geometry.Rect, size float64, col color.Color) *canvas.Text {
	text := canvas.NewText(s, col)
	text.TextSize = float32(size)
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter
	text.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
	text.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	return text
}

// annotationRenderer implements fyne.WidgetRenderer
type annotationRenderer struct {
	view *AnnotationView
	size fyne.Size
}

func (r *annotationRenderer) Layout(size fyne.Size) {
	r.size = size
	r.view.rebuild(size)
}

func (r *annotationRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *annotationRenderer) Refresh() {
	r.view.rebuild(r.size)
	canvas.Refresh(r.view)
}

func (r *annotationRenderer) Objects() []fyne.CanvasObject {
	return r.view.objects
}

func (r *annotationRenderer) Destroy() {}
