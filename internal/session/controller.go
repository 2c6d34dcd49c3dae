// Package session drives one editing session: it owns the decoded source
// image and the annotation set, routes pointer gestures through the drag
// machine, and composites saved output.
package session

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/philipparndt/measurekit/internal/drag"
	"github.com/philipparndt/measurekit/internal/logging"
	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/pkg/compositor"
	"github.com/philipparndt/measurekit/pkg/geometry"
	"go.uber.org/zap"
)

// State is the lifecycle state of a session
type State int

const (
	Loading State = iota
	Ready
	Saving
	Closed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Saving:
		return "saving"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller is a single editing session. Edits and pointer events come from
// one event loop; Save may run on another goroutine, and edits are rejected
// with ErrNotReady while it does.
type Controller struct {
	mu      sync.Mutex
	state   State
	name    string
	set     *measurement.Set
	machine *drag.Machine
	hub     *drag.Broadcaster
	src     *source
	asset   *Asset
	opts    compositor.Options
	log     *zap.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the session logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithName names the session in log output
func WithName(name string) Option {
	return func(c *Controller) {
		c.name = name
	}
}

// WithRenderOptions sets the compositor options used by Save
func WithRenderOptions(opts compositor.Options) Option {
	return func(c *Controller) {
		c.opts = opts
	}
}

// WithQuality overrides the JPEG quality of saved assets
func WithQuality(quality int) Option {
	return func(c *Controller) {
		c.opts.Quality = quality
	}
}

// WithHub shares a pointer broadcaster with the front-end, which may then
// feed moves and releases straight into it
func WithHub(hub *drag.Broadcaster) Option {
	return func(c *Controller) {
		c.hub = hub
	}
}

// WithSet starts the session from an existing annotation set instead of the
// defaults. The set is copied.
func WithSet(set *measurement.Set) Option {
	return func(c *Controller) {
		snapshot := set.Snapshot()
		c.set = &snapshot
	}
}

// Open decodes data and returns a Ready session. Unreadable bytes yield a
// *compositor.DecodeError.
func Open(data []byte, opts ...Option) (*Controller, error) {
	c := &Controller{
		state: Loading,
		name:  "session",
		opts:  compositor.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logging.OrNop(c.log).With(zap.String("session", c.name))
	if c.set == nil {
		c.set = measurement.NewSet()
	}
	if c.hub == nil {
		c.hub = drag.NewBroadcaster()
	}

	img, format, err := compositor.DecodeBytes(data)
	if err != nil {
		c.log.Warn("failed to open source", zap.Error(err))
		return nil, err
	}

	c.src = &source{img: img, format: format}
	c.machine = drag.NewMachine(c.set, guardedHub{c: c, hub: c.hub})
	c.state = Ready

	b := img.Bounds()
	c.log.Info("session opened",
		zap.String("format", format),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))

	return c, nil
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Hub returns the pointer broadcaster gestures subscribe to
func (c *Controller) Hub() *drag.Broadcaster {
	return c.hub
}

// Source returns the decoded source image
func (c *Controller) Source() (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Closed {
		return nil, ErrClosed
	}
	return c.src.img, nil
}

// Snapshot returns a copy of the current annotation set for display
func (c *Controller) Snapshot() measurement.Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Snapshot()
}

// DragState returns the state of the gesture machine
func (c *Controller) DragState() drag.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.State()
}

// ready must be called with c.mu held
func (c *Controller) ready() error {
	switch c.state {
	case Ready:
		return nil
	case Closed:
		return ErrClosed
	default:
		return ErrNotReady
	}
}

// edit runs fn on the set while Ready
func (c *Controller) edit(fn func(s *measurement.Set)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return err
	}
	fn(c.set)
	return nil
}

// Toggle flips whether kind is shown
func (c *Controller) Toggle(kind measurement.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("invalid measurement kind %d", int(kind))
	}
	return c.edit(func(s *measurement.Set) {
		s.Toggle(kind)
	})
}

// SetActive shows or hides kind
func (c *Controller) SetActive(kind measurement.Kind, active bool) error {
	if !kind.Valid() {
		return fmt.Errorf("invalid measurement kind %d", int(kind))
	}
	return c.edit(func(s *measurement.Set) {
		s.SetActive(kind, active)
	})
}

// SetValue replaces the label text of kind
func (c *Controller) SetValue(kind measurement.Kind, text string) error {
	if !kind.Valid() {
		return fmt.Errorf("invalid measurement kind %d", int(kind))
	}
	return c.edit(func(s *measurement.Set) {
		s.SetValue(kind, text)
	})
}

// Apply merges an annotation document into the set
func (c *Controller) Apply(doc *measurement.Document) error {
	return c.edit(doc.Apply)
}

// Begin starts a gesture explicitly, bypassing hit testing
func (c *Controller) Begin(kind measurement.Kind, handle drag.Handle, p geometry.Point) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return false, err
	}
	return c.machine.Begin(kind, handle, p), nil
}

// PointerDown hit tests a press at p (display pixels of layout) and starts a
// gesture on whatever it grabs
func (c *Controller) PointerDown(p geometry.Vec2, layout drag.Layout) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return false, err
	}
	began := c.machine.PointerDown(p, layout)
	if began {
		ctx, _ := c.machine.Context()
		c.log.Debug("gesture started",
			zap.Stringer("kind", ctx.Kind),
			zap.Stringer("handle", ctx.Handle))
	}
	return began, nil
}

// PointerMove forwards a pointer position (percent space, unclamped) to the
// gesture in progress
func (c *Controller) PointerMove(p geometry.Point) error {
	c.mu.Lock()
	err := c.ready()
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.hub.Move(p)
	return nil
}

// PointerUp ends the gesture in progress. It is accepted while saving so a
// release is never lost.
func (c *Controller) PointerUp() error {
	c.mu.Lock()
	closed := c.state == Closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	c.hub.Up()
	return nil
}

// Save composites the current annotations over the source and returns the
// new asset. The previous asset is released. A concurrent call returns
// ErrBusy; a rendering failure returns a *compositor.EncodeError and leaves
// the session Ready.
func (c *Controller) Save(ctx context.Context) (*Asset, error) {
	c.mu.Lock()
	switch c.state {
	case Saving:
		c.mu.Unlock()
		return nil, ErrBusy
	case Closed:
		c.mu.Unlock()
		return nil, ErrClosed
	case Ready:
	default:
		c.mu.Unlock()
		return nil, ErrNotReady
	}
	c.state = Saving
	snapshot := c.set.Snapshot()
	img := c.src.img
	opts := c.opts
	c.mu.Unlock()

	start := time.Now()
	data, out, err := render(ctx, img, &snapshot, opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Closed {
		c.log.Info("session closed during save, discarding output")
		return nil, ErrClosed
	}
	c.state = Ready

	if err != nil {
		c.log.Error("save failed", zap.Error(err))
		return nil, err
	}

	previous := c.asset
	c.asset = newAsset(data, out, func() {
		c.log.Debug("asset released", zap.Int("bytes", len(data)))
	})
	if previous != nil {
		previous.Release()
	}

	c.log.Info("session saved",
		zap.Int("bytes", len(data)),
		zap.Int("active", snapshot.ActiveCount()),
		zap.Duration("duration", time.Since(start)))

	return c.asset, nil
}

// SaveTo saves and hands the bytes to sink under name
func (c *Controller) SaveTo(ctx context.Context, sink Sink, name string) (*Asset, error) {
	asset, err := c.Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := sink.Put(ctx, name, asset.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", name, err)
	}
	return asset, nil
}

// SaveAndClose saves and closes the session. The returned asset belongs to
// the caller and is not released by Close.
func (c *Controller) SaveAndClose(ctx context.Context) (*Asset, error) {
	asset, err := c.Save(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.asset == asset {
		c.asset = nil
	}
	c.mu.Unlock()

	c.Close()
	return asset, nil
}

// Close cancels any gesture and releases the source and the current asset.
// It is safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Closed {
		return
	}
	c.state = Closed

	c.machine.Cancel()
	c.src.release(func() {
		c.log.Debug("source released")
	})
	if c.asset != nil {
		c.asset.Release()
		c.asset = nil
	}

	c.log.Info("session closed")
}

// render composites and encodes one snapshot
func render(ctx context.Context, img image.Image, set *measurement.Set, opts compositor.Options) ([]byte, *image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	out, err := compositor.Render(img, set, opts)
	if err != nil {
		return nil, nil, &compositor.EncodeError{Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	data, err := compositor.EncodeBytes(out, opts.Quality)
	if err != nil {
		return nil, nil, err
	}
	return data, out, nil
}
