// Package drag interprets pointer gestures on an annotation set: grabbing
// an endpoint handle (with axis snapping) or translating a whole segment.
package drag

import (
	"fmt"

	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/pkg/geometry"
)

// State is the interaction mode of the machine
type State int

const (
	Idle State = iota
	DraggingEndpoint
	DraggingSegment
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingEndpoint:
		return "dragging-endpoint"
	case DraggingSegment:
		return "dragging-segment"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Handle is the part of a measurement grasped by the pointer
type Handle int

const (
	HandleStart Handle = iota
	HandleEnd
	HandleLine
)

func (h Handle) String() string {
	switch h {
	case HandleStart:
		return "start"
	case HandleEnd:
		return "end"
	case HandleLine:
		return "line"
	}
	return fmt.Sprintf("Handle(%d)", int(h))
}

// ParseHandle resolves a handle name ("start", "end", "line")
func ParseHandle(s string) (Handle, error) {
	for _, h := range []Handle{HandleStart, HandleEnd, HandleLine} {
		if h.String() == s {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown handle %q (want start, end or line)", s)
}

// endpoint maps an endpoint handle to the store's endpoint selector
func (h Handle) endpoint() measurement.Endpoint {
	if h == HandleStart {
		return measurement.Start
	}
	return measurement.End
}

// Context is the transient state of one gesture
type Context struct {
	Kind   measurement.Kind
	Handle Handle
	Offset geometry.Point // pointer at down minus segment start (HandleLine only)
}

// Machine applies pointer gestures to a measurement set. It holds a hub
// subscription exactly while a gesture is in progress.
type Machine struct {
	set     *measurement.Set
	hub     Hub
	ctx     *Context
	release func()
}

// NewMachine creates an idle machine operating on set. hub may be nil when
// the caller feeds PointerMove/PointerUp directly.
func NewMachine(set *measurement.Set, hub Hub) *Machine {
	return &Machine{set: set, hub: hub}
}

// State returns the current interaction mode
func (m *Machine) State() State {
	if m.ctx == nil {
		return Idle
	}
	if m.ctx.Handle == HandleLine {
		return DraggingSegment
	}
	return DraggingEndpoint
}

// Context returns the current gesture, if any
func (m *Machine) Context() (Context, bool) {
	if m.ctx == nil {
		return Context{}, false
	}
	return *m.ctx, true
}

// Begin starts a gesture on handle of kind with the pointer at p. It
// returns false when a gesture is already in progress or the measurement
// is inactive.
func (m *Machine) Begin(kind measurement.Kind, handle Handle, p geometry.Point) bool {
	if m.ctx != nil || !kind.Valid() || !m.set.Get(kind).Active {
		return false
	}

	ctx := &Context{Kind: kind, Handle: handle}
	if handle == HandleLine {
		ctx.Offset = p.Sub(m.set.Get(kind).Start)
	}
	m.ctx = ctx

	if m.hub != nil {
		m.release = m.hub.Subscribe(m)
	}
	return true
}

// PointerDown hit tests p (in display pixels of layout) against the active
// measurements and begins a gesture on whatever it grabbed
func (m *Machine) PointerDown(p geometry.Vec2, layout Layout) bool {
	target, ok := HitTest(m.set, p, layout)
	if !ok {
		return false
	}
	return m.Begin(target.Kind, target.Handle, layout.ToPercent(p))
}

// PointerMove updates the grasped measurement for a pointer at p
func (m *Machine) PointerMove(p geometry.Point) {
	if m.ctx == nil {
		return
	}

	kind := m.ctx.Kind
	if m.ctx.Handle == HandleLine {
		m.set.TranslateSegment(kind, p.Sub(m.ctx.Offset))
		return
	}

	which := m.ctx.Handle.endpoint()
	other := m.set.Get(kind).Point(which.Other())
	candidate := geometry.SnapToAxis(p.Clamp(), other, geometry.SnapThreshold)
	m.set.SetEndpoint(kind, which, candidate)
}

// PointerUp ends the gesture, wherever the pointer is released
func (m *Machine) PointerUp() {
	m.end()
}

// Cancel ends any gesture without further updates (session teardown)
func (m *Machine) Cancel() {
	m.end()
}

func (m *Machine) end() {
	m.ctx = nil
	if m.release != nil {
		release := m.release
		m.release = nil
		release()
	}
}
