package session

import (
	"github.com/philipparndt/measurekit/internal/drag"
	"github.com/philipparndt/measurekit/pkg/geometry"
)

// guardedHub subscribes gesture listeners behind the session lock, so
// events a front-end feeds straight into the broadcaster are serialized
// with Save and dropped outside Ready
type guardedHub struct {
	c   *Controller
	hub drag.Hub
}

func (h guardedHub) Subscribe(l drag.Listener) func() {
	return h.hub.Subscribe(guardedListener{c: h.c, l: l})
}

type guardedListener struct {
	c *Controller
	l drag.Listener
}

func (g guardedListener) PointerMove(p geometry.Point) {
	g.c.mu.Lock()
	defer g.c.mu.Unlock()

	if g.c.state != Ready {
		return
	}
	g.l.PointerMove(p)
}

func (g guardedListener) PointerUp() {
	g.c.mu.Lock()
	defer g.c.mu.Unlock()

	if g.c.state == Closed {
		return
	}
	g.l.PointerUp()
}
