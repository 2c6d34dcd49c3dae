package drag

import (
	"sync"

	"github.com/philipparndt/measurekit/pkg/geometry"
)

// Listener receives pointer events for the duration of a gesture
type Listener interface {
	PointerMove(p geometry.Point)
	PointerUp()
}

// Hub is a global source of pointer move/up events. Subscribe registers a
// listener and returns the function that removes it again.
type Hub interface {
	Subscribe(l Listener) (release func())
}

// Broadcaster is an in-process Hub. Front-ends feed it every pointer
// move/up they observe, wherever it happens; only subscribed listeners
// (i.e. gestures in progress) receive them.
type Broadcaster struct {
	mu        sync.Mutex
	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewBroadcaster creates an empty broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers l until the returned release function is called.
// Calling release more than once has no further effect.
func (b *Broadcaster) Subscribe(l Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = l
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Broadcaster) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.listeners, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Subscribers returns the number of live subscriptions
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Move dispatches a pointer move to every subscriber
func (b *Broadcaster) Move(p geometry.Point) {
	for _, l := range b.snapshot() {
		l.PointerMove(p)
	}
}

// Up dispatches a pointer release to every subscriber. Subscribers usually
// release themselves while handling it.
func (b *Broadcaster) Up() {
	for _, l := range b.snapshot() {
		l.PointerUp()
	}
}

// snapshot copies the listeners so handlers may unsubscribe while iterating.
// Dispatch happens without holding the lock.
func (b *Broadcaster) snapshot() []Listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	ls := make([]Listener, 0, len(b.order))
	for _, id := range b.order {
		ls = append(ls, b.listeners[id])
	}
	return ls
}
