package session

import (
	"fmt"

	"github.com/philipparndt/measurekit/internal/drag"
	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Gesture is one recorded pointer event in display pixels. A down event may
// name the kind and handle to grab instead of being hit tested.
type Gesture struct {
	Event  string  `yaml:"event"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Kind   string  `yaml:"kind,omitempty"`
	Handle string  `yaml:"handle,omitempty"`
}

// Pointer event names
const (
	EventDown = "down"
	EventMove = "move"
	EventUp   = "up"
)

// ParseTrace decodes a YAML list of gestures
func ParseTrace(data []byte) ([]Gesture, error) {
	var trace []Gesture
	if err := yaml.Unmarshal(data, &trace); err != nil {
		return nil, fmt.Errorf("failed to parse gesture trace: %w", err)
	}

	for i, g := range trace {
		switch g.Event {
		case EventDown, EventMove, EventUp:
		default:
			return nil, fmt.Errorf("gesture %d: unknown event %q", i, g.Event)
		}
		if (g.Kind == "") != (g.Handle == "") {
			return nil, fmt.Errorf("gesture %d: kind and handle must be given together", i)
		}
	}
	return trace, nil
}

// Replay feeds a recorded trace through the session as if it came from a
// display area described by layout. A trailing open gesture is released.
func (c *Controller) Replay(trace []Gesture, layout drag.Layout) error {
	for i, g := range trace {
		p := geometry.NewVec2(g.X, g.Y)

		var err error
		switch g.Event {
		case EventDown:
			err = c.replayDown(g, p, layout)
		case EventMove:
			err = c.PointerMove(layout.ToPercent(p))
		case EventUp:
			err = c.PointerUp()
		default:
			err = fmt.Errorf("unknown event %q", g.Event)
		}
		if err != nil {
			return fmt.Errorf("gesture %d: %w", i, err)
		}
	}

	return c.PointerUp()
}

func (c *Controller) replayDown(g Gesture, p geometry.Vec2, layout drag.Layout) error {
	if g.Kind == "" {
		_, err := c.PointerDown(p, layout)
		return err
	}

	kind, err := measurement.ParseKind(g.Kind)
	if err != nil {
		return err
	}
	handle, err := drag.ParseHandle(g.Handle)
	if err != nil {
		return err
	}
	_, err = c.Begin(kind, handle, layout.ToPercent(p))
	return err
}
