package measurement

import (
	"fmt"
	"image/color"

	"github.com/philipparndt/measurekit/pkg/geometry"
)

// Kind identifies one of the three fixed measurements of an annotation set
type Kind int

const (
	Width Kind = iota
	Height
	Depth
)

// Kinds lists every kind in drawing order
var Kinds = [...]Kind{Width, Height, Depth}

// kindCount is the number of fixed kinds
const kindCount = len(Kinds)

var kindKeys = [kindCount]string{"width", "height", "depth"}

// Localized display names
var kindLabels = [kindCount]string{"Ancho", "Alto", "Largo"}

// String returns the stable key of the kind ("width", "height", "depth")
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindKeys[k]
}

// Valid reports whether k is one of the fixed kinds
func (k Kind) Valid() bool {
	return k >= Width && k <= Depth
}

// Label returns the localized display name of the kind
func (k Kind) Label() string {
	return kindLabels[k]
}

// Color returns the fixed display color of the kind
func (k Kind) Color() color.RGBA {
	// All kinds currently draw in black
	return color.RGBA{0, 0, 0, 255}
}

// ParseKind resolves a kind from its key
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if kindKeys[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown measurement kind %q (want width, height or depth)", s)
}

// Endpoint selects one end of a measurement segment
type Endpoint int

const (
	Start Endpoint = iota
	End
)

func (e Endpoint) String() string {
	if e == Start {
		return "start"
	}
	return "end"
}

// Other returns the opposite endpoint
func (e Endpoint) Other() Endpoint {
	if e == Start {
		return End
	}
	return Start
}

// Measurement is a single dimension annotation: a segment between two
// percentage-space points with an optional text value
type Measurement struct {
	Kind   Kind
	Active bool           // Rendered and composited only when active
	Value  string         // Free-text label, e.g. "120 cm"; empty renders no label
	Start  geometry.Point // Always within [0,100]x[0,100]
	End    geometry.Point // May coincide with Start
}

// Color returns the display color of the measurement
func (m Measurement) Color() color.RGBA {
	return m.Kind.Color()
}

// Label returns the localized name of the measurement kind
func (m Measurement) Label() string {
	return m.Kind.Label()
}

// Point returns the requested endpoint
func (m Measurement) Point(which Endpoint) geometry.Point {
	if which == Start {
		return m.Start
	}
	return m.End
}

// Set holds exactly one measurement per kind for one editing session.
// It is a fixed array indexed by Kind, so entries are never added or removed.
type Set struct {
	items [kindCount]Measurement
}

// NewSet returns the default annotation set: every kind inactive with an
// empty value and its default geometry
func NewSet() *Set {
	s := &Set{}
	s.Reset()
	return s
}

// Reset restores the defaults
func (s *Set) Reset() {
	s.items = [kindCount]Measurement{
		Width: {
			Kind:  Width,
			Start: geometry.NewPoint(20, 90),
			End:   geometry.NewPoint(80, 90),
		},
		Height: {
			Kind:  Height,
			Start: geometry.NewPoint(10, 20),
			End:   geometry.NewPoint(10, 80),
		},
		Depth: {
			Kind:  Depth,
			Start: geometry.NewPoint(70, 70),
			End:   geometry.NewPoint(90, 85),
		},
	}
}

// Get returns a copy of the measurement for kind
func (s Set) Get(kind Kind) Measurement {
	return s.items[kind]
}

// All returns copies of all measurements in drawing order
func (s Set) All() [kindCount]Measurement {
	return s.items
}

// Snapshot returns an independent copy of the set
func (s *Set) Snapshot() Set {
	return *s
}

// ActiveCount returns the number of active measurements
func (s Set) ActiveCount() int {
	n := 0
	for _, m := range s.items {
		if m.Active {
			n++
		}
	}
	return n
}
