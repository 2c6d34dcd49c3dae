package measurement

import (
	"fmt"

	"github.com/philipparndt/measurekit/pkg/geometry"
)

// GeometryError reports a point outside the [0,100] plane. All mutators
// clamp, so this indicates a programming error rather than bad user input.
type GeometryError struct {
	Kind     Kind
	Endpoint Endpoint
	Point    geometry.Point
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("measurement %s %s point %s outside [0,100]", e.Kind, e.Endpoint, e.Point)
}
