package geometry

import "math"

// Circle represents a circular region in display space, used for the
// grab area of endpoint handles
type Circle struct {
	Center Vec2    // Circle center
	Radius float64 // Circle radius
}

// NewCircle creates a new circle
func NewCircle(center Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Contains reports whether p lies inside or on the circle
func (c Circle) Contains(p Vec2) bool {
	return c.Center.Distance(p) <= c.Radius
}

// Polygon approximates the circle with n vertices (at least 3), in
// counter-clockwise order starting at angle 0
func (c Circle) Polygon(n int) []Vec2 {
	if n < 3 {
		n = 3
	}
	points := make([]Vec2, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = c.Center.Add(FromPolar(c.Radius, angle))
	}
	return points
}
