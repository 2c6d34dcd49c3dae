package geometry

import "math"

// ArrowSpread is the angle between an arrowhead wing and the shaft (30°)
const ArrowSpread = math.Pi / 6

// Triangle represents a 2D triangle in pixel space
type Triangle struct {
	A, B, C Vec2
}

// NewTriangle creates a new triangle from its three vertices
func NewTriangle(a, b, c Vec2) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Area returns the (unsigned) area of the triangle
func (t Triangle) Area() float64 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	return math.Abs(ab.X*ac.Y-ab.Y*ac.X) / 2
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vec2 {
	return Vec2{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// Vertices returns the vertices in drawing order
func (t Triangle) Vertices() [3]Vec2 {
	return [3]Vec2{t.A, t.B, t.C}
}

// Arrowhead returns the filled arrowhead with its tip at tip, pointing along
// angle (radians). The two wing vertices sit length behind the tip, rotated
// by ±ArrowSpread from the shaft.
//
// For the end of a segment pass the segment angle; for the start pass the
// reversed angle (angle + π).
func Arrowhead(tip Vec2, angle, length float64) Triangle {
	return Triangle{
		A: tip,
		B: tip.Sub(FromPolar(length, angle-ArrowSpread)),
		C: tip.Sub(FromPolar(length, angle+ArrowSpread)),
	}
}
