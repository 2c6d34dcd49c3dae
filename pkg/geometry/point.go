package geometry

import (
	"fmt"
	"math"
)

// Percentage bounds of the annotation plane
const (
	MinPercent = 0.0
	MaxPercent = 100.0
)

// Point is a position expressed as a percentage of the displayed image
// width (X) and height (Y). Points stored in a measurement always lie in
// [0,100]x[0,100]; they are converted to pixels only when compositing.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// NewPoint creates a new percentage-space point (not clamped)
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Clamp limits v to [0,100]. NaN maps to MinPercent.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < MinPercent {
		return MinPercent
	}
	if v > MaxPercent {
		return MaxPercent
	}
	return v
}

// Clamp returns the point with both coordinates clamped to [0,100]
func (p Point) Clamp() Point {
	return Point{X: Clamp(p.X), Y: Clamp(p.Y)}
}

// InBounds reports whether both coordinates lie in [0,100]
func (p Point) InBounds() bool {
	return p.X >= MinPercent && p.X <= MaxPercent && p.Y >= MinPercent && p.Y <= MaxPercent
}

// Add returns the component-wise sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the displacement from other to p
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// ToPixel converts the point into absolute pixel coordinates of an image of
// the given size. No rounding is applied.
func (p Point) ToPixel(width, height float64) Vec2 {
	return Vec2{
		X: p.X / 100 * width,
		Y: p.Y / 100 * height,
	}
}

// FromPixel converts a pixel position within an area of the given size into
// percentage space. The result is not clamped.
func FromPixel(v Vec2, width, height float64) Point {
	if width <= 0 || height <= 0 {
		return Point{}
	}
	return Point{
		X: v.X / width * 100,
		Y: v.Y / height * 100,
	}
}

// String formats the point with two decimals
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
