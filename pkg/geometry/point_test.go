package geometry

import (
	"math"
	"testing"
)

func TestClampRange(t *testing.T) {
	values := []float64{-1e9, -100, -0.0001, 0, 0.5, 42, 99.999, 100, 100.0001, 250, 1e9}

	for _, v := range values {
		c := Clamp(v)
		if c < 0 || c > 100 {
			t.Errorf("Clamp(%v) = %v, outside [0,100]", v, c)
		}
		if Clamp(c) != c {
			t.Errorf("Clamp is not idempotent for %v: %v then %v", v, c, Clamp(c))
		}
	}
}

func TestClampNonFinite(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{math.NaN(), MinPercent},
		{math.Inf(-1), MinPercent},
		{math.Inf(1), MaxPercent},
	}

	for _, tt := range tests {
		if got := Clamp(tt.input); got != tt.expected {
			t.Errorf("Clamp(%v): expected %v, got %v", tt.input, tt.expected, got)
		}
	}

	if p := NewPoint(math.NaN(), math.NaN()).Clamp(); !p.InBounds() {
		t.Errorf("clamped NaN point %v should be in bounds", p)
	}
}

func TestClampKeepsInteriorValues(t *testing.T) {
	for _, v := range []float64{0, 12.5, 50, 100} {
		if got := Clamp(v); got != v {
			t.Errorf("Clamp(%v) changed an in-range value to %v", v, got)
		}
	}
}

func TestPointClamp(t *testing.T) {
	p := NewPoint(-5, 120).Clamp()

	expected := NewPoint(0, 100)
	if p != expected {
		t.Errorf("Clamp failed: expected %v, got %v", expected, p)
	}
	if !p.InBounds() {
		t.Errorf("clamped point %v should be in bounds", p)
	}
	if NewPoint(100.01, 50).InBounds() {
		t.Error("point outside the plane reported as in bounds")
	}
}

func TestPointToPixel(t *testing.T) {
	tests := []struct {
		p             Point
		width, height float64
		expected      Vec2
	}{
		{NewPoint(20, 90), 1000, 1000, NewVec2(200, 900)},
		{NewPoint(50, 50), 640, 480, NewVec2(320, 240)},
		{NewPoint(33.3, 0), 3, 7, NewVec2(0.999, 0)},
		{NewPoint(100, 100), 1920, 1080, NewVec2(1920, 1080)},
	}

	for _, tt := range tests {
		got := tt.p.ToPixel(tt.width, tt.height)
		if math.Abs(got.X-tt.expected.X) > 1e-9 || math.Abs(got.Y-tt.expected.Y) > 1e-9 {
			t.Errorf("%v.ToPixel(%v, %v): expected %v, got %v", tt.p, tt.width, tt.height, tt.expected, got)
		}
	}
}

func TestFromPixelRoundTrip(t *testing.T) {
	p := NewPoint(37.5, 62.25)
	back := FromPixel(p.ToPixel(800, 600), 800, 600)

	if math.Abs(back.X-p.X) > 1e-10 || math.Abs(back.Y-p.Y) > 1e-10 {
		t.Errorf("round trip failed: expected %v, got %v", p, back)
	}

	if zero := FromPixel(NewVec2(10, 10), 0, 100); zero != (Point{}) {
		t.Errorf("FromPixel with empty area should be zero, got %v", zero)
	}
}
