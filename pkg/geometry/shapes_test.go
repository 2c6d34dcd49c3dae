package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with legs 3 and 4
	tri := NewTriangle(NewVec2(0, 0), NewVec2(3, 0), NewVec2(0, 4))

	if math.Abs(tri.Area()-6) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", tri.Area())
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(NewVec2(0, 0), NewVec2(3, 0), NewVec2(0, 3))

	expected := NewVec2(1, 1)
	if tri.Center() != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, tri.Center())
	}
}

func TestArrowheadPointsBackAlongShaft(t *testing.T) {
	tip := NewVec2(800, 900)
	head := Arrowhead(tip, 0, 12)

	if head.A != tip {
		t.Errorf("tip should be the first vertex, got %v", head.A)
	}

	// Both wings sit behind the tip at 12*cos(30°) with ±12*sin(30°) spread
	back := 12 * math.Cos(math.Pi/6)
	for _, wing := range []Vec2{head.B, head.C} {
		if math.Abs(wing.X-(tip.X-back)) > 1e-9 {
			t.Errorf("wing x: expected %v, got %v", tip.X-back, wing.X)
		}
		if math.Abs(math.Abs(wing.Y-tip.Y)-6) > 1e-9 {
			t.Errorf("wing y offset: expected 6, got %v", math.Abs(wing.Y-tip.Y))
		}
		if math.Abs(wing.Distance(tip)-12) > 1e-9 {
			t.Errorf("wing length: expected 12, got %v", wing.Distance(tip))
		}
	}
}

func TestArrowheadReversedForStart(t *testing.T) {
	tip := NewVec2(200, 900)
	head := Arrowhead(tip, math.Pi, 12)

	if head.Center().X <= tip.X {
		t.Errorf("start arrowhead should open towards +x, centroid %v", head.Center())
	}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(NewVec2(10, 10), 8)

	if !c.Contains(NewVec2(15, 15)) {
		t.Error("expected point inside circle")
	}
	if !c.Contains(NewVec2(18, 10)) {
		t.Error("boundary point should be contained")
	}
	if c.Contains(NewVec2(18, 18)) {
		t.Error("expected point outside circle")
	}
	if n := len(c.Polygon(2)); n != 3 {
		t.Errorf("polygon should have at least 3 vertices, got %d", n)
	}
}

func TestSegmentDistance(t *testing.T) {
	s := NewSegment(NewVec2(0, 0), NewVec2(100, 0))

	tests := []struct {
		p        Vec2
		expected float64
	}{
		{NewVec2(50, 5), 5},
		{NewVec2(-3, 4), 5},
		{NewVec2(103, -4), 5},
		{NewVec2(20, 0), 0},
	}

	for _, tt := range tests {
		if got := s.DistanceTo(tt.p); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("DistanceTo(%v): expected %v, got %v", tt.p, tt.expected, got)
		}
	}

	if !s.WithinCorridor(NewVec2(50, 10), 20) {
		t.Error("point 10px from the line should be inside a 20px corridor")
	}
	if s.WithinCorridor(NewVec2(50, 10.5), 20) {
		t.Error("point 10.5px from the line should be outside a 20px corridor")
	}

	degenerate := NewSegment(NewVec2(5, 5), NewVec2(5, 5))
	if got := degenerate.DistanceTo(NewVec2(8, 9)); math.Abs(got-5) > 1e-10 {
		t.Errorf("degenerate segment distance: expected 5, got %v", got)
	}
}

func TestRect(t *testing.T) {
	r := RectFromPoints(NewVec2(10, 20), NewVec2(0, 5))

	if r != NewRect(0, 5, 10, 15) {
		t.Errorf("RectFromPoints not normalized: %+v", r)
	}
	if !r.Contains(NewVec2(10, 20)) || r.Contains(NewVec2(11, 20)) {
		t.Error("Contains failed on edges")
	}
	if r.Center() != NewVec2(5, 12.5) {
		t.Errorf("Center failed: %v", r.Center())
	}
	if !NewRect(0, 0, 0, 10).Empty() {
		t.Error("zero-width rect should be empty")
	}
}
