package drag

import (
	"math"
	"testing"

	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/pkg/geometry"
)

func TestHitTestPriorities(t *testing.T) {
	set := newActiveSet(measurement.Width)
	set.SetValue(measurement.Width, "120 cm")
	layout := Layout{
		Width:  1000,
		Height: 1000,
		Labels: map[measurement.Kind]geometry.Rect{
			measurement.Width: geometry.NewRect(450, 880, 100, 40),
		},
	}

	tests := []struct {
		name   string
		p      geometry.Vec2
		want   Target
		wantOK bool
	}{
		{"start handle", geometry.NewVec2(205, 903), Target{measurement.Width, HandleStart}, true},
		{"end handle", geometry.NewVec2(800, 900), Target{measurement.Width, HandleEnd}, true},
		{"label box", geometry.NewVec2(460, 885), Target{measurement.Width, HandleLine}, true},
		{"corridor", geometry.NewVec2(300, 909), Target{measurement.Width, HandleLine}, true},
		{"outside corridor", geometry.NewVec2(300, 911), Target{}, false},
		{"inactive height", geometry.NewVec2(100, 500), Target{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HitTest(set, tt.p, layout)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("expected %+v/%v, got %+v/%v", tt.want, tt.wantOK, got, ok)
			}
		})
	}
}

func TestHitTestEmptyLayout(t *testing.T) {
	set := newActiveSet(measurement.Width)
	if _, ok := HitTest(set, geometry.NewVec2(0, 0), Layout{}); ok {
		t.Error("empty layout must not hit anything")
	}
}

func TestPointerDownBeginsSegmentDrag(t *testing.T) {
	set := newActiveSet(measurement.Depth)
	m := NewMachine(set, nil)
	layout := Layout{Width: 1000, Height: 1000}

	// Midpoint of depth (70,70)..(90,85) is (800,775) in pixels
	if !m.PointerDown(geometry.NewVec2(800, 775), layout) {
		t.Fatal("expected the depth line to be grabbed")
	}

	ctx, _ := m.Context()
	if ctx.Handle != HandleLine || ctx.Kind != measurement.Depth {
		t.Fatalf("unexpected context %+v", ctx)
	}
	if math.Abs(ctx.Offset.X-10) > 1e-9 || math.Abs(ctx.Offset.Y-7.5) > 1e-9 {
		t.Errorf("expected offset (10,7.5), got %v", ctx.Offset)
	}
}

func TestParseHandle(t *testing.T) {
	if h, err := ParseHandle("line"); err != nil || h != HandleLine {
		t.Errorf("ParseHandle(line) = %v, %v", h, err)
	}
	if _, err := ParseHandle("middle"); err == nil {
		t.Error("expected error for unknown handle")
	}
}
