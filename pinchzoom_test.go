package pinchzoom

import "testing"

func TestVec3Clamp(t *testing.T) {
	lo, hi := Vec3One, Splat3(2)
	tests := []struct {
		in, want Vec3
	}{
		{Vec3{0.5, 1.5, 3}, Vec3{1, 1.5, 2}},
		{Vec3{1, 2, 1}, Vec3{1, 2, 1}},
		{Splat3(-1), Vec3One},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(lo, hi); got != tt.want {
			t.Errorf("%v.Clamp = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVec3Compare(t *testing.T) {
	if !Splat3(2).GreaterEqAll(Vec3{2, 1, 2}) {
		t.Error("(2,2,2) >= (2,1,2) should hold")
	}
	if (Vec3{2, 1.9, 2}).GreaterEqAll(Splat3(2)) {
		t.Error("(2,1.9,2) >= (2,2,2) should not hold")
	}
	if !Vec3One.LessEqAll(Vec3One) {
		t.Error("(1,1,1) <= (1,1,1) should hold")
	}
	if (Vec3{1, 1.1, 1}).LessEqAll(Vec3One) {
		t.Error("(1,1.1,1) <= (1,1,1) should not hold")
	}
}

func TestLerp3Unclamped(t *testing.T) {
	got := Lerp3(Vec3One, Splat3(3), 1.5)
	if got != Splat3(4) {
		t.Errorf("Lerp3 t=1.5 = %v, want (4,4,4)", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(Vec2{0, 0}, Vec2{3, 4}); got != 5 {
		t.Errorf("Distance = %f, want 5", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: -10, Y: -10, Width: 20, Height: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{-10, 10, true},
		{10.01, 0, false},
		{0, -11, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if r.Min() != (Vec2{-10, -10}) || r.Max() != (Vec2{10, 10}) {
		t.Errorf("Min/Max = %v/%v", r.Min(), r.Max())
	}
}

func TestGestureTypeString(t *testing.T) {
	tests := map[GestureType]string{
		GesturePinchStart:   "pinch_start",
		GesturePinchUpdate:  "pinch_update",
		GesturePinchEnd:     "pinch_end",
		GestureScaleChanged: "scale_changed",
		GestureType(99):     "unknown",
	}
	for g, want := range tests {
		if got := g.String(); got != want {
			t.Errorf("GestureType(%d).String() = %q, want %q", uint8(g), got, want)
		}
	}
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	s := newSettings([]Option{WithLogger(nil)})
	if s.logger == nil {
		t.Error("WithLogger(nil) cleared the logger")
	}
}
