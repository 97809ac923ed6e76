package pinchzoom

import (
	"math"
	"testing"
)

func newTestScrollRect() *ScrollRect {
	viewport, content := newTestLayout()
	return NewScrollRect(viewport, content)
}

func TestNewScrollRectParentsContent(t *testing.T) {
	viewport := NewRectTransform(100, 100)
	content := NewRectTransform(300, 300)
	r := NewScrollRect(viewport, content)
	if content.Parent != viewport {
		t.Error("content was not parented to the viewport")
	}
	if !r.IsActive() || !r.Horizontal() || !r.Vertical() {
		t.Error("new scroll rect should be active with both axes enabled")
	}
	if r.Content() != content {
		t.Error("Content() returned a different transform")
	}
}

func TestScrollRectDrag(t *testing.T) {
	tests := []struct {
		name       string
		horizontal bool
		vertical   bool
		want       Vec2
	}{
		{"both axes", true, true, Vec2{30, 20}},
		{"horizontal only", true, false, Vec2{30, 0}},
		{"vertical only", false, true, Vec2{0, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestScrollRect()
			r.SetAxes(tt.horizontal, tt.vertical)
			p := pointer(0, 100, 100)

			r.OnBeginDrag(p)
			if !r.Dragging() {
				t.Fatal("Dragging = false after begin")
			}
			p.Position = Vec2{130, 120}
			r.OnDrag(p)
			if got := r.Content().AnchoredPosition; !vecApprox(got, tt.want, epsilon) {
				t.Errorf("AnchoredPosition = %v, want %v", got, tt.want)
			}
			r.OnEndDrag(p)
			if r.Dragging() {
				t.Error("Dragging = true after end")
			}
		})
	}
}

func TestScrollRectDragIgnoredWhenDisabled(t *testing.T) {
	r := newTestScrollRect()
	r.Disable()
	p := pointer(0, 100, 100)
	r.OnBeginDrag(p)
	p.Position = Vec2{150, 150}
	r.OnDrag(p)
	if r.Dragging() || r.Content().AnchoredPosition != (Vec2{}) {
		t.Error("disabled scroll rect moved its content")
	}
	r.Enable()
	if !r.IsActive() {
		t.Error("IsActive = false after Enable")
	}
}

func TestScrollRectInertia(t *testing.T) {
	r := newTestScrollRect()
	r.velocity = Vec2{600, 0}
	r.LateUpdate()

	keep := math.Pow(defaultDecelerationRate, defaultDeltaTime)
	wantV := 600 * keep
	if !approxEqual(r.Velocity().X, wantV, 1e-9) {
		t.Errorf("velocity = %f, want %f", r.Velocity().X, wantV)
	}
	if got := r.Content().AnchoredPosition.X; !approxEqual(got, wantV*defaultDeltaTime, 1e-9) {
		t.Errorf("position = %f, want %f", got, wantV*defaultDeltaTime)
	}
}

func TestScrollRectInertiaStops(t *testing.T) {
	r := newTestScrollRect()
	r.velocity = Vec2{0.5, -0.5}
	r.LateUpdate()
	if r.Velocity() != (Vec2{}) {
		t.Errorf("velocity = %v, want stopped below %v px/s", r.Velocity(), inertiaStopSpeed)
	}
}

func TestScrollRectWithoutInertia(t *testing.T) {
	r := newTestScrollRect()
	r.Inertia = false
	r.velocity = Vec2{600, 0}
	r.LateUpdate()
	if r.Velocity() != (Vec2{}) || r.Content().AnchoredPosition != (Vec2{}) {
		t.Error("content coasted with inertia disabled")
	}
}

func TestScrollRectVelocityEstimate(t *testing.T) {
	r := newTestScrollRect()
	p := pointer(0, 100, 100)
	r.OnBeginDrag(p)
	p.Position = Vec2{110, 100}
	r.OnDrag(p)
	r.LateUpdate()
	if r.Velocity().X <= 0 {
		t.Errorf("velocity = %v, want positive X after dragging right", r.Velocity())
	}

	// Refreshing the previous position hides the last move from the estimate.
	r.velocity = Vec2{}
	p.Position = Vec2{140, 100}
	r.OnDrag(p)
	r.UpdatePrevData()
	r.LateUpdate()
	if r.Velocity() != (Vec2{}) {
		t.Errorf("velocity = %v, want zero after UpdatePrevData", r.Velocity())
	}
}

func TestScrollRectInitializePotentialDrag(t *testing.T) {
	r := newTestScrollRect()
	r.velocity = Vec2{100, 100}
	r.OnInitializePotentialDrag(pointer(0, 0, 0))
	if r.Velocity() != (Vec2{}) {
		t.Errorf("velocity = %v, want zero", r.Velocity())
	}
}

func TestScrollRectBounds(t *testing.T) {
	r := newTestScrollRect()
	r.Content().Scale = Splat3(2)
	r.UpdateBounds()
	content, view := r.Bounds()
	if content != (Rect{X: -100, Y: -100, Width: 400, Height: 400}) {
		t.Errorf("content bounds = %+v", content)
	}
	if view != (Rect{Width: 200, Height: 200}) {
		t.Errorf("view bounds = %+v", view)
	}
}
