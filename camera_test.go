package pinchzoom

import (
	"math"
	"testing"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.X != 400 || cam.Y != 300 {
		t.Errorf("position = (%f,%f), want viewport center (400,300)", cam.X, cam.Y)
	}
}

func TestCameraDefaultIsIdentity(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	for _, p := range []Vec2{{0, 0}, {123, 456}, {800, 600}} {
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		if !approxEqual(sx, p.X, epsilon) || !approxEqual(sy, p.Y, epsilon) {
			t.Errorf("WorldToScreen(%v) = (%f,%f), want unchanged", p, sx, sy)
		}
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 100
	cam.Y = 50
	cam.MarkDirty()
	sx, sy := cam.WorldToScreen(100, 50)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(100,50) with cam at (100,50) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Zoom = 2.0
	cam.MarkDirty()

	// At zoom 2, a point 1 unit from camera center should appear 2 pixels away
	sx1, _ := cam.WorldToScreen(401, 300)
	sx0, _ := cam.WorldToScreen(400, 300)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("screen distance at zoom 2 = %f, want 2.0", sx1-sx0)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		zoom     float64
		rotation float64
	}{
		{"identity", 400, 300, 1, 0},
		{"offset", 100, -50, 1, 0},
		{"zoomed", 250, 175, 2.5, 0},
		{"rotated", 400, 300, 1, math.Pi / 4},
		{"all", -30, 80, 0.5, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(Rect{Width: 800, Height: 600})
			cam.X, cam.Y = tt.x, tt.y
			cam.Zoom = tt.zoom
			cam.Rotation = tt.rotation
			cam.MarkDirty()

			sx, sy := cam.WorldToScreen(37, -12)
			wx, wy := cam.ScreenToWorld(sx, sy)
			if !approxEqual(wx, 37, 1e-6) || !approxEqual(wy, -12, 1e-6) {
				t.Errorf("round trip = (%f,%f), want (37,-12)", wx, wy)
			}
		})
	}
}

func TestCameraCachesUntilDirty(t *testing.T) {
	cam := NewCamera(Rect{Width: 200, Height: 200})
	cam.computeViewMatrix()
	cam.Zoom = 4
	// Without MarkDirty the cached matrix is still used.
	sx, _ := cam.WorldToScreen(110, 100)
	if !approxEqual(sx, 110, epsilon) {
		t.Errorf("cached WorldToScreen X = %f, want 110", sx)
	}
	cam.MarkDirty()
	sx, _ = cam.WorldToScreen(110, 100)
	if !approxEqual(sx, 140, epsilon) {
		t.Errorf("WorldToScreen X after MarkDirty = %f, want 140", sx)
	}
}
