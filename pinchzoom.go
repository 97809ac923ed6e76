package pinchzoom

import "math"

// Vec2 is a 2D vector used for screen positions, local offsets, pivots and
// anchors. The coordinate system has its origin at the top-left, with Y
// increasing downward.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 { return b.Sub(a).Len() }

// lerp2 linearly interpolates each component of a and b.
func lerp2(a, b, t Vec2) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t.X, a.Y + (b.Y-a.Y)*t.Y}
}

// Vec3 is a 3-component vector used for content scale and scale bounds.
// Z is carried for parity with the X/Y axes; flat content keeps it at 1.
type Vec3 struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
	Z float64 `json:"z" mapstructure:"z"`
}

// Vec3One is the identity scale.
var Vec3One = Vec3{1, 1, 1}

// Splat3 returns a Vec3 with all components set to v.
func Splat3(v float64) Vec3 { return Vec3{v, v, v} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// LessEqAll reports whether every component of v is <= the matching
// component of o.
func (v Vec3) LessEqAll(o Vec3) bool {
	return v.X <= o.X && v.Y <= o.Y && v.Z <= o.Z
}

// GreaterEqAll reports whether every component of v is >= the matching
// component of o.
func (v Vec3) GreaterEqAll(o Vec3) bool {
	return v.X >= o.X && v.Y >= o.Y && v.Z >= o.Z
}

// Clamp clamps each component of v independently into [lo, hi].
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y), clamp(v.Z, lo.Z, hi.Z)}
}

// Lerp3 interpolates a toward b by t on every axis. t is not clamped.
func Lerp3(a, b Vec3, t float64) Vec3 {
	return Vec3{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t, a.Z + (b.Z-a.Z)*t}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// GestureType identifies a kind of gesture event forwarded to an EventStore.
type GestureType uint8

const (
	GesturePinchStart   GestureType = iota // second tracked pointer went down
	GesturePinchUpdate                     // a tracked pointer moved while pinching
	GesturePinchEnd                        // a tracked pointer lifted while pinching
	GestureScaleChanged                    // content scale was written
)

// String returns the lower-case name of the gesture type.
func (g GestureType) String() string {
	switch g {
	case GesturePinchStart:
		return "pinch_start"
	case GesturePinchUpdate:
		return "pinch_update"
	case GesturePinchEnd:
		return "pinch_end"
	case GestureScaleChanged:
		return "scale_changed"
	default:
		return "unknown"
	}
}

// EventStore is the interface for optional ECS integration.
// When set on a Detector or Engine, gesture events are forwarded to it.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries gesture data for the ECS bridge.
type GestureEvent struct {
	Type GestureType
	// Pinch fields (valid for start, update and end)
	TargetID      int
	UnchangedID   int
	MidPoint      Vec2
	DistanceDelta float64
	// Scale is valid for GestureScaleChanged.
	Scale Vec3
}
