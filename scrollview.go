package pinchzoom

import "math"

// ScrollView is the host scrollable view the Engine drives. It exposes only
// the hook points zooming needs: the content transform, axis locks, the native
// single-touch drag, and the per-frame bookkeeping that zooming has to
// bypass.
type ScrollView interface {
	// Content returns the transform that is scrolled and scaled.
	Content() *RectTransform
	// IsActive reports whether the view is attached and enabled.
	IsActive() bool
	// Horizontal reports whether horizontal scrolling is enabled.
	Horizontal() bool
	// Vertical reports whether vertical scrolling is enabled.
	Vertical() bool

	// OnInitializePotentialDrag resets drag state before a drag may start.
	OnInitializePotentialDrag(e *PointerEvent)
	// OnBeginDrag, OnDrag and OnEndDrag are the native single-touch drag.
	OnBeginDrag(e *PointerEvent)
	OnDrag(e *PointerEvent)
	OnEndDrag(e *PointerEvent)

	// UpdateBounds refreshes the cached content and view bounds.
	UpdateBounds()
	// UpdatePrevData refreshes the previous-position cache used for velocity.
	UpdatePrevData()
	// LateUpdate runs the native per-frame layout: inertia and velocity.
	LateUpdate()
}

const (
	defaultDecelerationRate = 0.135
	defaultDeltaTime        = 1.0 / 60.0
	inertiaStopSpeed        = 1.0 // px/s
)

// ScrollRect is a minimal ScrollView: dragging moves the content by the
// pointer delta in viewport space and releasing it lets the content coast
// with exponential inertia. It does no bounds clamping.
type ScrollRect struct {
	// Viewport is the visible area and the content's parent.
	Viewport *RectTransform

	// Inertia keeps the content moving after a drag ends.
	Inertia bool
	// DecelerationRate is the fraction of velocity kept after one second.
	DecelerationRate float64
	// DeltaTime is the frame duration in seconds used by LateUpdate.
	DeltaTime float64

	content    *RectTransform
	horizontal bool
	vertical   bool
	active     bool

	dragging             bool
	velocity             Vec2
	pointerStartLocal    Vec2
	contentStartPosition Vec2
	prevPosition         Vec2

	contentBounds Rect
	viewBounds    Rect
}

// NewScrollRect creates an active scroll view with both axes enabled.
// If content has no parent it is parented to viewport.
func NewScrollRect(viewport, content *RectTransform) *ScrollRect {
	if content.Parent == nil {
		content.Parent = viewport
	}
	r := &ScrollRect{
		Viewport:         viewport,
		Inertia:          true,
		DecelerationRate: defaultDecelerationRate,
		DeltaTime:        defaultDeltaTime,
		content:          content,
		horizontal:       true,
		vertical:         true,
		active:           true,
	}
	r.UpdateBounds()
	r.UpdatePrevData()
	return r
}

// Content returns the scrolled transform.
func (r *ScrollRect) Content() *RectTransform { return r.content }

// IsActive reports whether the view is enabled.
func (r *ScrollRect) IsActive() bool { return r.active }

// Horizontal reports whether horizontal scrolling is enabled.
func (r *ScrollRect) Horizontal() bool { return r.horizontal }

// Vertical reports whether vertical scrolling is enabled.
func (r *ScrollRect) Vertical() bool { return r.vertical }

// SetAxes enables or disables scrolling per axis.
func (r *ScrollRect) SetAxes(horizontal, vertical bool) {
	r.horizontal = horizontal
	r.vertical = vertical
}

// Enable activates the view.
func (r *ScrollRect) Enable() {
	r.active = true
	r.UpdateBounds()
	r.UpdatePrevData()
}

// Disable deactivates the view and drops any drag or inertia in flight.
func (r *ScrollRect) Disable() {
	r.active = false
	r.dragging = false
	r.velocity = Vec2{}
}

// Velocity returns the current content velocity in px/s.
func (r *ScrollRect) Velocity() Vec2 { return r.velocity }

// Dragging reports whether a native drag is in progress.
func (r *ScrollRect) Dragging() bool { return r.dragging }

// Bounds returns the content and view bounds in viewport space as of the
// last UpdateBounds.
func (r *ScrollRect) Bounds() (content, view Rect) {
	return r.contentBounds, r.viewBounds
}

// OnInitializePotentialDrag stops inertia so a new drag starts from rest.
func (r *ScrollRect) OnInitializePotentialDrag(e *PointerEvent) {
	r.velocity = Vec2{}
}

// OnBeginDrag records the pointer and content start positions.
func (r *ScrollRect) OnBeginDrag(e *PointerEvent) {
	if !r.IsActive() {
		return
	}
	r.UpdateBounds()
	local, ok := r.viewportPoint(e)
	if !ok {
		return
	}
	r.pointerStartLocal = local
	r.contentStartPosition = r.content.AnchoredPosition
	r.dragging = true
}

// OnDrag moves the content by the pointer delta since OnBeginDrag.
func (r *ScrollRect) OnDrag(e *PointerEvent) {
	if !r.dragging || !r.IsActive() {
		return
	}
	local, ok := r.viewportPoint(e)
	if !ok {
		return
	}
	r.UpdateBounds()
	delta := local.Sub(r.pointerStartLocal)
	r.setContentAnchoredPosition(r.contentStartPosition.Add(delta))
}

// OnEndDrag ends the native drag.
func (r *ScrollRect) OnEndDrag(e *PointerEvent) {
	r.dragging = false
}

// viewportPoint projects the pointer into viewport-local space without
// rejecting points outside the viewport.
func (r *ScrollRect) viewportPoint(e *PointerEvent) (Vec2, bool) {
	world := e.Position
	if e.Camera != nil {
		world.X, world.Y = e.Camera.ScreenToWorld(world.X, world.Y)
	}
	return r.Viewport.WorldToLocal(world)
}

func (r *ScrollRect) setContentAnchoredPosition(p Vec2) {
	cur := r.content.AnchoredPosition
	if !r.horizontal {
		p.X = cur.X
	}
	if !r.vertical {
		p.Y = cur.Y
	}
	r.content.AnchoredPosition = p
}

// UpdateBounds recomputes the content bounds in viewport space.
func (r *ScrollRect) UpdateBounds() {
	r.viewBounds = r.Viewport.Rect()
	rc := r.content.Rect()
	m := r.content.localMatrix()
	x0, y0 := transformPoint(m, rc.X, rc.Y)
	x1, y1 := transformPoint(m, rc.X+rc.Width, rc.Y+rc.Height)
	r.contentBounds = Rect{
		X: math.Min(x0, x1), Y: math.Min(y0, y1),
		Width: math.Abs(x1 - x0), Height: math.Abs(y1 - y0),
	}
}

// UpdatePrevData caches the content position for the next velocity estimate.
func (r *ScrollRect) UpdatePrevData() {
	r.prevPosition = r.content.AnchoredPosition
}

// LateUpdate applies inertia while released and estimates velocity while
// dragging.
func (r *ScrollRect) LateUpdate() {
	dt := r.DeltaTime
	if dt <= 0 {
		dt = defaultDeltaTime
	}
	r.UpdateBounds()

	if !r.dragging && r.velocity != (Vec2{}) {
		if r.Inertia {
			keep := math.Pow(r.DecelerationRate, dt)
			r.velocity = r.velocity.Mul(keep)
			if math.Abs(r.velocity.X) < inertiaStopSpeed {
				r.velocity.X = 0
			}
			if math.Abs(r.velocity.Y) < inertiaStopSpeed {
				r.velocity.Y = 0
			}
			r.setContentAnchoredPosition(r.content.AnchoredPosition.Add(r.velocity.Mul(dt)))
		} else {
			r.velocity = Vec2{}
		}
	}

	if r.dragging && r.Inertia {
		moved := r.content.AnchoredPosition.Sub(r.prevPosition).Mul(1 / dt)
		t := math.Min(dt*10, 1)
		r.velocity = r.velocity.Add(moved.Sub(r.velocity).Mul(t))
	}

	r.UpdatePrevData()
}
