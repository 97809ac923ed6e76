package pinchzoom

// PointerEvent is the per-pointer payload delivered with begin-drag, drag,
// end-drag and scroll callbacks. One PointerEvent lives for the duration of a
// physical touch (or mouse press); the input layer updates Position and Delta
// in place and clears the used flag before each dispatch.
type PointerEvent struct {
	// ID is stable for the lifetime of the touch. 0 is the mouse,
	// 1-9 are touch slots.
	ID int
	// Position is the current screen-space position.
	Position Vec2
	// Delta is the screen-space movement since the previous dispatch.
	Delta Vec2
	// ScrollDelta is the wheel offset for scroll events.
	ScrollDelta Vec2
	// Camera is the camera that was used when the pointer was pressed.
	// nil means screen space equals world space.
	Camera *Camera

	used bool
}

// Use marks the event as consumed so that competing handlers later in the
// dispatch order skip it.
func (p *PointerEvent) Use() { p.used = true }

// Used reports whether a handler has consumed the event.
func (p *PointerEvent) Used() bool { return p.used }

// Reset clears the consumed flag. It is called by the dispatcher before each
// delivery of a reused event.
func (p *PointerEvent) Reset() { p.used = false }

// samePointer reports whether a and b are the same physical touch.
// A nil pointer never equals anything, including another nil.
func samePointer(a, b *PointerEvent) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID == b.ID
}

// DragHandler receives the drag lifecycle of a single pointer.
// Calling order per pointer: OnBeginDrag -> OnDrag* -> OnEndDrag.
type DragHandler interface {
	OnBeginDrag(e *PointerEvent)
	OnDrag(e *PointerEvent)
	OnEndDrag(e *PointerEvent)
}

// ScrollHandler receives wheel input.
type ScrollHandler interface {
	OnScroll(e *PointerEvent)
}

// Forwarder relays drag events from a child surface to a Detector that lives
// elsewhere, so a pinch can start on any descendant of the zoomable view.
// A nil Detector makes every call a no-op.
type Forwarder struct {
	Detector *Detector
}

// OnBeginDrag forwards to the detector.
func (f *Forwarder) OnBeginDrag(e *PointerEvent) {
	if f.Detector != nil {
		f.Detector.OnBeginDrag(e)
	}
}

// OnDrag forwards to the detector.
func (f *Forwarder) OnDrag(e *PointerEvent) {
	if f.Detector != nil {
		f.Detector.OnDrag(e)
	}
}

// OnEndDrag forwards to the detector.
func (f *Forwarder) OnEndDrag(e *PointerEvent) {
	if f.Detector != nil {
		f.Detector.OnEndDrag(e)
	}
}
