package pinchzoom

import "go.uber.org/zap"

// Detector turns the drag lifecycle of individual pointers into pinch
// gestures. It tracks at most two pointers; further simultaneous pointers are
// only counted and their events are consumed.
//
// Calling order per pointer: OnBeginDrag -> OnDrag* -> OnEndDrag.
type Detector struct {
	log   *zap.Logger
	store EventStore

	startHandlers []PinchStartHandler
	endHandlers   []PinchEndHandler
	zoomHandlers  []PinchZoomHandler
	hooks         handlerRegistry

	touchCount int
	pinching   bool

	first  *PointerEvent
	second *PointerEvent

	previousDistance float64
	delta            float64
}

// NewDetector creates an idle detector.
func NewDetector(opts ...Option) *Detector {
	s := newSettings(opts)
	return &Detector{log: s.logger, store: s.store}
}

// Attach registers listener for every pinch capability it implements
// (PinchStartHandler, PinchEndHandler, PinchZoomHandler). Listeners are
// invoked in attachment order. Attach returns false if listener implements
// none of them.
func (d *Detector) Attach(listener any) bool {
	attached := false
	if h, ok := listener.(PinchStartHandler); ok {
		d.startHandlers = append(d.startHandlers, h)
		attached = true
	}
	if h, ok := listener.(PinchEndHandler); ok {
		d.endHandlers = append(d.endHandlers, h)
		attached = true
	}
	if h, ok := listener.(PinchZoomHandler); ok {
		d.zoomHandlers = append(d.zoomHandlers, h)
		attached = true
	}
	return attached
}

// OnPinchStart registers a zero-argument callback fired when a pinch starts,
// before any attached listener.
func (d *Detector) OnPinchStart(fn func()) CallbackHandle {
	return d.hooks.addNotify(hookPinchStart, fn)
}

// OnPinchEnd registers a zero-argument callback fired when a pinch ends,
// before any attached listener.
func (d *Detector) OnPinchEnd(fn func()) CallbackHandle {
	return d.hooks.addNotify(hookPinchEnd, fn)
}

// SetEventStore sets the optional ECS bridge.
func (d *Detector) SetEventStore(store EventStore) {
	d.store = store
}

// Pinching reports whether two tracked pointers are down.
func (d *Detector) Pinching() bool { return d.pinching }

// TouchCount returns the number of registered pointers, including untracked
// third and later ones.
func (d *Detector) TouchCount() int { return d.touchCount }

// Delta returns the most recently computed distance delta.
func (d *Detector) Delta() float64 { return d.delta }

// --- Pointer registration ---

func (d *Detector) registerPointer(p *PointerEvent) {
	d.touchCount++
	if d.first == nil {
		d.first = p
	} else if d.second == nil {
		d.second = p
		d.calculateDistanceDelta()
		if d.touchCount >= 2 {
			d.pinching = true
			d.firePinchStart(PinchEvent{Target: d.second, Unchanged: d.first})
		}
	}
	// Third and later pointers only bump the counter.
}

func (d *Detector) unregisterPointer(p *PointerEvent) {
	d.touchCount--
	if d.touchCount < 0 {
		d.log.Error("touch count mismatch", zap.Int("touch_count", d.touchCount), zap.Int("pointer_id", p.ID))
	}
	if samePointer(d.first, p) {
		if d.pinching {
			d.pinching = false
			d.firePinchEnd(PinchEvent{Target: d.first, Unchanged: d.second})
		}
		// Second pointer becomes first.
		d.first = d.second
		d.second = nil
	} else if samePointer(d.second, p) {
		if d.pinching {
			d.pinching = false
			d.firePinchEnd(PinchEvent{Target: d.second, Unchanged: d.first})
		}
		d.second = nil
	}
}

// --- Drag lifecycle ---

// OnBeginDrag registers p. The event is consumed when it starts or joins a
// pinch, or when p is a third or later pointer, so the host's single-touch
// drag does not start for it.
func (d *Detector) OnBeginDrag(p *PointerEvent) {
	d.registerPointer(p)
	if d.touchCount == 1 {
		return
	}
	d.consumeIfForeign(p)
}

// OnEndDrag unregisters p and applies the same consumption rule as
// OnBeginDrag, evaluated on the state after removal.
func (d *Detector) OnEndDrag(p *PointerEvent) {
	d.unregisterPointer(p)
	if d.touchCount == 0 {
		return
	}
	d.consumeIfForeign(p)
}

func (d *Detector) consumeIfForeign(p *PointerEvent) {
	if d.pinching {
		p.Use()
	} else if !samePointer(d.first, p) && !samePointer(d.second, p) {
		p.Use()
	}
}

// OnDrag updates the tracked slot that p belongs to and fires a pinch update
// while pinching. Drags of untracked pointers are consumed.
func (d *Detector) OnDrag(p *PointerEvent) {
	if d.touchCount == 0 {
		return
	}
	switch {
	case samePointer(d.first, p):
		d.first = p
		if d.second != nil {
			d.calculateDistanceDelta()
		}
		if d.pinching {
			p.Use()
			d.firePinchZoom(PinchEvent{Target: d.first, Unchanged: d.second, DistanceDelta: d.delta})
		}
	case samePointer(d.second, p):
		d.second = p
		if d.first != nil {
			d.calculateDistanceDelta()
		}
		if d.pinching {
			p.Use()
			d.firePinchZoom(PinchEvent{Target: d.second, Unchanged: d.first, DistanceDelta: d.delta})
		}
	default:
		p.Use()
	}
}

func (d *Detector) calculateDistanceDelta() {
	dist := Distance(d.first.Position, d.second.Position)
	d.delta = dist - d.previousDistance
	d.previousDistance = dist
}

// --- Event dispatch ---

func (d *Detector) firePinchStart(e PinchEvent) {
	d.log.Debug("pinch start", zap.Int("target", e.Target.ID), zap.Int("unchanged", e.Unchanged.ID))
	for _, h := range d.hooks.pinchStart {
		h.fn()
	}
	for _, h := range d.startHandlers {
		h.OnPinchStart(e)
	}
	d.emit(GesturePinchStart, e)
}

func (d *Detector) firePinchEnd(e PinchEvent) {
	d.log.Debug("pinch end", zap.Int("target", e.Target.ID), zap.Int("unchanged", e.Unchanged.ID))
	for _, h := range d.hooks.pinchEnd {
		h.fn()
	}
	for _, h := range d.endHandlers {
		h.OnPinchEnd(e)
	}
	d.emit(GesturePinchEnd, e)
}

func (d *Detector) firePinchZoom(e PinchEvent) {
	for _, h := range d.zoomHandlers {
		h.OnPinchZoom(e)
	}
	d.emit(GesturePinchUpdate, e)
}

func (d *Detector) emit(t GestureType, e PinchEvent) {
	if d.store == nil {
		return
	}
	d.store.EmitEvent(GestureEvent{
		Type:          t,
		TargetID:      e.Target.ID,
		UnchangedID:   e.Unchanged.ID,
		MidPoint:      e.MidPoint(),
		DistanceDelta: e.DistanceDelta,
	})
}
