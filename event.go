package pinchzoom

// PinchEvent is an immutable snapshot of a pinch gesture step.
type PinchEvent struct {
	// Target is the pointer whose movement (or press/release) produced the event.
	Target *PointerEvent
	// Unchanged is the other tracked pointer.
	Unchanged *PointerEvent
	// DistanceDelta is the change in inter-pointer distance since the previous
	// recomputation. Zero for start and end events.
	DistanceDelta float64
}

// MidPoint returns the screen-space point halfway between the two pointers.
func (e PinchEvent) MidPoint() Vec2 {
	return e.Target.Position.Add(e.Unchanged.Position).Mul(0.5)
}

// PinchStartHandler is implemented by listeners interested in pinch start.
type PinchStartHandler interface {
	OnPinchStart(e PinchEvent)
}

// PinchEndHandler is implemented by listeners interested in pinch end.
type PinchEndHandler interface {
	OnPinchEnd(e PinchEvent)
}

// PinchZoomHandler is implemented by listeners interested in pinch updates.
type PinchZoomHandler interface {
	OnPinchZoom(e PinchEvent)
}

// --- Handler registry ---

type hookKind uint8

const (
	hookPinchStart hookKind = iota
	hookPinchEnd
	hookScaleChanged
)

type notifyHandler struct {
	id uint32
	fn func()
}

type scaleHandler struct {
	id uint32
	fn func(Vec3)
}

type handlerRegistry struct {
	pinchStart   []notifyHandler
	pinchEnd     []notifyHandler
	scaleChanged []scaleHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind hookKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case hookPinchStart:
		h.reg.pinchStart = removeNotifyHandler(h.reg.pinchStart, h.id)
	case hookPinchEnd:
		h.reg.pinchEnd = removeNotifyHandler(h.reg.pinchEnd, h.id)
	case hookScaleChanged:
		h.reg.scaleChanged = removeScaleHandler(h.reg.scaleChanged, h.id)
	}
}

func (r *handlerRegistry) addNotify(kind hookKind, fn func()) CallbackHandle {
	r.nextID++
	h := notifyHandler{id: r.nextID, fn: fn}
	if kind == hookPinchStart {
		r.pinchStart = append(r.pinchStart, h)
	} else {
		r.pinchEnd = append(r.pinchEnd, h)
	}
	return CallbackHandle{id: h.id, reg: r, kind: kind}
}

func (r *handlerRegistry) addScale(fn func(Vec3)) CallbackHandle {
	r.nextID++
	r.scaleChanged = append(r.scaleChanged, scaleHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: hookScaleChanged}
}

func removeNotifyHandler(s []notifyHandler, id uint32) []notifyHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = notifyHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeScaleHandler(s []scaleHandler, id uint32) []scaleHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = scaleHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}
