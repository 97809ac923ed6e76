package pinchzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// Receiver consumes the drag and scroll callbacks produced by Input.
// PinchView implements it.
type Receiver interface {
	DragHandler
	ScrollHandler
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	dragging bool
	start    Vec2
	last     Vec2
	// event is reused for the whole press so handlers can keep a reference.
	event PointerEvent
}

// Input polls Ebitengine mouse, touch and wheel state once per frame and
// turns it into begin-drag, drag, end-drag and scroll callbacks. A drag only
// begins once the pointer has moved past the dead zone.
type Input struct {
	// Camera is attached to every event and used for projection. nil means
	// screen space equals world space.
	Camera *Camera

	target       Receiver
	dragDeadZone float64
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  [][]syntheticPointerEvent
}

// NewInput creates an input adapter delivering to target.
func NewInput(target Receiver) *Input {
	return &Input{target: target, dragDeadZone: defaultDragDeadZone}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (in *Input) SetDragDeadZone(pixels float64) {
	in.dragDeadZone = pixels
}

// Update processes one frame of input. A queued injected frame replaces real
// input for that frame.
func (in *Input) Update() {
	if in.processInjectedInput() {
		return
	}
	in.processMousePointer()
	in.processTouchPointers()
	in.processWheel()
}

// processMousePointer handles the left mouse button as pointer 0.
func (in *Input) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(0, Vec2{float64(mx), float64(my)}, pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *Input) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(slot, Vec2{float64(tx), float64(ty)}, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(i, ps.last, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (in *Input) processWheel() {
	wx, wy := ebiten.Wheel()
	if wx == 0 && wy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	in.processScroll(Vec2{float64(mx), float64(my)}, Vec2{wx, wy})
}

func (in *Input) processScroll(pos, delta Vec2) {
	ev := &PointerEvent{ID: 0, Position: pos, ScrollDelta: delta, Camera: in.Camera}
	in.target.OnScroll(ev)
}

// processPointer runs the drag state machine for a single pointer.
func (in *Input) processPointer(pointerID int, pos Vec2, pressed bool) {
	ps := &in.pointers[pointerID]
	ev := &ps.event

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.start = pos
		ps.last = pos
		*ev = PointerEvent{ID: pointerID, Position: pos, Camera: in.Camera}

	case !pressed && ps.down:
		if ps.dragging {
			ev.Reset()
			ev.Delta = pos.Sub(ps.last)
			ev.Position = pos
			in.target.OnEndDrag(ev)
		}
		ps.down = false
		ps.dragging = false

	case pressed && ps.down:
		if pos == ps.last {
			return
		}
		if !ps.dragging && Distance(ps.start, pos) > in.dragDeadZone {
			ps.dragging = true
			ev.Reset()
			ev.Delta = pos.Sub(ps.start)
			ev.Position = pos
			in.target.OnBeginDrag(ev)
		}
		if ps.dragging {
			ev.Reset()
			ev.Delta = pos.Sub(ps.last)
			ev.Position = pos
			in.target.OnDrag(ev)
		}
		ps.last = pos
	}
}
