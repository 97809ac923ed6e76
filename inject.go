package pinchzoom

// syntheticPointerEvent is a single injected pointer or wheel event in screen
// coordinates.
type syntheticPointerEvent struct {
	pointerID int
	pos       Vec2
	pressed   bool
	scroll    Vec2
	isScroll  bool
}

// Touch pointer IDs used by InjectPinch.
const (
	injectPinchFirstID  = 1
	injectPinchSecondID = 2
)

// injectFrame queues a group of events that are processed together on one
// frame, in order.
func (in *Input) injectFrame(events ...syntheticPointerEvent) {
	in.injectQueue = append(in.injectQueue, events)
}

// InjectPress queues a press of pointerID at the given screen coordinates.
// Each inject call consumes one frame.
func (in *Input) InjectPress(pointerID int, x, y float64) {
	in.injectFrame(syntheticPointerEvent{pointerID: pointerID, pos: Vec2{x, y}, pressed: true})
}

// InjectMove queues a move of a held pointer. Use it between InjectPress and
// InjectRelease to simulate a drag.
func (in *Input) InjectMove(pointerID int, x, y float64) {
	in.injectFrame(syntheticPointerEvent{pointerID: pointerID, pos: Vec2{x, y}, pressed: true})
}

// InjectRelease queues a release of pointerID.
func (in *Input) InjectRelease(pointerID int, x, y float64) {
	in.injectFrame(syntheticPointerEvent{pointerID: pointerID, pos: Vec2{x, y}})
}

// InjectScroll queues a wheel event at the given screen coordinates.
func (in *Input) InjectScroll(x, y, deltaY float64) {
	in.injectFrame(syntheticPointerEvent{pos: Vec2{x, y}, scroll: Vec2{0, deltaY}, isScroll: true})
}

// InjectWait queues frames with no input.
func (in *Input) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		in.injectFrame()
	}
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy): both
// touches press fromDist apart, spread (or close) linearly to toDist over
// frames-2 intermediate frames, then release. Minimum frames is 2.
func (in *Input) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	pair := func(dist float64, pressed bool) []syntheticPointerEvent {
		return []syntheticPointerEvent{
			{pointerID: injectPinchFirstID, pos: Vec2{cx - dist/2, cy}, pressed: pressed},
			{pointerID: injectPinchSecondID, pos: Vec2{cx + dist/2, cy}, pressed: pressed},
		}
	}
	in.injectFrame(pair(fromDist, true)...)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.injectFrame(pair(fromDist+(toDist-fromDist)*t, true)...)
	}
	in.injectFrame(pair(toDist, false)...)
}

// InjectPending reports how many injected frames are still queued.
func (in *Input) InjectPending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one frame group from the inject queue and feeds
// it through the pointer state machine. Returns true if a frame was consumed
// (real input is skipped for that frame).
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	frame := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue[len(in.injectQueue)-1] = nil
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	for _, evt := range frame {
		if evt.isScroll {
			in.processScroll(evt.pos, evt.scroll)
			continue
		}
		in.processPointer(evt.pointerID, evt.pos, evt.pressed)
	}
	return true
}

// ProcessInjected processes one injected frame without polling Ebitengine,
// for headless replay. Returns false when the queue is empty.
func (in *Input) ProcessInjected() bool {
	return in.processInjectedInput()
}
