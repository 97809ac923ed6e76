package pinchzoom

import "github.com/hajimehoshi/ebiten/v2"

// PinchView wires a Detector and an Engine to one ScrollView. Drag events go
// to the detector first so it can consume them before the engine decides
// whether the host's native drag runs. The engine is attached as the
// detector's pinch listener.
//
// For an Ebitengine game, call Update from the game's Update:
//
//	func (g *Game) Update() error { g.view.Update(); return nil }
type PinchView struct {
	Detector *Detector
	Engine   *Engine
	Input    *Input
}

// NewPinchView creates the detector, engine and input adapter for view.
// Options apply to both the detector and the engine.
func NewPinchView(view ScrollView, cfg Config, opts ...Option) *PinchView {
	v := &PinchView{
		Detector: NewDetector(opts...),
		Engine:   NewEngine(view, cfg, opts...),
	}
	v.Detector.Attach(v.Engine)
	v.Input = NewInput(v)
	return v
}

// Start captures the initial content state. Call it once after the content
// is laid out.
func (v *PinchView) Start() {
	v.Engine.Start()
}

// OnBeginDrag dispatches to the detector, then the engine.
func (v *PinchView) OnBeginDrag(e *PointerEvent) {
	v.Detector.OnBeginDrag(e)
	v.Engine.OnBeginDrag(e)
}

// OnDrag dispatches to the detector, then the engine.
func (v *PinchView) OnDrag(e *PointerEvent) {
	v.Detector.OnDrag(e)
	v.Engine.OnDrag(e)
}

// OnEndDrag dispatches to the detector, then the engine.
func (v *PinchView) OnEndDrag(e *PointerEvent) {
	v.Detector.OnEndDrag(e)
	v.Engine.OnEndDrag(e)
}

// OnScroll dispatches wheel input to the engine.
func (v *PinchView) OnScroll(e *PointerEvent) {
	v.Engine.OnScroll(e)
}

// Update runs one tick: input callbacks, then zoom velocity, then the layout
// finalization.
func (v *PinchView) Update() {
	v.step(float32(1.0/float64(ebiten.TPS())), v.Input.Update)
}

// Replay runs one tick from the injection queue only, without touching
// Ebitengine input state. dt is the frame duration in seconds. It reports
// whether an injected frame was consumed.
func (v *PinchView) Replay(dt float32) bool {
	consumed := false
	v.step(dt, func() { consumed = v.Input.ProcessInjected() })
	return consumed
}

func (v *PinchView) step(dt float32, input func()) {
	input()
	v.Engine.update(dt)
	v.Engine.LateUpdate()
}
