package pinchzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// velocityEpsilon is the zoom velocity below which deceleration is settled.
const velocityEpsilon = 0.001

// Engine applies pinch and wheel zoom to the content of a ScrollView.
//
// Scale changes are anchored at the gesture's screen point: before scaling,
// the content pivot is moved under that point and the position compensated
// so nothing visibly jumps. After a gesture ends the last zoom velocity
// decays geometrically. While a pinch is active the host's native drag is
// suppressed for consumed events.
//
// Per tick the host calls the drag/scroll callbacks first, then Update, then
// LateUpdate.
type Engine struct {
	cfg   Config
	view  ScrollView
	log   *zap.Logger
	store EventStore
	hooks handlerRegistry

	initPivot    Vec2
	initAnchored Vec2
	initScale    Vec3
	initialized  bool

	zoomVelocity  float64
	zoomPosDelta  Vec2
	updatePivot   bool
	zooming       bool
	pinchStartPos Vec2

	tween *scaleTween
}

// NewEngine creates an engine for view. Configuration problems are logged
// as warnings and otherwise ignored.
func NewEngine(view ScrollView, cfg Config, opts ...Option) *Engine {
	s := newSettings(opts)
	e := &Engine{cfg: cfg, view: view, log: s.logger, store: s.store}
	cfg.logWarnings(e.log)
	return e
}

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetConfig replaces the configuration. Problems are logged as warnings.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg
	cfg.logWarnings(e.log)
}

// SetEventStore sets the optional ECS bridge.
func (e *Engine) SetEventStore(store EventStore) {
	e.store = store
}

// OnScaleChanged registers a callback fired with the new scale every time the
// content scale is written.
func (e *Engine) OnScaleChanged(fn func(Vec3)) CallbackHandle {
	return e.hooks.addScale(fn)
}

// Velocity returns the residual zoom velocity.
func (e *Engine) Velocity() float64 { return e.zoomVelocity }

// Zooming reports whether a zoom was armed since the last LateUpdate.
func (e *Engine) Zooming() bool { return e.zooming }

// --- Lifecycle ---

// Start captures the content's pivot, anchored position and scale as the
// state ResetContent restores. Only the first call captures.
func (e *Engine) Start() {
	if e.initialized {
		return
	}
	content := e.view.Content()
	if content == nil {
		e.log.Warn("scroll view has no content")
		return
	}
	e.initPivot = content.Pivot
	e.initAnchored = content.AnchoredPosition
	e.initScale = content.Scale
	e.initialized = true
	if e.cfg.ResetOnEnable {
		e.ResetContent()
	}
}

// Enable is called when the view becomes active. It restores the initial
// content state if ResetOnEnable is set, drops residual zoom, and enables the
// host if it supports it.
func (e *Engine) Enable() {
	if e.cfg.ResetOnEnable && e.initialized {
		e.ResetContent()
	}
	e.ResetZoom()
	if v, ok := e.view.(interface{ Enable() }); ok {
		v.Enable()
	}
}

// Disable deactivates the host if it supports it.
func (e *Engine) Disable() {
	if v, ok := e.view.(interface{ Disable() }); ok {
		v.Disable()
	}
}

// --- Pinch listener ---

// OnPinchStart ends the native drag of the pointer that was already down and
// records the pinch anchor.
func (e *Engine) OnPinchStart(ev PinchEvent) {
	if !e.view.IsActive() {
		return
	}
	e.ResetZoom()
	e.CancelZoomTo()
	e.view.OnEndDrag(ev.Unchanged)
	e.pinchStartPos = ev.MidPoint()
}

// OnPinchEnd hands the remaining pointer back to the native drag.
func (e *Engine) OnPinchEnd(ev PinchEvent) {
	if !e.view.IsActive() {
		return
	}
	e.view.OnInitializePotentialDrag(ev.Target)
	e.view.OnBeginDrag(ev.Unchanged)
}

// OnPinchZoom arms a zoom step anchored at the pinch center.
func (e *Engine) OnPinchZoom(ev PinchEvent) {
	if !e.view.IsActive() {
		return
	}
	value := ev.DistanceDelta * e.cfg.PinchSensitivity
	if e.saturated(value) {
		return
	}
	anchor := ev.MidPoint()
	if e.cfg.LockPinchCenter {
		anchor = e.pinchStartPos
	}
	local, ok := e.view.Content().ScreenPointToLocalPoint(anchor, ev.Target.Camera)
	if !ok {
		return
	}
	e.arm(value, local)
}

// OnScroll arms a zoom step anchored at the wheel pointer. It replaces the
// host's native wheel scrolling.
func (e *Engine) OnScroll(ev *PointerEvent) {
	if !e.view.IsActive() {
		return
	}
	e.view.OnInitializePotentialDrag(ev)
	value := ev.ScrollDelta.Y * e.cfg.ScrollSensitivity
	if e.saturated(value) {
		return
	}
	local, ok := e.view.Content().ScreenPointToLocalPoint(ev.Position, ev.Camera)
	if !ok {
		return
	}
	e.CancelZoomTo()
	e.arm(value, local)
}

// saturated reports whether value would push an already saturated scale
// further. All three axes must be saturated.
func (e *Engine) saturated(value float64) bool {
	scale := e.view.Content().Scale
	if value < 0 && scale.LessEqAll(e.cfg.LowerScale) {
		return true
	}
	if value > 0 && scale.GreaterEqAll(e.cfg.UpperScale) {
		return true
	}
	return false
}

func (e *Engine) arm(value float64, local Vec2) {
	e.zooming = true
	e.zoomVelocity = value
	e.zoomPosDelta = local
	e.updatePivot = true
}

// --- Drag arbitration ---

// OnBeginDrag starts the native drag unless the event was consumed.
func (e *Engine) OnBeginDrag(ev *PointerEvent) {
	if ev.Used() {
		return
	}
	e.view.OnBeginDrag(ev)
}

// OnDrag continues the native drag unless the event was consumed.
func (e *Engine) OnDrag(ev *PointerEvent) {
	if ev.Used() {
		return
	}
	e.view.OnDrag(ev)
}

// OnEndDrag ends the native drag unless the event was consumed.
func (e *Engine) OnEndDrag(ev *PointerEvent) {
	if ev.Used() {
		return
	}
	e.view.OnEndDrag(ev)
}

// --- Per-frame ---

// Update applies and decays zoom velocity and advances ZoomTo animations.
func (e *Engine) Update() {
	e.update(float32(1.0 / float64(ebiten.TPS())))
}

func (e *Engine) update(dt float32) {
	e.advanceTween(dt)
	if e.zoomVelocity > velocityEpsilon || e.zoomVelocity < -velocityEpsilon {
		e.HandleZoom(clamp(e.zoomVelocity, -e.cfg.MaxZoomSpeed, e.cfg.MaxZoomSpeed))
		e.zoomVelocity *= e.cfg.Deceleration
	}
}

// LateUpdate finishes the frame. After a zoom step the host's layout pass is
// skipped and only its previous-position cache is refreshed, so the position
// jump caused by scaling is not mistaken for drag velocity.
func (e *Engine) LateUpdate() {
	if e.zooming {
		e.zooming = false
		e.view.UpdatePrevData()
		return
	}
	e.view.LateUpdate()
}

// --- Zoom application ---

// HandleZoom adds value to every scale axis, clamped to the configured
// bounds. If a zoom anchor is armed, the pivot is first moved onto it.
func (e *Engine) HandleZoom(value float64) {
	content := e.view.Content()
	scale := content.Scale

	if e.updatePivot {
		rect := content.Rect()
		anchorMin, anchorMax := content.AnchorMin, content.AnchorMax
		localPos := content.LocalPosition()

		var pivotDelta Vec2
		if rect.Width != 0 {
			pivotDelta.X = e.zoomPosDelta.X / rect.Width
		}
		if rect.Height != 0 {
			pivotDelta.Y = e.zoomPosDelta.Y / rect.Height
		}

		// Stretched anchors would resize the rect while the pivot moves.
		content.AnchorMin = Vec2{0.5, 0.5}
		content.AnchorMax = Vec2{0.5, 0.5}
		e.view.UpdateBounds()
		e.setContentPivot(content.Pivot.Add(pivotDelta))

		localPos = localPos.Add(Vec2{e.zoomPosDelta.X * scale.X, e.zoomPosDelta.Y * scale.Y})
		content.AnchorMin = anchorMin
		content.AnchorMax = anchorMax
		content.SetLocalPosition(localPos)
	}

	e.setContentScale(scale.Add(Splat3(value)).Clamp(e.cfg.LowerScale, e.cfg.UpperScale))

	// Deceleration continues around the same pivot.
	e.zoomPosDelta = Vec2{}
	e.updatePivot = false
}

func (e *Engine) setContentPivot(pivot Vec2) {
	content := e.view.Content()
	cur := content.Pivot
	if !e.view.Horizontal() {
		pivot.X = cur.X
	}
	if !e.view.Vertical() {
		pivot.Y = cur.Y
	}
	if pivot == cur {
		return
	}
	content.Pivot = pivot
}

func (e *Engine) setContentScale(scale Vec3) {
	e.view.Content().Scale = scale
	e.fireScaleChanged(scale)
}

func (e *Engine) fireScaleChanged(scale Vec3) {
	for _, h := range e.hooks.scaleChanged {
		h.fn(scale)
	}
	if e.store != nil {
		e.store.EmitEvent(GestureEvent{Type: GestureScaleChanged, Scale: scale})
	}
}

// --- Resets and external control ---

// ResetZoom drops residual velocity and any armed anchor.
func (e *Engine) ResetZoom() {
	e.zoomVelocity = 0
	e.zoomPosDelta = Vec2{}
	e.updatePivot = false
}

// ResetContent restores the pivot, anchored position and scale captured by
// Start. It is a no-op before Start.
func (e *Engine) ResetContent() {
	content := e.view.Content()
	if content == nil || !e.initialized {
		return
	}
	content.Pivot = e.initPivot
	content.AnchoredPosition = e.initAnchored
	content.Scale = e.initScale
	e.view.UpdateBounds()
	e.fireScaleChanged(e.initScale)
}

// SetNormalizedScale sets the scale to lerp(LowerScale, UpperScale, t) on
// every axis. t is not clamped; the anchor and velocity are untouched.
func (e *Engine) SetNormalizedScale(t float64) {
	e.setContentScale(Lerp3(e.cfg.LowerScale, e.cfg.UpperScale, t))
}

// NormalizedScale returns where the X scale sits between LowerScale and
// UpperScale. It is 0 when the bounds coincide.
func (e *Engine) NormalizedScale() float64 {
	span := e.cfg.UpperScale.X - e.cfg.LowerScale.X
	if span == 0 {
		return 0
	}
	return (e.view.Content().Scale.X - e.cfg.LowerScale.X) / span
}
