package pinchzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scaleTween animates the normalized scale for ZoomTo.
type scaleTween struct {
	tween *gween.Tween
}

// ZoomTo animates the content from its current normalized scale to t over
// duration seconds, writing each frame through SetNormalizedScale. A pinch
// start or wheel zoom cancels the animation.
//
// There is no separate animation manager: Update advances it.
func (e *Engine) ZoomTo(t float64, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	e.ResetZoom()
	e.tween = &scaleTween{
		tween: gween.New(float32(e.NormalizedScale()), float32(t), duration, fn),
	}
}

// ZoomToActive reports whether a ZoomTo animation is running.
func (e *Engine) ZoomToActive() bool { return e.tween != nil }

// CancelZoomTo stops a running ZoomTo animation where it is.
func (e *Engine) CancelZoomTo() {
	e.tween = nil
}

func (e *Engine) advanceTween(dt float32) {
	if e.tween == nil {
		return
	}
	val, done := e.tween.tween.Update(dt)
	e.SetNormalizedScale(float64(val))
	if done {
		e.tween = nil
	}
}
