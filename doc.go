// Package pinchzoom adds pinch-to-zoom to scrollable content for
// [Ebitengine] games and tools.
//
// It has two halves that are normally used together through [PinchView]:
//
//   - [Detector] turns the drag lifecycle of individual pointers into
//     pinch start, update and end events. It tracks two pointers, counts any
//     others, and consumes events so the host's single-touch drag never runs
//     during a pinch.
//   - [Engine] turns pinch deltas and wheel scroll into clamped scale changes
//     of a [RectTransform], keeping the point under the fingers (or cursor)
//     fixed on screen, and lets the zoom coast to a stop afterwards.
//
// # Quick start
//
//	viewport := pinchzoom.NewRectTransform(640, 480)
//	viewport.Pivot = pinchzoom.Vec2{}
//	content := pinchzoom.NewRectTransform(640, 480)
//	scroll := pinchzoom.NewScrollRect(viewport, content)
//
//	view := pinchzoom.NewPinchView(scroll, pinchzoom.DefaultConfig())
//	view.Start()
//
//	// In ebiten.Game.Update:
//	view.Update()
//
// Each tick runs input callbacks first, then [Engine.Update] (zoom velocity),
// then [Engine.LateUpdate] (layout finalization). Everything is synchronous
// and single-threaded.
//
// # Listeners
//
// Anything implementing [PinchStartHandler], [PinchEndHandler] or
// [PinchZoomHandler] can be attached with [Detector.Attach]. For consumers
// that only need to know a pinch happened, [Detector.OnPinchStart] and
// [Detector.OnPinchEnd] take plain callbacks. Scale changes are reported via
// [Engine.OnScaleChanged]; ECS users can bridge everything into Donburi with
// the pinchzoom/ecs package.
//
// # Configuration
//
// [Config] holds sensitivity, speed, deceleration and scale bounds.
// [LoadConfig] reads it from the "zoom" section of a viper instance. Invalid
// values are logged as warnings through the logger passed with [WithLogger]
// and otherwise left alone.
//
// # Scripted gestures
//
// [Input] can be fed synthetic touches with InjectPress, InjectPinch and
// friends, and [ScriptRunner] sequences them from JSON. cmd/pinchreplay
// replays a script headlessly and prints the recorded content states.
//
// [Ebitengine]: https://ebitengine.org
package pinchzoom
