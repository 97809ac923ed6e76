package ecs

import (
	"testing"

	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
	if !world.Valid(store.Entity()) {
		t.Fatal("store entity is not valid")
	}
	state := ZoomState.Get(world.Entry(store.Entity()))
	if state.Scale != pinchzoom.Vec3One || state.Pinching {
		t.Errorf("initial state = %+v, want unit scale and not pinching", *state)
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []pinchzoom.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchzoom.GestureEvent) {
		received = append(received, e)
	})

	store.EmitEvent(pinchzoom.GestureEvent{
		Type:        pinchzoom.GesturePinchStart,
		TargetID:    2,
		UnchangedID: 1,
		MidPoint:    pinchzoom.Vec2{X: 100, Y: 200},
	})
	store.EmitEvent(pinchzoom.GestureEvent{
		Type:          pinchzoom.GesturePinchUpdate,
		DistanceDelta: 12,
	})

	// Events are queued until processed.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != pinchzoom.GesturePinchStart || e0.TargetID != 2 || e0.UnchangedID != 1 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.MidPoint.X != 100 || e0.MidPoint.Y != 200 {
		t.Errorf("event 0 midpoint: %+v", e0.MidPoint)
	}
	if e1 := received[1]; e1.Type != pinchzoom.GesturePinchUpdate || e1.DistanceDelta != 12 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_TracksZoomState(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	entry := world.Entry(store.Entity())

	store.EmitEvent(pinchzoom.GestureEvent{Type: pinchzoom.GesturePinchStart})
	if !ZoomState.Get(entry).Pinching {
		t.Error("Pinching = false after pinch start")
	}

	scale := pinchzoom.Vec3{X: 1.5, Y: 1.5, Z: 1.5}
	store.EmitEvent(pinchzoom.GestureEvent{Type: pinchzoom.GestureScaleChanged, Scale: scale})
	if got := ZoomState.Get(entry).Scale; got != scale {
		t.Errorf("Scale = %+v, want %+v", got, scale)
	}

	store.EmitEvent(pinchzoom.GestureEvent{Type: pinchzoom.GesturePinchEnd})
	if ZoomState.Get(entry).Pinching {
		t.Error("Pinching = true after pinch end")
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store pinchzoom.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_FromEngine(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	viewport := pinchzoom.NewRectTransform(200, 200)
	content := pinchzoom.NewRectTransform(200, 200)
	scroll := pinchzoom.NewScrollRect(viewport, content)
	view := pinchzoom.NewPinchView(scroll, pinchzoom.DefaultConfig(), pinchzoom.WithEventStore(store))

	var count int
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchzoom.GestureEvent) {
		if e.Type == pinchzoom.GestureScaleChanged {
			count++
		}
	})

	view.Start()
	view.Engine.SetNormalizedScale(1)
	events.ProcessAllEvents(world)

	// One from Start (reset on enable) and one from SetNormalizedScale.
	if count != 2 {
		t.Errorf("scale events = %d, want 2", count)
	}
	if got := ZoomState.Get(world.Entry(store.Entity())).Scale; got != pinchzoom.Splat3(2) {
		t.Errorf("ZoomState.Scale = %+v, want (2,2,2)", got)
	}
}
