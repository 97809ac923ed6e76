package ecs

import (
	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for pinchzoom gesture events.
// Subscribe to this in your ECS systems to receive pinch and scale events.
var GestureEventType = events.NewEventType[pinchzoom.GestureEvent]()

// ZoomStateData is the latest zoom state observed by the store.
type ZoomStateData struct {
	Pinching bool
	Scale    pinchzoom.Vec3
}

// ZoomState is the component holding ZoomStateData on the store's entity.
var ZoomState = donburi.NewComponentType[ZoomStateData]()

// DonburiStore is an EventStore backed by a Donburi world.
type DonburiStore struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Gesture
// events are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents. A new entity carrying ZoomState is
// created in world.
func NewDonburiStore(world donburi.World) *DonburiStore {
	entity := world.Create(ZoomState)
	ZoomState.SetValue(world.Entry(entity), ZoomStateData{Scale: pinchzoom.Vec3One})
	return &DonburiStore{world: world, entity: entity}
}

// Entity returns the entity that carries ZoomState.
func (s *DonburiStore) Entity() donburi.Entity {
	return s.entity
}

// EmitEvent updates ZoomState and publishes event.
func (s *DonburiStore) EmitEvent(event pinchzoom.GestureEvent) {
	if s.world.Valid(s.entity) {
		entry := s.world.Entry(s.entity)
		state := ZoomState.Get(entry)
		switch event.Type {
		case pinchzoom.GesturePinchStart:
			state.Pinching = true
		case pinchzoom.GesturePinchEnd:
			state.Pinching = false
		case pinchzoom.GestureScaleChanged:
			state.Scale = event.Scale
		}
	}
	GestureEventType.Publish(s.world, event)
}
