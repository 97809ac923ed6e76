// Package ecs provides ECS adapters for pinchzoom's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges pinch start,
// update and end events and content scale changes into a [Donburi] world as
// typed events, and mirrors the latest zoom state into a [ZoomState]
// component on a dedicated entity.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	view := pinchzoom.NewPinchView(scroll, cfg, pinchzoom.WithEventStore(store))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
