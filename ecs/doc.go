// Package ecs provides ECS adapters for cairn's scene events.
//
// The primary adapter is [NewDonburiStore], which bridges cairn scene events
// (marker additions, point cloud, measurement and volume changes) into a
// [Donburi] world as typed events. Subscribe to [EventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
//	ecs.SubscribeTypes(world, onMarker, cairn.EventMarkerAdded)
//	// each tick:
//	ecs.EventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
