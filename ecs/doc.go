// Package ecs provides ECS adapters for squall's simulation events.
//
// The primary adapter is [NewDonburiStore], which bridges squall simulation
// events (edge contact, lifetime expiry, spawn) into a [Donburi] world as
// typed events. Subscribe to [SimEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
