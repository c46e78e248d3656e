// Package ecs provides ECS adapters for seedbed's garden event stream.
//
// The primary adapter is [NewDonburiSink], which bridges garden events
// (planted, tended, moved, tilted, resized, and friends) into a [Donburi]
// world as typed events. Subscribe to [GardenEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
