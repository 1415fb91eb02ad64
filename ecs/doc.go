// Package ecs provides ECS adapters for gesture recognition.
//
// The primary adapter is [NewDonburiStore], which bridges gesture records
// (flick, hover, tap) into a [Donburi] world as typed events. Subscribe to
// [GestureEventType] in your ECS systems to receive them, or use [Filter] to
// receive one family only.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetRecordStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
