// Package ecs provides ECS adapters for gesture.
package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for gesture records.
// Subscribe to this in your ECS systems to receive flicks, hovers and taps.
var GestureEventType = events.NewEventType[gesture.Record]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a RecordStore backed by a Donburi world.
// Records are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) gesture.RecordStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitRecord(r gesture.Record) {
	GestureEventType.Publish(s.world, r)
}

// Filter subscribes fn to the records whose type satisfies keep.
func Filter(world donburi.World, keep func(gesture.Type) bool, fn func(donburi.World, gesture.Record)) {
	GestureEventType.Subscribe(world, func(w donburi.World, r gesture.Record) {
		if keep(r.Type) {
			fn(w, r)
		}
	})
}
