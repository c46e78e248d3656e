package ecs

import (
	"github.com/phanxgames/seedbed"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GardenEventType is the Donburi event type for garden events.
// Subscribe to this in your ECS systems to react to planting, tending,
// and transform commits.
var GardenEventType = events.NewEventType[seedbed.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Garden events are published to GardenEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) seedbed.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event seedbed.Event) {
	GardenEventType.Publish(s.world, event)
}
