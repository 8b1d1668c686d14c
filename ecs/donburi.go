package ecs

import (
	"github.com/phanxgames/squall"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SimEventType is the Donburi event type for squall simulation events.
// Subscribe to this in your ECS systems to receive contact, expiry and spawn
// events.
var SimEventType = events.NewEventType[squall.SimEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Simulation events are published to SimEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) squall.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event squall.SimEvent) {
	SimEventType.Publish(s.world, event)
}
