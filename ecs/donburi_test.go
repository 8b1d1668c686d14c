package ecs

import (
	"testing"

	"github.com/phanxgames/squall"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []squall.SimEvent
	SimEventType.Subscribe(world, func(w donburi.World, e squall.SimEvent) {
		received = append(received, e)
	})

	store.EmitEvent(squall.SimEvent{
		Type:     squall.EventContact,
		EntityID: 42,
		Name:     "ball",
		Contact:  squall.ContactLeft | squall.ContactBottom,
		X:        0,
		Y:        84,
	})
	store.EmitEvent(squall.SimEvent{Type: squall.EventExpired, EntityID: 7})

	// Events are queued until processed.
	SimEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != squall.EventContact || e0.EntityID != 42 || e0.Name != "ball" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Contact != squall.ContactLeft|squall.ContactBottom {
		t.Errorf("event 0 contact = %d, want %d", e0.Contact, squall.ContactLeft|squall.ContactBottom)
	}
	if e1 := received[1]; e1.Type != squall.EventExpired || e1.EntityID != 7 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ReceivesSceneEvents(t *testing.T) {
	world := donburi.NewWorld()

	physics := squall.NewPhysicsEngine()
	physics.SetWorld(squall.NewWorld(squall.DefaultGravity, squall.Size{Width: 100, Height: 100}))
	scene := squall.NewScene("test", physics)
	scene.SetEventStore(NewDonburiStore(world))

	var spawned, contacts int
	SimEventType.Subscribe(world, func(w donburi.World, e squall.SimEvent) {
		switch e.Type {
		case squall.EventSpawned:
			spawned++
		case squall.EventContact:
			contacts++
		}
	})

	scene.Add(squall.NewEntity("ball", -5, 10).SetVelocity(-1, 0))
	if err := scene.Update(16); err != nil {
		t.Fatalf("Update: %v", err)
	}
	events.ProcessAllEvents(world)

	if spawned != 1 {
		t.Errorf("spawned = %d, want 1", spawned)
	}
	if contacts != 1 {
		t.Errorf("contacts = %d, want 1", contacts)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	SimEventType.Subscribe(world, func(w donburi.World, e squall.SimEvent) {
		count1++
	})
	SimEventType.Subscribe(world, func(w donburi.World, e squall.SimEvent) {
		count2++
	})

	store.EmitEvent(squall.SimEvent{Type: squall.EventSpawned})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
