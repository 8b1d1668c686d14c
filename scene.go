package squall

import (
	"time"
)

// EventStore receives simulation events. When set on a Scene, contact,
// expiry and spawn events are forwarded to it (see the ecs sub-module for a
// Donburi-backed store).
type EventStore interface {
	EmitEvent(event SimEvent)
}

// SimEventType identifies a kind of simulation event.
type SimEventType uint8

const (
	EventContact SimEventType = iota // an entity touched a new set of play-area edges
	EventExpired                     // an entity's lifetime ran out
	EventSpawned                     // an entity was added to the scene
)

// SimEvent carries simulation event data to an EventStore.
type SimEvent struct {
	Type     SimEventType
	EntityID uint32
	Name     string
	// Contact is the edge bitmask for EventContact.
	Contact int
	X, Y    float64
}

// Registry is the part of a Scene that particle behaviors publish new
// entities to.
type Registry interface {
	Add(e *Entity)
}

// Scene owns the entity registry of one running simulation: entities by name
// in insertion order, cameras, named behaviors, and the collaborators a tick
// needs (physics engine, input source, event store).
type Scene struct {
	name     string
	physics  *PhysicsEngine
	input    UserInput
	store    EventStore
	entities map[string]*Entity
	order    []*Entity
	ids      idGenerator
	cameras  []*Camera

	behaviors map[string]Behavior

	debug    bool
	inputBuf []*Entity
}

// idGenerator hands out monotonically increasing entity ids.
type idGenerator struct {
	last uint32
}

func (g *idGenerator) next() uint32 {
	g.last++
	return g.last
}

// NewScene creates an empty scene driven by physics.
func NewScene(name string, physics *PhysicsEngine) *Scene {
	if physics == nil {
		panic("squall: scene needs a physics engine")
	}
	return &Scene{
		name:      name,
		physics:   physics,
		entities:  make(map[string]*Entity),
		behaviors: make(map[string]Behavior),
	}
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.name
}

// Physics returns the scene's physics engine.
func (s *Scene) Physics() *PhysicsEngine {
	return s.physics
}

// SetInput sets the input source dispatched to behaviors each tick. A nil
// input skips input dispatch.
func (s *Scene) SetInput(in UserInput) {
	s.input = in
}

// SetEventStore sets the optional event sink.
func (s *Scene) SetEventStore(store EventStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are printed and per-tick timing stats are logged to
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that entity
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// Add registers e under its name and assigns it an id if it has none. An
// entity already registered under the same name is replaced in place. Adding
// the same entity twice is a no-op. Entities added while a tick is running
// are visible to lookups immediately but are first updated on the next tick.
func (s *Scene) Add(e *Entity) {
	if e == nil {
		panic("squall: cannot add nil entity")
	}
	if e.ID == 0 {
		e.ID = s.ids.next()
	}
	if prev, ok := s.entities[e.Name]; ok {
		if prev == e {
			return
		}
		s.entities[e.Name] = e
		for i, o := range s.order {
			if o == prev {
				s.order[i] = e
				break
			}
		}
	} else {
		s.entities[e.Name] = e
		s.order = append(s.order, e)
	}
	s.emit(SimEvent{Type: EventSpawned, EntityID: e.ID, Name: e.Name, X: e.Position.X, Y: e.Position.Y})
}

// AddCamera registers the camera's entity and makes it available to the tick.
func (s *Scene) AddCamera(c *Camera) {
	s.Add(c.Entity)
	for _, o := range s.cameras {
		if o == c {
			return
		}
	}
	s.cameras = append(s.cameras, c)
}

// Entity returns the entity registered under name, or nil.
func (s *Scene) Entity(name string) *Entity {
	return s.entities[name]
}

// Entities returns every registered entity in insertion order. The returned
// slice MUST NOT be mutated by the caller.
func (s *Scene) Entities() []*Entity {
	return s.order
}

// Len returns the number of registered entities.
func (s *Scene) Len() int {
	return len(s.order)
}

// Cameras returns the scene's cameras. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// Camera returns the first camera, or nil.
func (s *Scene) Camera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// RegisterBehavior stores b under name so input handlers can find it later.
func (s *Scene) RegisterBehavior(name string, b Behavior) {
	s.behaviors[name] = b
}

// Behavior returns the behavior registered under name, or nil.
func (s *Scene) Behavior(name string) Behavior {
	return s.behaviors[name]
}

// Update runs one tick: input dispatch, physics, then camera follow. elapsed
// is in milliseconds. Drawing is left to the host.
func (s *Scene) Update(elapsed float64) error {
	var stats tickStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.dispatchInput()

	if s.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	if err := s.physics.Update(s, elapsed); err != nil {
		return err
	}

	if s.debug {
		stats.physicsTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, c := range s.cameras {
		c.Update(elapsed)
	}

	if s.debug {
		stats.cameraTime = time.Since(t0)
		stats.entityCount = len(s.order)
		for _, e := range s.order {
			if e.active {
				stats.activeCount++
			}
		}
		s.debugLog(stats)
	}
	return nil
}

// dispatchInput calls Input on every behavior of every active entity, in
// insertion order, over a snapshot of the registry.
func (s *Scene) dispatchInput() {
	if s.input == nil {
		return
	}
	s.inputBuf = append(s.inputBuf[:0], s.order...)
	for _, e := range s.inputBuf {
		if !e.active {
			continue
		}
		for _, b := range e.behaviors {
			b.Input(s.input, e)
		}
	}
	clear(s.inputBuf)
}

func (s *Scene) emit(ev SimEvent) {
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}
