// Package squall is a small real-time 2D simulation core for [Ebitengine].
//
// Squall advances a tree of entities through a simplified physics model each
// tick, dispatches pluggable behaviors, follows a target with a camera and
// recycles short-lived particles (rain, snow) under a population cap.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg, err := squall.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	physics := squall.NewPhysicsEngine()
//	physics.SetWorld(cfg.World())
//	scene := squall.NewScene("play", physics)
//	// ... add entities ...
//	squall.Run(scene, squall.RunConfig{
//		Title: cfg.Title, Width: 320, Height: 200,
//	})
//
// For full control, drive the tick yourself:
//
//	if err := scene.Update(elapsedMs); err != nil {
//		return err
//	}
//	renderer.Draw(screen, scene)
//
// # Entities
//
// Every simulated object is an [Entity]. Specializations (cameras, particles,
// text) are the same struct with a different [Kind]. Entities are configured
// with chained setters and registered with [Scene.Add]:
//
//	player := squall.NewEntity("player", 144, 84).
//		SetSize(32, 32).
//		SetMass(80).
//		SetMaterial(squall.NewMaterial("player_mat", 1.0, 0.67, 0.90)).
//		AddBehavior(squall.PlayerInputBehavior{})
//	scene.Add(player)
//
// Children are attached with [Entity.AddChild]. A child marked with
// [Entity.SetParentRelative] is positioned as an offset from its parent and
// is neither integrated nor constrained.
//
// # Tick
//
// [Scene.Update] runs one tick in a fixed order: behavior Input hooks, then
// [PhysicsEngine.Update] (gravity, contact friction, motion, animation,
// behavior Update hooks, lifetime, play-area constraint), then camera follow.
// Entities added during the physics pass are first integrated on the next
// tick.
//
// # Behaviors
//
// A [Behavior] has three hooks: Input, Update and Draw. Embed [NopBehavior]
// to implement only the ones you need. [ParticleBehavior] adds pool control;
// [RainBehavior] and [SnowBehavior] drive a controller created with
// [NewParticleController].
//
// # Camera
//
// [Camera] eases toward centering its target each tick. Renderers call
// [Camera.PreDraw] and [Camera.PostDraw] around every entity that is not
// fixed to the camera; both work on an *ebiten.GeoM.
//
// # Events
//
// [Scene.SetEventStore] forwards contact, expiry and spawn events to an
// [EventStore]. The ecs sub-module bridges them into a Donburi world.
//
// # Scenes and replays
//
// A [SceneManager] holds several scenes, such as a title and a play scene;
// [Game] ticks and draws the active one and [SceneSwitcher] changes it on a
// key release. [InputScript] replays a JSON list of key presses through a
// [KeyState] and can queue screenshots, which makes unattended runs
// reproducible.
//
// # Debug mode
//
// [Scene.SetDebugMode] prints tree warnings and per-tick timings to stderr.
// [Renderer.DebugLevel] draws an overlay: counts, bounds, entity info and the
// play-area grid.
//
// [Ebitengine]: https://ebitengine.org
package squall
