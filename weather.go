package squall

import "github.com/hajimehoshi/ebiten/v2"

// WeatherMode is the weather effect currently running.
type WeatherMode uint8

const (
	WeatherClear WeatherMode = iota
	WeatherRain
	WeatherSnow
	weatherModeCount
)

var weatherModeNames = [...]string{"clear", "rain", "snow"}

func (m WeatherMode) String() string {
	if m < weatherModeCount {
		return weatherModeNames[m]
	}
	return "unknown"
}

// WeatherSwitcher cycles clear -> rain -> snow each time Key is released. It
// finds the effects in the scene's behavior registry under RainBehaviorName
// and SnowBehaviorName; a missing effect is ignored. Attach it to any active
// entity so it receives input.
type WeatherSwitcher struct {
	NopBehavior
	// Key defaults to ebiten.KeyM.
	Key ebiten.Key

	scene *Scene
	mode  WeatherMode
}

// NewWeatherSwitcher creates a switcher in WeatherClear mode.
func NewWeatherSwitcher(s *Scene) *WeatherSwitcher {
	return &WeatherSwitcher{Key: ebiten.KeyM, scene: s}
}

// Input moves to the next weather mode when Key is released.
func (w *WeatherSwitcher) Input(in UserInput, _ *Entity) {
	if in.IsKeyJustReleased(w.Key) {
		w.Next()
	}
}

// Mode returns the current weather mode.
func (w *WeatherSwitcher) Mode() WeatherMode {
	return w.mode
}

// Next switches to the following mode and returns it.
func (w *WeatherSwitcher) Next() WeatherMode {
	w.SetMode((w.mode + 1) % weatherModeCount)
	return w.mode
}

// SetMode starts the effect of mode and stops the other one.
func (w *WeatherSwitcher) SetMode(mode WeatherMode) {
	w.mode = mode
	rain := w.effect(RainBehaviorName)
	snow := w.effect(SnowBehaviorName)
	toggle(rain, mode == WeatherRain)
	toggle(snow, mode == WeatherSnow)
}

func (w *WeatherSwitcher) effect(name string) ParticleBehavior {
	pb, _ := w.scene.Behavior(name).(ParticleBehavior)
	return pb
}

func toggle(pb ParticleBehavior, on bool) {
	if pb == nil {
		return
	}
	if on {
		pb.Start()
	} else {
		pb.Stop()
	}
}
