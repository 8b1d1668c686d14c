package squall

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action of an input script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// InputScript replays key presses into a KeyState, one step per tick, for
// unattended runs and recorded demos. Actions are "press", "release", "tap"
// and "hold" (press for Frames ticks, then release), "wait" for Frames ticks,
// and "screenshot" with a Label. Key names are ebiten key names such as
// "ArrowLeft" or "M", matched case-insensitively.
type InputScript struct {
	keys      *KeyState
	steps     []scriptStep
	cursor    int
	waitCount int
	holding   []holdKey
	done      bool
}

type holdKey struct {
	key    ebiten.Key
	frames int
}

var keyNames = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// LoadInputScript parses a JSON input script of the form
// {"steps":[{"action":"hold","key":"ArrowLeft","frames":30}, ...]}.
func LoadInputScript(data []byte) (*InputScript, error) {
	var script inputScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "tap", "hold":
			if _, ok := keyNames[strings.ToLower(st.Key)]; !ok {
				return nil, fmt.Errorf("parse input script: step %d: unknown key %q", i, st.Key)
			}
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{keys: NewKeyState(), steps: script.Steps}, nil
}

// Keys returns the KeyState the script drives. Use it as the scene input.
func (r *InputScript) Keys() *KeyState {
	return r.keys
}

// Done reports whether every step has run and no key is still held.
func (r *InputScript) Done() bool {
	return r.done
}

// Step advances the script by one tick. screenshot is called for screenshot
// actions and may be nil.
func (r *InputScript) Step(screenshot func(label string)) {
	if r.done {
		return
	}
	r.releaseHeld()
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = len(r.holding) == 0
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	key := keyNames[strings.ToLower(st.Key)]

	switch st.Action {
	case "press":
		r.keys.Press(key)
	case "release":
		r.keys.Release(key)
	case "tap":
		r.keys.Tap(key)
	case "hold":
		r.keys.Press(key)
		r.holding = append(r.holding, holdKey{key: key, frames: max(st.Frames, 1)})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "screenshot":
		if screenshot != nil {
			screenshot(st.Label)
		}
	}
}

// releaseHeld counts down held keys and releases the expired ones.
func (r *InputScript) releaseHeld() {
	kept := r.holding[:0]
	for _, h := range r.holding {
		h.frames--
		if h.frames <= 0 {
			r.keys.Release(h.key)
			continue
		}
		kept = append(kept, h)
	}
	r.holding = kept
}
