package squall

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one image of an Animation, shown for Duration milliseconds.
type Frame struct {
	Image    *ebiten.Image
	Duration float64
}

// Animation is an ordered list of frames advanced by elapsed time. Entities
// reference animations by name; the PhysicsEngine advances the current one.
type Animation struct {
	frames []Frame
	index  int
	clock  float64
	speed  float64
	loop   bool
	ended  bool
}

// NewAnimation creates a looping animation at normal speed.
func NewAnimation(frames ...Frame) *Animation {
	return &Animation{frames: frames, speed: 1, loop: true}
}

// SetLoop sets whether the animation wraps to the first frame after the last.
func (a *Animation) SetLoop(loop bool) *Animation {
	a.loop = loop
	return a
}

// SetSpeed sets the multiplier applied to elapsed time.
func (a *Animation) SetSpeed(speed float64) *Animation {
	a.speed = speed
	return a
}

// Reset rewinds to the first frame and clears the ended flag.
func (a *Animation) Reset() *Animation {
	a.index = 0
	a.clock = 0
	a.ended = false
	return a
}

// Update accumulates elapsed*speed milliseconds and advances one frame when
// the current frame's duration is exceeded. A non-looping animation halts on
// its last frame and reports Ended.
func (a *Animation) Update(elapsed float64) {
	if len(a.frames) == 0 || a.index >= len(a.frames) {
		return
	}
	a.clock += elapsed * a.speed
	if a.clock <= a.frames[a.index].Duration {
		return
	}
	a.clock = 0
	switch {
	case a.index+1 < len(a.frames):
		a.index++
	case a.loop:
		a.index = 0
	default:
		a.ended = true
	}
}

// Frame returns the current frame image, or nil when there is nothing to
// draw. A nil frame is never an error.
func (a *Animation) Frame() *ebiten.Image {
	if a == nil || a.index < 0 || a.index >= len(a.frames) {
		return nil
	}
	return a.frames[a.index].Image
}

// Index returns the current frame index.
func (a *Animation) Index() int { return a.index }

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.frames) }

// Ended reports whether a non-looping animation reached its last frame.
func (a *Animation) Ended() bool { return a.ended }

// Speed returns the elapsed-time multiplier.
func (a *Animation) Speed() float64 { return a.speed }

// ParseFrames cuts frames out of sheet from a definition of the form
// "x,y,w,h,ms+x,y,w,h,ms+...", optionally wrapped in braces. A nil sheet
// yields frames without images, which is enough for timing.
func ParseFrames(sheet *ebiten.Image, def string) ([]Frame, error) {
	def = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(def), "{"), "}")
	if def == "" {
		return nil, fmt.Errorf("empty frame definition")
	}
	parts := strings.Split(def, "+")
	frames := make([]Frame, 0, len(parts))
	for i, p := range parts {
		fields := strings.Split(p, ",")
		if len(fields) != 5 {
			return nil, fmt.Errorf("frame %d: want x,y,w,h,ms, got %q", i, p)
		}
		var v [5]int
		for j, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}
			v[j] = n
		}
		fr := Frame{Duration: float64(v[4])}
		if sheet != nil {
			fr.Image = sheet.SubImage(image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3])).(*ebiten.Image)
		}
		frames = append(frames, fr)
	}
	return frames, nil
}
