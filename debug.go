package squall

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick timing and population metrics.
// Only populated when Scene.debug is true.
type tickStats struct {
	inputTime   time.Duration
	physicsTime time.Duration
	cameraTime  time.Duration
	entityCount int
	activeCount int
}

// debugLog prints timing and population stats to stderr.
func (s *Scene) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	total := stats.inputTime + stats.physicsTime + stats.cameraTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[squall] input: %v | physics: %v | camera: %v | total: %v\n",
		stats.inputTime, stats.physicsTime, stats.cameraTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[squall] entities: %d | active: %d\n",
		stats.entityCount, stats.activeCount)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Entity) {
	depth := 0
	for p := e; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[squall] warning: tree depth %d exceeds %d (entity %q)\n",
			depth, debugMaxTreeDepth, e.Name)
	}
}

// debugCheckChildCount warns on stderr when an entity passes the child count
// threshold. Particle controllers routinely own thousands of children, so the
// warning fires once, when the threshold is crossed.
const debugMaxChildCount = 5000

func debugCheckChildCount(e *Entity) {
	if len(e.children) == debugMaxChildCount+1 {
		_, _ = fmt.Fprintf(os.Stderr, "[squall] warning: entity %q has %d children (threshold %d)\n",
			e.Name, len(e.children), debugMaxChildCount)
	}
}

// unknownTypeLogged remembers which entity types the renderer already
// reported, so an unknown type is logged once instead of every frame.
var unknownTypeLogged = map[EntityType]bool{}

func debugUnknownType(e *Entity) {
	if unknownTypeLogged[e.Type] {
		return
	}
	unknownTypeLogged[e.Type] = true
	_, _ = fmt.Fprintf(os.Stderr, "[squall] unknown entity type %d on %s, not drawn\n", e.Type, e)
}
