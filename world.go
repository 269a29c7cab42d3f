package voxphys

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// World owns a set of bodies and drives them at a fixed tick rate.
type World struct {
	cfg      *Config
	opts     TickOptions
	logger   Logger
	timestep *FixedTimestep

	bodies []*Body
	byID   map[uuid.UUID]*Body
	ticks  uint64
}

// NewWorld creates an empty world. A nil config uses DefaultConfig and a nil
// logger discards output. It panics if cfg does not validate.
func NewWorld(cfg *Config, logger Logger) *World {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("voxphys: NewWorld: %v", err))
	}
	if logger == nil {
		logger = NewNopLogger()
	}
	return &World{
		cfg:      cfg,
		opts:     cfg.TickOptions(),
		logger:   logger,
		timestep: NewFixedTimestep(cfg.TickRate),
		byID:     make(map[uuid.UUID]*Body),
	}
}

// Spawn adds b to the world and returns its id. Spawning a body twice keeps
// the first registration.
func (w *World) Spawn(b *Body) uuid.UUID {
	if _, ok := w.byID[b.ID]; ok {
		return b.ID
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.justAdded = true
	b.Previous = b.Current
	w.bodies = append(w.bodies, b)
	w.byID[b.ID] = b
	w.logger.Debugf("spawned %s body %s at %v", b.Shape, b.ID, b.Current.Position)
	return b.ID
}

func (w *World) Despawn(id uuid.UUID) bool {
	b, ok := w.byID[id]
	if !ok {
		return false
	}
	delete(w.byID, id)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	w.logger.Debugf("despawned body %s", id)
	return true
}

func (w *World) Body(id uuid.UUID) (*Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// Bodies returns the bodies in spawn order. The slice is shared with the
// world and must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

func (w *World) Ticks() uint64 {
	return w.ticks
}

// Step runs exactly one fixed tick.
func (w *World) Step() TickStats {
	stats := AdvanceTick(w.cfg.GravityVector(), w.bodies, w.opts)
	w.ticks++
	if w.logger.DebugEnabled() {
		w.logger.Debugf("%s", formatTickStats(w.ticks, len(w.bodies), stats))
	}
	return stats
}

// Update feeds elapsed wall time into the accumulator and runs the ticks that
// are due, at most MaxTicksPerUpdate of them. Time beyond that is dropped.
func (w *World) Update(elapsed time.Duration) int {
	due := w.timestep.Accumulate(elapsed)
	n := due
	if n > w.cfg.MaxTicksPerUpdate {
		n = w.cfg.MaxTicksPerUpdate
	}
	for i := 0; i < n; i++ {
		w.Step()
	}
	w.timestep.Consume(n)
	if due > n {
		dropped := w.timestep.Discard()
		w.logger.Warnf("simulation behind by %d ticks, dropped %v", due-n, dropped)
	}
	return n
}

// Overstep is the fraction of a tick accumulated since the last one ran.
func (w *World) Overstep() float32 {
	return w.timestep.Overstep()
}

// InterpolatedTransform blends a body's previous and current transforms by the
// current overstep.
func (w *World) InterpolatedTransform(id uuid.UUID) (Transform, bool) {
	b, ok := w.byID[id]
	if !ok {
		return Transform{}, false
	}
	return Interpolate(b.Previous, b.Current, w.Overstep()), true
}
