package voxphys

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TickOptions bounds the work done in one fixed tick.
type TickOptions struct {
	// Substeps splits each tick's motion into equal slices.
	Substeps int
	// MaxRetries caps the detect/commit rounds within one substep.
	MaxRetries int
	Tolerance  Tolerance
	// BroadPhaseCellSize enables the spatial hash when positive. Results are
	// the same as testing every pair.
	BroadPhaseCellSize float32
}

func DefaultTickOptions() TickOptions {
	return TickOptions{
		Substeps:   4,
		MaxRetries: 8,
		Tolerance:  DefaultTolerance,
	}
}

func (o TickOptions) normalized() TickOptions {
	if o.Substeps < 1 {
		o.Substeps = 1
	}
	if o.MaxRetries < 1 {
		o.MaxRetries = 1
	}
	if o.Tolerance == (Tolerance{}) {
		o.Tolerance = DefaultTolerance
	}
	return o
}

// TickStats reports what a tick did.
type TickStats struct {
	Substeps int
	// RetryRounds is the total number of detect/commit rounds.
	RetryRounds int
	// MaxRetriesInSubstep is the most rounds any single substep needed.
	MaxRetriesInSubstep int
	Collisions          int
	// BudgetExhausted counts substeps that ran out of rounds with motion left.
	BudgetExhausted int
}

// AdvanceTick runs one fixed step: sync, gravity, friction and the collision
// aware integration, in that order. A nil gravity disables gravity. Velocity
// is in world units per tick.
func AdvanceTick(gravity *mgl32.Vec3, bodies []*Body, opts TickOptions) TickStats {
	SyncTransforms(bodies)
	ApplyGravity(gravity, bodies)
	ApplyFriction(bodies)
	return Integrate(bodies, opts)
}

// SyncTransforms copies the current transform into the previous one. Bodies
// added since the last tick already have matching transforms and are skipped
// once.
func SyncTransforms(bodies []*Body) {
	for _, b := range bodies {
		if b.justAdded {
			b.justAdded = false
			continue
		}
		b.Previous = b.Current
	}
}

func ApplyGravity(gravity *mgl32.Vec3, bodies []*Body) {
	if gravity == nil {
		return
	}
	for _, b := range bodies {
		if b.AntiGravity {
			continue
		}
		b.Velocity = b.Velocity.Add(*gravity)
	}
}

func ApplyFriction(bodies []*Body) {
	for _, b := range bodies {
		b.Velocity = mulComponents(b.Velocity, b.Friction)
	}
}

func mulComponents(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// Integrate moves every body by its velocity, resolving collisions.
//
// Each substep gives every body velocity/substeps of motion. A round first
// detects, for every body, the earliest collision against every other body
// using only the state at the start of the round, and then commits all
// bodies at once. Bodies without a collision take their whole remaining
// motion. Bodies with one stop at the contact and continue with the slid
// remainder in the next round. Motion still left when the round budget runs
// out is dropped.
func Integrate(bodies []*Body, opts TickOptions) TickStats {
	opts = opts.normalized()
	stats := TickStats{Substeps: opts.Substeps}

	var grid *SpatialHashGrid
	if opts.BroadPhaseCellSize > 0 {
		grid = NewSpatialHashGrid(opts.BroadPhaseCellSize)
	}

	remaining := make([]mgl32.Vec3, len(bodies))
	step := 1 / float32(opts.Substeps)
	for s := 0; s < opts.Substeps; s++ {
		for i, b := range bodies {
			remaining[i] = b.Velocity.Mul(step)
		}

		rounds := 0
		settled := false
		for rounds < opts.MaxRetries {
			rounds++
			hits := detectCollisions(bodies, remaining, opts, grid)
			stats.Collisions += hits
			commit(bodies, remaining)
			if hits == 0 {
				settled = true
				break
			}
		}
		if !settled && anyMotion(remaining, opts.Tolerance.Epsilon) {
			stats.BudgetExhausted++
		}

		stats.RetryRounds += rounds
		if rounds > stats.MaxRetriesInSubstep {
			stats.MaxRetriesInSubstep = rounds
		}
	}
	return stats
}

func anyMotion(remaining []mgl32.Vec3, eps float32) bool {
	for _, r := range remaining {
		if r.Len() >= eps {
			return true
		}
	}
	return false
}

// detectCollisions records the earliest collision of each body against all
// others. It reads positions and remaining motion but does not change them,
// so running it twice gives the same result. It returns the number of
// colliding pairs.
func detectCollisions(bodies []*Body, remaining []mgl32.Vec3, opts TickOptions, grid *SpatialHashGrid) int {
	for _, b := range bodies {
		b.pending = nil
	}

	hits := 0
	if grid == nil {
		for i := range bodies {
			for j := i + 1; j < len(bodies); j++ {
				if detectPair(bodies, remaining, i, j, opts.Tolerance) {
					hits++
				}
			}
		}
		return hits
	}

	grid.Clear()
	swept := make([]AABB, len(bodies))
	for i, b := range bodies {
		swept[i] = b.motion(remaining[i]).Swept().Expand(opts.Tolerance.Skin)
		grid.Insert(i, swept[i])
	}
	for i := range bodies {
		for _, j := range grid.QueryAABB(swept[i]) {
			if j <= i {
				continue
			}
			if detectPair(bodies, remaining, i, j, opts.Tolerance) {
				hits++
			}
		}
	}
	return hits
}

func detectPair(bodies []*Body, remaining []mgl32.Vec3, i, j int, tol Tolerance) bool {
	a, b := bodies[i], bodies[j]
	remA, remB := remaining[i], remaining[j]
	if a.IsChunk() && b.IsChunk() {
		return false
	}
	if remA.Len() < tol.Epsilon && remB.Len() < tol.Epsilon {
		return false
	}
	// Chunks are always the static side of the sweep.
	if b.IsChunk() {
		a, b = b, a
		remA, remB = remB, remA
	}

	kind := CollisionTypeOf(a.Collision, b.Collision)
	if kind == NoPush {
		return false
	}

	ma, mb := a.motion(remA), b.motion(remB)
	var c Collision
	var ok bool
	if a.IsChunk() {
		c, ok = CollideShapeChunk(ma, a.Chunk, mb, tol)
	} else {
		c, ok = CollideCuboidCuboid(ma, mb, tol)
	}
	if !ok {
		return false
	}

	respond(a, b, c, kind, remB.Sub(remA), b.Velocity.Sub(a.Velocity), tol.Epsilon)
	return true
}

// commit applies the pending responses found by the last detection pass.
func commit(bodies []*Body, remaining []mgl32.Vec3) {
	for i, b := range bodies {
		p := b.pending
		if p == nil {
			b.Current.Position = b.Current.Position.Add(remaining[i])
			remaining[i] = mgl32.Vec3{}
			continue
		}
		t := p.collision.T
		b.Current.Position = b.Current.Position.Add(remaining[i].Mul(t))
		remaining[i] = remaining[i].Mul(1 - t).Add(p.dispDelta)
		b.Velocity = b.Velocity.Add(p.velDelta)
		b.pending = nil
	}
}
