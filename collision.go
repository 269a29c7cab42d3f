package voxphys

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Tolerance holds the thresholds used by the swept tests.
type Tolerance struct {
	// Epsilon is the smallest motion along an axis that is divided by.
	// Anything shorter is treated as a contact at t=0.
	Epsilon float32
	// Skin is the contact slop. Faces closer than Skin touch, overlaps
	// thinner than Skin are ignored.
	Skin float32
}

var DefaultTolerance = Tolerance{Epsilon: 1e-6, Skin: 1e-4}

// Motion is one body's state over a single substep slice.
type Motion struct {
	Position     mgl32.Vec3
	Displacement mgl32.Vec3
	Velocity     mgl32.Vec3
	HalfExtents  mgl32.Vec3
}

func (m Motion) AABB() AABB {
	return NewAABB(m.Position, m.HalfExtents)
}

func (m Motion) Swept() AABB {
	return AABBFromMotion(m.Position, m.Displacement, m.HalfExtents)
}

// Collision is the earliest contact between A and B during one motion slice.
type Collision struct {
	// T is the fraction of the slice at which the surfaces first touch.
	T float32
	// PositionDelta moves B from its intended destination back to the contact.
	PositionDelta mgl32.Vec3
	// VelocityDelta cancels B's velocity into A along the contact normal.
	VelocityDelta mgl32.Vec3
	// NormalA points out of A toward B.
	NormalA mgl32.Vec3
	// NormalB points out of B toward A.
	NormalB mgl32.Vec3
}

// Mirror returns the same contact seen from A's side.
func (c Collision) Mirror() Collision {
	return Collision{
		T:             c.T,
		PositionDelta: c.PositionDelta.Mul(-1),
		VelocityDelta: c.VelocityDelta.Mul(-1),
		NormalA:       c.NormalB,
		NormalB:       c.NormalA,
	}
}

// earlier reports whether c should replace the current best.
func (c Collision) earlier(best Collision, found bool) bool {
	return !found || c.T < best.T
}

// axisOrder is the order faces are tested in. Ties keep the first axis.
var axisOrder = [3]int{1, 0, 2}

func axisUnit(axis int, sign float32) mgl32.Vec3 {
	var v mgl32.Vec3
	v[axis] = sign
	return v
}

func signOf(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// sweepFace finds when the leading face of moving box b reaches the opposing
// face of static box a along one axis. rel is b's motion relative to a.
func sweepFace(a, b AABB, rel mgl32.Vec3, axis int, tol Tolerance) (float32, bool) {
	s := signOf(rel[axis])
	bFace := b.Center[axis] + s*b.HalfExtents[axis]
	aFace := a.Center[axis] - s*a.HalfExtents[axis]
	gap := (aFace - bFace) * s
	if gap < -tol.Skin {
		// Already past the face.
		return 0, false
	}

	var t float32
	travel := math32.Abs(rel[axis])
	if travel < tol.Epsilon {
		if gap > tol.Skin {
			return 0, false
		}
		t = 0
	} else {
		t = math32.Max(gap/travel, 0)
	}
	if t > 1 {
		return 0, false
	}

	// The faces must actually pass through each other, not only their planes.
	at := b.Translate(rel.Mul(t))
	for j := 0; j < 3; j++ {
		if j == axis {
			continue
		}
		if math32.Abs(at.Center[j]-a.Center[j]) >= a.HalfExtents[j]+at.HalfExtents[j]-tol.Skin {
			return 0, false
		}
	}
	return t, true
}

// faceCollision builds the response for b hitting a face of a along axis.
func faceCollision(axis int, t float32, rel, relVel mgl32.Vec3) Collision {
	s := signOf(rel[axis])
	normalA := axisUnit(axis, -s)

	var velDelta mgl32.Vec3
	if relVel[axis]*s > 0 {
		velDelta[axis] = -relVel[axis]
	}
	return Collision{
		T:             t,
		PositionDelta: axisUnit(axis, -(1-t)*rel[axis]),
		VelocityDelta: velDelta,
		NormalA:       normalA,
		NormalB:       normalA.Mul(-1),
	}
}

// sweepBox tests moving box b against static box a on every axis b moves
// along, keeping the earliest hit.
func sweepBox(a, b AABB, rel, relVel mgl32.Vec3, tol Tolerance) (Collision, bool) {
	var best Collision
	found := false
	for _, axis := range axisOrder {
		if rel[axis] == 0 {
			continue
		}
		t, ok := sweepFace(a, b, rel, axis, tol)
		if !ok {
			continue
		}
		c := faceCollision(axis, t, rel, relVel)
		if c.earlier(best, found) {
			best, found = c, true
		}
	}
	return best, found
}

// CollideCuboidCuboid sweeps b against a, with a treated as stationary and b
// moving by the difference of their displacements.
func CollideCuboidCuboid(a, b Motion, tol Tolerance) (Collision, bool) {
	rel := b.Displacement.Sub(a.Displacement)
	relVel := b.Velocity.Sub(a.Velocity)
	return sweepBox(a.AABB(), b.AABB(), rel, relVel, tol)
}
