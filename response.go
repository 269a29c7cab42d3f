package voxphys

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// pendingResponse is the correction a body takes at the end of a detection
// pass. Only the earliest collision of the pass is kept.
type pendingResponse struct {
	collision Collision
	share     float32
	dispDelta mgl32.Vec3
	velDelta  mgl32.Vec3
}

func (b *Body) offer(c Collision, share float32, dispDelta, velDelta mgl32.Vec3) {
	if b.pending != nil && c.T >= b.pending.collision.T {
		return
	}
	b.pending = &pendingResponse{
		collision: c,
		share:     share,
		dispDelta: dispDelta,
		velDelta:  velDelta,
	}
}

// slide redirects v along the surface with unit normal n. A head-on hit stops
// v, a grazing hit keeps most of it: the result is the tangent direction
// scaled by |v|*(1-|cos θ|), θ being the angle between -v and n. Motion that
// does not point into the surface is returned unchanged.
func slide(v, n mgl32.Vec3, eps float32) mgl32.Vec3 {
	vn := v.Dot(n)
	if vn >= 0 {
		return v
	}
	length := v.Len()
	if length < eps {
		return mgl32.Vec3{}
	}
	tangent := v.Sub(n.Mul(vn))
	tl := tangent.Len()
	if tl < eps {
		return mgl32.Vec3{}
	}
	cos := -vn / length
	return tangent.Mul(length * (1 - math32.Abs(cos)) / tl)
}

// respond splits the correction for a collision of b against a between the
// two bodies. rel and relVel are b's motion and velocity relative to a.
func respond(a, b *Body, c Collision, kind CollisionType, rel, relVel mgl32.Vec3, eps float32) {
	shareA, shareB := kind.PushShares(a.Weight, b.Weight)

	rest := rel.Mul(1 - c.T)
	base := slide(rest, c.NormalA, eps).Sub(rest)
	baseVel := slide(relVel, c.NormalA, eps).Sub(relVel)

	if shareB > 0 {
		b.offer(c, shareB, base.Mul(shareB), baseVel.Mul(shareB))
	}
	if shareA > 0 {
		a.offer(c.Mirror(), shareA, base.Mul(-shareA), baseVel.Mul(-shareA))
	}
}
