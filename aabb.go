package voxphys

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned box stored as a center and half extents.
type AABB struct {
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
}

func NewAABB(center, halfExtents mgl32.Vec3) AABB {
	return AABB{Center: center, HalfExtents: halfExtents}
}

// AABBFromMinMax builds a box from its corners.
func AABBFromMinMax(min, max mgl32.Vec3) AABB {
	return AABB{
		Center:      min.Add(max).Mul(0.5),
		HalfExtents: max.Sub(min).Mul(0.5),
	}
}

// AABBFromMotion encloses the whole path of a box with the given half extents
// moving from start to start+dir. Each axis keeps the trailing face at the
// start and the leading face at the destination.
func AABBFromMotion(start, dir, halfExtents mgl32.Vec3) AABB {
	var min, max mgl32.Vec3
	for i := 0; i < 3; i++ {
		if dir[i] < 0 {
			min[i] = start[i] + dir[i] - halfExtents[i]
			max[i] = start[i] + halfExtents[i]
		} else {
			min[i] = start[i] - halfExtents[i]
			max[i] = start[i] + dir[i] + halfExtents[i]
		}
	}
	return AABBFromMinMax(min, max)
}

func (b AABB) Min() mgl32.Vec3 {
	return b.Center.Sub(b.HalfExtents)
}

func (b AABB) Max() mgl32.Vec3 {
	return b.Center.Add(b.HalfExtents)
}

// Intersects reports whether the boxes overlap on all three axes. Boxes that
// only touch do not intersect.
func (b AABB) Intersects(o AABB) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(b.Center[i]-o.Center[i]) >= b.HalfExtents[i]+o.HalfExtents[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(p[i]-b.Center[i]) > b.HalfExtents[i] {
			return false
		}
	}
	return true
}

func (b AABB) Translate(offset mgl32.Vec3) AABB {
	b.Center = b.Center.Add(offset)
	return b
}

// Expand grows the box by margin on every side.
func (b AABB) Expand(margin float32) AABB {
	b.HalfExtents = b.HalfExtents.Add(mgl32.Vec3{margin, margin, margin})
	return b
}

// Union is the smallest box containing both boxes.
func (b AABB) Union(o AABB) AABB {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	var min, max mgl32.Vec3
	for i := 0; i < 3; i++ {
		min[i] = math32.Min(bMin[i], oMin[i])
		max[i] = math32.Max(bMax[i], oMax[i])
	}
	return AABBFromMinMax(min, max)
}
