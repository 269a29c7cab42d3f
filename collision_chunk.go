package voxphys

import (
	"github.com/chewxy/math32"
	"github.com/gekko3d/voxphys/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

// chunkGrid maps between world space and the cells of a chunk body. Chunks are
// axis aligned; rotation and scale of the owning body are not applied.
type chunkGrid struct {
	chunk    *voxel.Chunk
	origin   mgl32.Vec3
	cellSize mgl32.Vec3
	size     [3]int
}

func newChunkGrid(chunk *voxel.Chunk, center, halfExtents mgl32.Vec3) chunkGrid {
	size := chunk.Size()
	var cell mgl32.Vec3
	for i := 0; i < 3; i++ {
		cell[i] = 2 * halfExtents[i] / float32(size[i])
	}
	return chunkGrid{
		chunk:    chunk,
		origin:   center.Sub(halfExtents),
		cellSize: cell,
		size:     size,
	}
}

func (g chunkGrid) cellAABB(x, y, z int) AABB {
	min := mgl32.Vec3{
		g.origin.X() + float32(x)*g.cellSize.X(),
		g.origin.Y() + float32(y)*g.cellSize.Y(),
		g.origin.Z() + float32(z)*g.cellSize.Z(),
	}
	return AABBFromMinMax(min, min.Add(g.cellSize))
}

// cellRange returns the inclusive cell index range overlapped by box on one
// axis, clamped to the chunk. ok is false when the box misses the chunk.
func (g chunkGrid) cellRange(box AABB, axis int) (lo, hi int, ok bool) {
	if g.cellSize[axis] <= 0 {
		return 0, 0, false
	}
	min := (box.Min()[axis] - g.origin[axis]) / g.cellSize[axis]
	max := (box.Max()[axis] - g.origin[axis]) / g.cellSize[axis]
	lo = int(math32.Floor(min))
	hi = int(math32.Floor(max))
	if lo < 0 {
		lo = 0
	}
	if hi > g.size[axis]-1 {
		hi = g.size[axis] - 1
	}
	return lo, hi, lo <= hi
}

// CollideShapeChunk sweeps a shape against the solid cells of a chunk body.
// The chunk is treated as stationary and the shape moves by the difference
// of their displacements. Only the earliest hit over all cells is returned.
func CollideShapeChunk(chunkMotion Motion, chunk *voxel.Chunk, shape Motion, tol Tolerance) (Collision, bool) {
	rel := shape.Displacement.Sub(chunkMotion.Displacement)
	relVel := shape.Velocity.Sub(chunkMotion.Velocity)

	// Broad phase: the whole swept shape against the whole chunk.
	query := AABBFromMotion(shape.Position, rel, shape.HalfExtents).Expand(tol.Skin)
	if chunk == nil || !query.Intersects(chunkMotion.AABB()) {
		return Collision{}, false
	}

	g := newChunkGrid(chunk, chunkMotion.Position, chunkMotion.HalfExtents)
	x0, x1, okX := g.cellRange(query, 0)
	y0, y1, okY := g.cellRange(query, 1)
	z0, z1, okZ := g.cellRange(query, 2)
	if !okX || !okY || !okZ {
		return Collision{}, false
	}

	box := shape.AABB()
	var best Collision
	found := false
	for z := z0; z <= z1; z++ {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				data, _ := chunk.Get(x, y, z)
				cell := g.cellAABB(x, y, z)
				var c Collision
				var ok bool
				switch data.Kind {
				case voxel.Cuboid:
					c, ok = sweepBox(cell, box, rel, relVel, tol)
				case voxel.Slope:
					c, ok = collideSlope(cell, data, g.cellSize, box, rel, relVel, tol)
				default:
					continue
				}
				if ok && c.earlier(best, found) {
					best, found = c, true
				}
			}
		}
	}
	return best, found
}

// slopeNormal returns the world space normal of a slope cell's sloped face.
// Cells that are not cubes skew the plane, so the cell-space normal is
// rescaled by the cell size.
func slopeNormal(data voxel.Data, cellSize mgl32.Vec3) mgl32.Vec3 {
	local := data.Orientation.Rotate(mgl32.Vec3{0, 1, 1})
	return mgl32.Vec3{
		local.X() / cellSize.X(),
		local.Y() / cellSize.Y(),
		local.Z() / cellSize.Z(),
	}.Normalize()
}

// project returns the interval box covers along l.
func project(box AABB, l mgl32.Vec3) (lo, hi float32) {
	c := box.Center.Dot(l)
	var r float32
	for i := 0; i < 3; i++ {
		r += math32.Abs(l[i]) * box.HalfExtents[i]
	}
	return c - r, c + r
}

// collideSlope sweeps box against a wedge cell. The wedge is the cell cut by
// the plane through the cell center with the oriented slope normal n, keeping
// the side n points away from.
//
// Box and wedge are convex and every edge of either is parallel to a cell axis
// or lies in the sloped face, so the three cell axes and n are the only
// separating axes. The hit is the last axis the box starts overlapping on.
func collideSlope(cell AABB, data voxel.Data, cellSize mgl32.Vec3, box AABB, rel, relVel mgl32.Vec3, tol Tolerance) (Collision, bool) {
	n := slopeNormal(data, cellSize)
	axes := [4]mgl32.Vec3{
		axisUnit(axisOrder[0], 1),
		axisUnit(axisOrder[1], 1),
		axisUnit(axisOrder[2], 1),
		n,
	}

	var wLo, wHi, bLo, bHi, v [4]float32
	enter, exit := math32.Inf(-1), math32.Inf(1)
	hit := -1
	for k, l := range axes {
		bLo[k], bHi[k] = project(box, l)
		if k < 3 {
			wLo[k], wHi[k] = project(cell, l)
		} else {
			// The plane passes through the center, the solid side lies below it.
			wHi[k] = cell.Center.Dot(n)
			wLo[k], _ = project(cell, n)
		}
		v[k] = rel.Dot(l)
		if math32.Abs(v[k]) < tol.Epsilon {
			if bLo[k]-wHi[k] > tol.Skin || wLo[k]-bHi[k] > tol.Skin {
				return Collision{}, false
			}
			continue
		}
		t0 := (wLo[k] - bHi[k]) / v[k]
		t1 := (wHi[k] - bLo[k]) / v[k]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > enter {
			enter, hit = t0, k
		}
		exit = math32.Min(exit, t1)
	}
	if hit < 0 || enter > 1 || exit < enter {
		return Collision{}, false
	}

	t := enter
	if t < 0 {
		// Overlapping at the start: only a contact if the leading side is
		// within the skin.
		gap := wLo[hit] - bHi[hit]
		if v[hit] < 0 {
			gap = bLo[hit] - wHi[hit]
		}
		if gap < -tol.Skin {
			return Collision{}, false
		}
		t = 0
	}

	// The shapes must actually pass through each other on every other axis.
	for k := range axes {
		if k == hit {
			continue
		}
		lo := math32.Max(bLo[k]+v[k]*t, wLo[k])
		hi := math32.Min(bHi[k]+v[k]*t, wHi[k])
		if hi-lo <= tol.Skin {
			return Collision{}, false
		}
	}

	normal := axes[hit]
	if v[hit] > 0 {
		normal = normal.Mul(-1)
	}
	var velDelta mgl32.Vec3
	if vn := relVel.Dot(normal); vn < 0 {
		velDelta = normal.Mul(-vn)
	}
	return Collision{
		T:             t,
		PositionDelta: normal.Mul(-(1 - t) * rel.Dot(normal)),
		VelocityDelta: velDelta,
		NormalA:       normal,
		NormalB:       normal.Mul(-1),
	}, true
}
