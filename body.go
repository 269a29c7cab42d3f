package voxphys

import (
	"fmt"

	"github.com/gekko3d/voxphys/voxel"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

type Shape int

const (
	ShapeCuboid Shape = iota
	// ShapeCapsule collides as its bounding cuboid.
	ShapeCapsule
	ShapeVoxelChunk
)

func (s Shape) String() string {
	switch s {
	case ShapeCapsule:
		return "Capsule"
	case ShapeVoxelChunk:
		return "VoxelChunk"
	default:
		return "Cuboid"
	}
}

// Body is a simulated object. The host owns its identity and lifetime; the
// engine only reads and writes the physics attributes.
type Body struct {
	ID uuid.UUID

	// Current is the transform at the end of the last tick. Previous is the
	// transform at its start, for interpolation.
	Current  Transform
	Previous Transform

	HalfExtents mgl32.Vec3
	Shape       Shape
	Chunk       *voxel.Chunk

	Velocity mgl32.Vec3
	// Friction multiplies the velocity once per tick, per axis.
	Friction mgl32.Vec3
	Weight   float32

	Collision   CollisionConfig
	AntiGravity bool

	pending   *pendingResponse
	justAdded bool
}

// NewBody creates a body whose previous transform equals tr. Negative half
// extents are a programming error and panic.
func NewBody(tr Transform, halfExtents mgl32.Vec3, shape Shape) *Body {
	if halfExtents.X() < 0 || halfExtents.Y() < 0 || halfExtents.Z() < 0 {
		panic(fmt.Sprintf("voxphys: negative half extents %v", halfExtents))
	}
	return &Body{
		ID:          uuid.New(),
		Current:     tr,
		Previous:    tr,
		HalfExtents: halfExtents,
		Shape:       shape,
		Friction:    mgl32.Vec3{1, 1, 1},
		Weight:      1,
		Collision:   NewCollisionConfig(GroupBasic, GroupAll),
		justAdded:   true,
	}
}

// NewChunkBody creates a terrain body around chunk. The chunk spans the whole
// box, so each cell measures 2*halfExtents/size. Terrain ignores gravity and
// is not pushed by anything unless reconfigured.
func NewChunkBody(tr Transform, chunk *voxel.Chunk, halfExtents mgl32.Vec3) *Body {
	if chunk == nil {
		panic("voxphys: chunk body without a chunk")
	}
	b := NewBody(tr, halfExtents, ShapeVoxelChunk)
	b.Chunk = chunk
	b.AntiGravity = true
	b.Collision = NewCollisionConfig(GroupStaticTerrain, GroupNone)
	return b
}

func (b *Body) WithVelocity(v mgl32.Vec3) *Body {
	b.Velocity = v
	return b
}

func (b *Body) WithFriction(f mgl32.Vec3) *Body {
	b.Friction = f
	return b
}

// WithUniformFriction sets the same friction on every axis.
func (b *Body) WithUniformFriction(f float32) *Body {
	return b.WithFriction(mgl32.Vec3{f, f, f})
}

func (b *Body) WithWeight(w float32) *Body {
	b.Weight = w
	return b
}

func (b *Body) WithCollisionConfig(c CollisionConfig) *Body {
	b.Collision = c
	return b
}

func (b *Body) WithAntiGravity(on bool) *Body {
	b.AntiGravity = on
	return b
}

func (b *Body) IsChunk() bool {
	return b.Shape == ShapeVoxelChunk && b.Chunk != nil
}

func (b *Body) AABB() AABB {
	return NewAABB(b.Current.Position, b.HalfExtents)
}

// VoxelSize is the size of one chunk cell in world units. Non-chunk bodies
// report zero.
func (b *Body) VoxelSize() mgl32.Vec3 {
	if !b.IsChunk() {
		return mgl32.Vec3{}
	}
	size := b.Chunk.Size()
	return mgl32.Vec3{
		2 * b.HalfExtents.X() / float32(size[0]),
		2 * b.HalfExtents.Y() / float32(size[1]),
		2 * b.HalfExtents.Z() / float32(size[2]),
	}
}

// PendingCollision returns the collision recorded by the last detection pass
// that has not been applied yet.
func (b *Body) PendingCollision() (Collision, bool) {
	if b.pending == nil {
		return Collision{}, false
	}
	return b.pending.collision, true
}

func (b *Body) motion(displacement mgl32.Vec3) Motion {
	return Motion{
		Position:     b.Current.Position,
		Displacement: displacement,
		Velocity:     b.Velocity,
		HalfExtents:  b.HalfExtents,
	}
}
