package voxphys

import (
	"testing"

	"github.com/gekko3d/voxphys/voxel"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBodyDefaults(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{1, 2, 3})
	b := NewBody(tr, mgl32.Vec3{0.5, 1, 0.5}, ShapeCapsule)

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, tr, b.Current)
	assert.Equal(t, tr, b.Previous)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, b.Friction)
	assert.Equal(t, float32(1), b.Weight)
	assert.Equal(t, NewCollisionConfig(GroupBasic, GroupAll), b.Collision)
	assert.False(t, b.AntiGravity)
	assert.False(t, b.IsChunk())
	assert.Equal(t, "Capsule", b.Shape.String())

	_, pending := b.PendingCollision()
	assert.False(t, pending)
}

func TestNewBodyBuilders(t *testing.T) {
	b := NewBody(NewTransform(mgl32.Vec3{}), mgl32.Vec3{1, 1, 1}, ShapeCuboid).
		WithVelocity(mgl32.Vec3{1, 0, 0}).
		WithUniformFriction(0.5).
		WithWeight(4).
		WithAntiGravity(true).
		WithCollisionConfig(NewCollisionConfig(GroupNPCs, GroupStaticTerrain))

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, b.Velocity)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, b.Friction)
	assert.Equal(t, float32(4), b.Weight)
	assert.True(t, b.AntiGravity)
	assert.Equal(t, GroupNPCs, b.Collision.Groups)
}

func TestNewBodyNegativeHalfExtentsPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBody(NewTransform(mgl32.Vec3{}), mgl32.Vec3{1, -1, 1}, ShapeCuboid)
	})
}

func TestNewChunkBody(t *testing.T) {
	chunk := voxel.MustNewChunk(8, 4, 2)
	b := NewChunkBody(NewTransform(mgl32.Vec3{}), chunk, mgl32.Vec3{4, 4, 4})

	assert.True(t, b.IsChunk())
	assert.True(t, b.AntiGravity)
	assert.Equal(t, NewCollisionConfig(GroupStaticTerrain, GroupNone), b.Collision)
	assert.Equal(t, mgl32.Vec3{1, 2, 4}, b.VoxelSize())

	assert.Panics(t, func() {
		NewChunkBody(NewTransform(mgl32.Vec3{}), nil, mgl32.Vec3{1, 1, 1})
	})
}
