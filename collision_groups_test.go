package voxphys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionTypeOf(t *testing.T) {
	terrain := NewCollisionConfig(GroupStaticTerrain, GroupNone)
	player := NewCollisionConfig(GroupPlayers, GroupAll)
	ghost := NewCollisionConfig(GroupParticles, GroupNone)
	mob := NewCollisionConfig(GroupMobs, GroupAll)

	tests := []struct {
		name string
		a, b CollisionConfig
		want CollisionType
	}{
		{"neither affected", terrain, ghost, NoPush},
		{"only b affected", terrain, player, APushesB},
		{"only a affected", player, terrain, BPushesA},
		{"both affected", player, mob, WeightedPush},
		{"mob ignoring players", mob.NotAffectedBy(GroupPlayers), player, APushesB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollisionTypeOf(tt.a, tt.b); got != tt.want {
				t.Errorf("CollisionTypeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionConfigAffectedBy(t *testing.T) {
	c := NewCollisionConfig(GroupPlayers, GroupStaticTerrain|GroupMobs)
	assert.True(t, c.IsAffectedBy(GroupMobs))
	assert.True(t, c.IsAffectedBy(GroupBosses))
	assert.False(t, c.IsAffectedBy(GroupPlayers))
	assert.False(t, c.IsAffectedBy(GroupNone))

	c = c.NotAffectedBy(GroupMobs)
	assert.False(t, c.IsAffectedBy(GroupMobs))
	assert.True(t, c.IsAffectedBy(GroupStaticTerrain))
}

func TestPushShares(t *testing.T) {
	a, b := APushesB.PushShares(1, 1)
	assert.Equal(t, float32(0), a)
	assert.Equal(t, float32(1), b)

	a, b = BPushesA.PushShares(1, 1)
	assert.Equal(t, float32(1), a)
	assert.Equal(t, float32(0), b)

	// A heavier B pushes A more.
	a, b = WeightedPush.PushShares(1, 3)
	assert.InDelta(t, 0.75, a, 1e-6)
	assert.InDelta(t, 0.25, b, 1e-6)

	a, b = WeightedPush.PushShares(0, 2)
	assert.Equal(t, float32(0.5), a)
	assert.Equal(t, float32(0.5), b)

	a, b = NoPush.PushShares(1, 1)
	assert.Zero(t, a)
	assert.Zero(t, b)
}
