package voxphys

// CollisionGroups is a bitmask of the groups a body belongs to or reacts to.
type CollisionGroups uint32

const (
	GroupNone          CollisionGroups = 0
	GroupAll           CollisionGroups = 0xFFFFFFFF
	GroupParticles     CollisionGroups = 1 << 0
	GroupStaticTerrain CollisionGroups = 1 << 1
	GroupMovingTerrain CollisionGroups = 1 << 2
	GroupPlayers       CollisionGroups = 1 << 3
	GroupNPCs          CollisionGroups = 1 << 4
	GroupMobs          CollisionGroups = 1 << 5
	GroupBasic         CollisionGroups = 1 << 6
	// Bosses are in every group.
	GroupBosses CollisionGroups = 0xFFFFFFFF
)

// CollisionConfig holds what a body is and what it is pushed by.
type CollisionConfig struct {
	Groups     CollisionGroups
	AffectedBy CollisionGroups
}

func NewCollisionConfig(groups, affectedBy CollisionGroups) CollisionConfig {
	return CollisionConfig{Groups: groups, AffectedBy: affectedBy}
}

// NotAffectedBy returns a copy that ignores the given groups.
func (c CollisionConfig) NotAffectedBy(groups CollisionGroups) CollisionConfig {
	c.AffectedBy &^= groups
	return c
}

func (c CollisionConfig) IsAffectedBy(groups CollisionGroups) bool {
	return c.AffectedBy&groups != 0
}

// CollisionType says how the push from a collision is split between A and B.
type CollisionType int

const (
	// NoPush means A and B pass through each other.
	NoPush CollisionType = iota
	// APushesB moves only B.
	APushesB
	// BPushesA moves only A.
	BPushesA
	// WeightedPush moves both, lighter bodies more.
	WeightedPush
)

func (t CollisionType) String() string {
	switch t {
	case APushesB:
		return "APushesB"
	case BPushesA:
		return "BPushesA"
	case WeightedPush:
		return "WeightedPush"
	default:
		return "NoPush"
	}
}

func CollisionTypeOf(a, b CollisionConfig) CollisionType {
	aAffected := a.IsAffectedBy(b.Groups)
	bAffected := b.IsAffectedBy(a.Groups)
	switch {
	case aAffected && bAffected:
		return WeightedPush
	case aAffected:
		return BPushesA
	case bAffected:
		return APushesB
	default:
		return NoPush
	}
}

// PushShares returns the fraction of the correction A and B each take.
// Weighted pushes give A wB/(wA+wB) and B wA/(wA+wB); non-positive weights
// fall back to an even split.
func (t CollisionType) PushShares(weightA, weightB float32) (aShare, bShare float32) {
	switch t {
	case APushesB:
		return 0, 1
	case BPushesA:
		return 1, 0
	case WeightedPush:
		total := weightA + weightB
		if weightA <= 0 || weightB <= 0 || total <= 0 {
			return 0.5, 0.5
		}
		return weightB / total, weightA / total
	default:
		return 0, 0
	}
}
