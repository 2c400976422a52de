package quest

import "github.com/fernicar/PQ-TINS-Edition/internal/alea"

// RewardKind defines the type of reward
type RewardKind string

const (
	RewardSpell     RewardKind = "spell"
	RewardEquipment RewardKind = "equipment"
	RewardStat      RewardKind = "stat"
	RewardItem      RewardKind = "item"
)

var RewardKinds = []RewardKind{RewardSpell, RewardEquipment, RewardStat, RewardItem}

// PickReward chooses what a finished quest pays out.
func PickReward(r *alea.Rand) RewardKind {
	return RewardKinds[r.Intn(len(RewardKinds))]
}
