package character

import (
	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
)

// Roll is a set of rolled stats and the generator state that produced them.
type Roll struct {
	Stats Stats
	Seed  alea.State
}

// RollStats rolls 3d6 for each prime stat, then derives HP and MP Max.
func RollStats(r *alea.Rand) Roll {
	roll := Roll{Seed: r.State()}
	for _, st := range catalog.PrimeStats {
		roll.Stats[st] = 3 + r.Intn(6) + r.Intn(6) + r.Intn(6)
	}
	roll.Stats[catalog.HPMax] = r.Intn(8) + roll.Stats[catalog.CON]/6
	roll.Stats[catalog.MPMax] = r.Intn(8) + roll.Stats[catalog.INT]/6
	return roll
}

// Total sums the prime stats.
func (r Roll) Total() int {
	t := 0
	for _, st := range catalog.PrimeStats {
		t += r.Stats[st]
	}
	return t
}

// Roller keeps the history of rolls made during character creation so a
// player can step back to an earlier one.
type Roller struct {
	rng     *alea.Rand
	history []alea.State
}

func NewRoller(seed alea.State) *Roller {
	return &Roller{rng: alea.New(seed)}
}

// Roll rolls a fresh set of stats.
func (r *Roller) Roll() Roll {
	roll := RollStats(r.rng)
	r.history = append(r.history, roll.Seed)
	return roll
}

// Unroll discards the latest roll and reproduces the one before it. ok is
// false when there is nothing to go back to.
func (r *Roller) Unroll() (Roll, bool) {
	if len(r.history) < 2 {
		return Roll{}, false
	}
	r.history = r.history[:len(r.history)-1]
	r.rng.Restore(r.history[len(r.history)-1])
	return RollStats(r.rng), true
}
