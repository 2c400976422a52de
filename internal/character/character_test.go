package character

import (
	"testing"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollStats(t *testing.T) {
	r := alea.NewSeeded("roll")
	for i := 0; i < 200; i++ {
		roll := RollStats(r)
		for _, st := range catalog.PrimeStats {
			require.GreaterOrEqual(t, roll.Stats[st], 3)
			require.LessOrEqual(t, roll.Stats[st], 18)
		}
		assert.GreaterOrEqual(t, roll.Stats[catalog.HPMax], roll.Stats[catalog.CON]/6)
		assert.GreaterOrEqual(t, roll.Stats[catalog.MPMax], roll.Stats[catalog.INT]/6)
	}
}

func TestRoller_Unroll(t *testing.T) {
	roller := NewRoller(alea.Seed("unroll"))

	_, ok := roller.Unroll()
	assert.False(t, ok, "nothing to unroll yet")

	first := roller.Roll()
	second := roller.Roll()
	assert.NotEqual(t, first.Seed, second.Seed)

	back, ok := roller.Unroll()
	require.True(t, ok)
	assert.Equal(t, first, back)

	again := roller.Roll()
	assert.Equal(t, second, again, "rolling forward after an unroll repeats the same dice")
}

func TestRollStats_Replay(t *testing.T) {
	r := alea.NewSeeded("replay")
	roll := RollStats(r)
	assert.Equal(t, roll, RollStats(alea.New(roll.Seed)))
}

func TestStats_Best(t *testing.T) {
	var s Stats
	s[catalog.STR] = 10
	s[catalog.INT] = 15
	s[catalog.WIS] = 15
	s[catalog.HPMax] = 40
	assert.Equal(t, catalog.INT, s.Best())
	assert.Equal(t, "INT 15", s.BestLabel())
}

func TestGainStat(t *testing.T) {
	r := alea.NewSeeded("gain")
	var s Stats
	for _, st := range catalog.PrimeStats {
		s[st] = 10
	}
	s[catalog.STR] = 18

	counts := map[catalog.Stat]int{}
	for i := 0; i < 1000; i++ {
		before := s
		st := GainStat(r, &s)
		require.Equal(t, before[st]+1, s[st])
		counts[st]++
	}
	assert.Greater(t, counts[catalog.STR], counts[catalog.CHA], "squared weighting favours the strongest stat")
}

func TestGrantSpell(t *testing.T) {
	t.Run("learns an unknown spell from the eligible prefix", func(t *testing.T) {
		r := alea.NewSeeded("spell")
		c := &Character{Level: 1}
		c.Stats[catalog.WIS] = 2

		sp, ok := GrantSpell(r, c)
		require.True(t, ok)
		assert.Contains(t, catalog.Spells[:3], sp.Name)
		assert.Equal(t, 1, sp.Level)
		assert.Equal(t, 1, c.Spells[sp.Name])
	})

	t.Run("levels scale with character level", func(t *testing.T) {
		r := alea.NewSeeded("spell2")
		c := &Character{Level: 14}
		c.Stats[catalog.WIS] = 10
		sp, ok := GrantSpell(r, c)
		require.True(t, ok)
		assert.Equal(t, 3, sp.Level)
	})

	t.Run("improves a known spell when none are left", func(t *testing.T) {
		r := alea.NewSeeded("spell3")
		c := &Character{Level: 1, Spells: Spellbook{catalog.Spells[0]: 2}}
		sp, ok := GrantSpell(r, c)
		require.True(t, ok)
		assert.Equal(t, catalog.Spells[0], sp.Name)
		assert.Equal(t, 3, c.Spells[catalog.Spells[0]])
	})

	t.Run("nothing eligible", func(t *testing.T) {
		c := &Character{}
		_, ok := GrantSpell(alea.NewSeeded("none"), c)
		assert.False(t, ok)
		assert.Empty(t, c.Spells)
	})
}

func TestSpellbook(t *testing.T) {
	b := Spellbook{"Rabbit Punch": 1, "Hastiness": 4, "Slime Finger": 2}
	sorted := b.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Hastiness", sorted[0].Name)
	assert.Equal(t, "IV", sorted[0].Roman())

	// Hastiness scores 1*4, Rabbit Punch 2*1, Slime Finger 3*2.
	assert.Equal(t, "Slime Finger II", b.Best())
	assert.Equal(t, "", Spellbook{}.Best())

	clone := b.Clone()
	clone["Hastiness"] = 9
	assert.Equal(t, 4, b["Hastiness"])
}

func TestStartingEquipment(t *testing.T) {
	e := StartingEquipment()
	assert.Equal(t, "Sharp Rock", e[catalog.Weapon])
	assert.Equal(t, "-3 Burlap", e[catalog.Hauberk])
	assert.Equal(t, "", e[catalog.Shield])
}
