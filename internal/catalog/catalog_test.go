package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesArePopulated(t *testing.T) {
	assert.Len(t, Spells, 47)
	assert.NotEmpty(t, Monsters)
	assert.NotEmpty(t, Weapons)
	assert.NotEmpty(t, Shields)
	assert.NotEmpty(t, Armors)
	assert.NotEmpty(t, BoringItems)
	assert.Len(t, NameParts, 3)
}

func TestModifierSigns(t *testing.T) {
	for _, m := range append(OffenseAttrib, DefenseAttrib...) {
		assert.Positive(t, m.Value, m.Name)
	}
	for _, m := range append(OffenseBad, DefenseBad...) {
		assert.Negative(t, m.Value, m.Name)
	}
}

func TestNamesRoundTrip(t *testing.T) {
	for _, s := range AllStats {
		got, ok := ParseStat(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	for i := 0; i < NumSlots; i++ {
		got, ok := ParseSlot(Slot(i).String())
		require.True(t, ok)
		assert.Equal(t, Slot(i), got)
	}
	_, ok := ParseStat("LUCK")
	assert.False(t, ok)
}

func TestMonsterByName(t *testing.T) {
	m, idx, ok := MonsterByName("Goblin")
	require.True(t, ok)
	assert.Equal(t, 1, m.Level)
	assert.Equal(t, "ear", m.Loot)
	assert.Equal(t, "Goblin", Monsters[idx].Name)

	_, idx, ok = MonsterByName("Tarrasque")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestFindHeritage(t *testing.T) {
	h, ok := FindHeritage(Races, "Land Squid")
	require.True(t, ok)
	assert.Equal(t, []Stat{STR, HPMax}, h.Bonuses)

	_, ok = FindHeritage(Classes, "Accountant")
	assert.False(t, ok)
}
