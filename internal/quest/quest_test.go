package quest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var windows = Windows{Exterminate: 4, Placate: 2}

func TestGenerate_AllArchetypes(t *testing.T) {
	r := alea.NewSeeded("quests")
	seen := map[Archetype]bool{}
	for i := 0; i < 300; i++ {
		g := Generate(r, 5, windows)
		seen[g.Archetype] = true

		switch g.Archetype {
		case Exterminate:
			require.NotNil(t, g.Quarry)
			assert.GreaterOrEqual(t, g.QuarryIndex, 0)
			assert.True(t, strings.HasPrefix(g.Description, "Exterminate the "), g.Description)
		case Placate:
			assert.Nil(t, g.Quarry)
			assert.True(t, strings.HasPrefix(g.Description, "Placate the "), g.Description)
		case Seek:
			assert.True(t, strings.HasPrefix(g.Description, "Seek the "), g.Description)
		case Deliver:
			assert.True(t, strings.HasPrefix(g.Description, "Deliver this "), g.Description)
		case Fetch:
			assert.Regexp(t, `^Fetch me an? `, g.Description)
		}
	}
	assert.Len(t, seen, len(Archetypes))
}

func TestGenerate_Deterministic(t *testing.T) {
	a := alea.NewSeeded(99)
	b := alea.NewSeeded(99)
	for i := 0; i < 30; i++ {
		assert.Equal(t, Generate(a, 12, windows), Generate(b, 12, windows))
	}
}

func TestLog(t *testing.T) {
	t.Run("only the newest quest is open after restore", func(t *testing.T) {
		l := Restore([]string{"Fetch me a sock", "Deliver this nail"})
		entries := l.Entries()
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Done)
		assert.False(t, entries[1].Done)

		cur, ok := l.Current()
		require.True(t, ok)
		assert.Equal(t, "Deliver this nail", cur.Description)

		l.CompleteAll()
		cur, _ = l.Current()
		assert.True(t, cur.Done)
	})

	t.Run("bounded window", func(t *testing.T) {
		var l Log
		for i := 0; i < 250; i++ {
			l.Add(fmt.Sprintf("quest %d", i))
		}
		assert.Equal(t, MaxLog, l.Len())
		assert.Equal(t, "quest 150", l.Descriptions()[0])
		cur, _ := l.Current()
		assert.Equal(t, "quest 249", cur.Description)
	})

	t.Run("empty", func(t *testing.T) {
		var l Log
		_, ok := l.Current()
		assert.False(t, ok)
		assert.Empty(t, l.Descriptions())
	})
}

func TestPickReward(t *testing.T) {
	r := alea.NewSeeded("reward")
	seen := map[RewardKind]bool{}
	for i := 0; i < 100; i++ {
		seen[PickReward(r)] = true
	}
	assert.Len(t, seen, 4)
}
