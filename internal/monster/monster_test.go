package monster

import (
	"strings"
	"testing"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	r := alea.NewSeeded("fight")
	for i := 0; i < 1000; i++ {
		lvl := 1 + r.Intn(60)
		e := Select(r, lvl, 6, nil)
		require.NotEmpty(t, e.Description)
		require.GreaterOrEqual(t, e.Quantity, 1)
		require.GreaterOrEqual(t, e.Level, 0)
		assert.True(t, strings.HasPrefix(e.Label(), "Executing "))
	}
}

func TestSelect_Deterministic(t *testing.T) {
	a := alea.NewSeeded("same")
	b := alea.NewSeeded("same")
	for i := 0; i < 50; i++ {
		assert.Equal(t, Select(a, 10, 6, nil), Select(b, 10, 6, nil))
	}
}

func TestSelect_QuestQuarry(t *testing.T) {
	r := alea.NewSeeded("quarry")
	quarry := catalog.Monster{Name: "Demogorgon", Level: 53, Loot: "tentacle"}
	hits := 0
	for i := 0; i < 400; i++ {
		if Select(r, 5, 6, &quarry).Monster.Name == "Demogorgon" {
			hits++
		}
	}
	assert.Greater(t, hits, 40, "quest quarry should turn up about one fight in four")
	assert.Less(t, hits, 200)
}

func TestSelect_WeakFoesComeInNumbers(t *testing.T) {
	r := alea.NewSeeded("swarm")
	quarry := catalog.Monster{Name: "Ant", Level: 0, Loot: "antenna"}
	multi := false
	for i := 0; i < 400; i++ {
		e := Select(r, 40, 6, &quarry)
		if e.Monster.Name == "Ant" && e.Quantity > 1 {
			multi = true
			assert.Regexp(t, `^\d+ `, e.Description)
		}
	}
	assert.True(t, multi)
}

func TestModify(t *testing.T) {
	r := alea.NewSeeded("mod")

	assert.Equal(t, "Orc", modify(r, "Orc", 0))
	assert.Equal(t, "imaginary Orc", modify(r, "Orc", -10))
	assert.Equal(t, "messianic Orc", modify(r, "Orc", 10))

	for i := 0; i < 50; i++ {
		got := modify(r, "Orc", -1)
		assert.Contains(t, []string{"undernourished Orc", "underage Orc"}, got)

		got = modify(r, "Orc", 1)
		assert.Contains(t, []string{"greater Orc", "Battle-Orc"}, got)

		got = modify(r, "Blink Dog", 2)
		assert.Contains(t, []string{"massive Blink Dog", "cursed Blink Dog"}, got)
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "dead Orc", sick(-5, "Orc"))
	assert.Equal(t, "Orc", sick(-6, "Orc"), "out of range magnitudes leave the name alone")
	assert.Equal(t, "titanic Orc", big(5, "Orc"))
	assert.Equal(t, "Were-Orc", special(3, "Orc"))
	assert.Equal(t, "warrior Blink Dog", special(3, "Blink Dog"))
}

func TestNamed(t *testing.T) {
	r := alea.NewSeeded("nemesis")
	for i := 0; i < 50; i++ {
		assert.Contains(t, Named(r, 10, 5), " the ")
	}
}
