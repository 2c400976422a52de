package lingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	cases := map[string]string{
		"Ant":       "Ants",
		"Harpy":     "Harpies",
		"Monkey":    "Monkeys",
		"Succubus":  "Succubi",
		"Lich":      "Liches",
		"Sphinx":    "Sphinxes",
		"Bush":      "Bushes",
		"Pegasus":   "Pegasi",
		"Dwarf":     "Dwarves",
		"knife":     "knives",
		"Eel Man":   "Eel Men",
		"Merman":    "Mermen",
		"Goblin":    "Goblins",
		"Kiss":      "Kisses",
		"Cub Scout": "Cub Scouts",
	}
	for in, want := range cases {
		assert.Equal(t, want, Plural(in), "Plural(%q)", in)
	}
}

func TestArticles(t *testing.T) {
	assert.Equal(t, "a goblin", Indefinite("goblin", 1))
	assert.Equal(t, "an orc", Indefinite("orc", 1))
	assert.Equal(t, "an Imp", Indefinite("Imp", 1))
	assert.Equal(t, "3 orcs", Indefinite("orc", 3))
	assert.Equal(t, "the orc", Definite("orc", 1))
	assert.Equal(t, "the Harpies", Definite("Harpy", 2))
}

func TestCasing(t *testing.T) {
	assert.Equal(t, "Ear", Capitalize("ear"))
	assert.Equal(t, "Merit badge", Capitalize("merit badge"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Brak", Title("brak"))
	assert.Equal(t, "goblin", Lower("Goblin"))
}

func TestRoman(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		cases := map[int]string{
			0:     "N",
			1:     "I",
			4:     "IV",
			9:     "IX",
			14:    "XIV",
			40:    "XL",
			400:   "CD",
			1999:  "MCMXCIX",
			4000:  "MA",
			5000:  "A",
			9000:  "MT",
			10000: "T",
			-3:    "-III",
		}
		for n, want := range cases {
			assert.Equal(t, want, Roman(n), "Roman(%d)", n)
			assert.Equal(t, n, ParseRoman(want), "ParseRoman(%q)", want)
		}
	})

	t.Run("round trip below 40000", func(t *testing.T) {
		for n := 1; n < 40000; n++ {
			if got := ParseRoman(Roman(n)); got != n {
				t.Fatalf("round trip %d: got %d via %q", n, got, Roman(n))
			}
		}
	})

	t.Run("garbage is skipped", func(t *testing.T) {
		assert.Equal(t, 0, ParseRoman(""))
		assert.Equal(t, 11, ParseRoman("X?I"))
	})
}

func TestRoughTime(t *testing.T) {
	assert.Equal(t, "5 seconds", RoughTime(5))
	assert.Equal(t, "119 seconds", RoughTime(119))
	assert.Equal(t, "2 minutes", RoughTime(120))
	assert.Equal(t, "2 hours", RoughTime(7200))
	assert.Equal(t, "2 days", RoughTime(172800))
	assert.Equal(t, "2 months", RoughTime(60*60*24*60))
	assert.Equal(t, "2 years", RoughTime(60*60*24*30*24))
}
