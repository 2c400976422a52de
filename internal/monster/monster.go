// Package monster picks the foes a hero fights and dresses them up to match
// the hero's level.
package monster

import (
	"strings"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
	"github.com/fernicar/PQ-TINS-Edition/internal/names"
)

// Fallback is fought when the bestiary is empty.
var Fallback = catalog.Monster{Name: "Rat", Level: 0, Loot: "tail"}

// Encounter is a resolved fight.
type Encounter struct {
	// Monster is the base record. Its Loot decides the drop.
	Monster catalog.Monster
	// Quantity of foes.
	Quantity int
	// Level is the combined level of the whole group.
	Level int
	// Description is the display text, e.g. "3 greater orcs".
	Description string
}

// Label is the task text shown while fighting.
func (e Encounter) Label() string {
	return "Executing " + e.Description
}

// Select finds a fight for a hero of level. When quarry is non-nil it is
// the standing quest target and is chosen one time in four.
func Select(r *alea.Rand, level, candidates int, quarry *catalog.Monster) Encounter {
	target := level
	for i := level; i >= 1; i-- {
		if r.Odds(2, 5) {
			target += r.Sign()
		}
	}
	if target < 1 {
		target = 1
	}

	definite := false
	var m catalog.Monster
	switch {
	case r.Odds(1, 25):
		m, definite = npc(r, target)
	case quarry != nil && r.Odds(1, 4):
		m = *quarry
	default:
		var idx int
		m, idx = alea.Closest(r, catalog.Monsters, candidates, target, catalog.MonsterLevel)
		if idx < 0 {
			m = Fallback
		}
	}

	qty := 1
	if target-m.Level > 10 {
		base := max(m.Level, 1)
		qty = (target + r.Intn(base)) / base
		if qty < 1 {
			qty = 1
		}
		target /= qty
	}

	desc := modify(r, m.Name, target-m.Level)
	if !definite {
		desc = lingo.Indefinite(desc, qty)
	}
	return Encounter{
		Monster:     m,
		Quantity:    qty,
		Level:       target * qty,
		Description: desc,
	}
}

// npc occasionally pits the hero against another adventurer.
func npc(r *alea.Rand, level int) (catalog.Monster, bool) {
	race, _ := alea.Pick(r, catalog.Races)
	if r.Odds(1, 2) {
		class, _ := alea.Pick(r, catalog.Classes)
		return catalog.Monster{Name: "passing " + race.Name + " " + class.Name, Level: level, Loot: "*"}, false
	}
	title, _ := alea.PickLow(r, catalog.Titles)
	name := title + " " + names.Generate(r) + " the " + race.Name
	return catalog.Monster{Name: name, Level: level, Loot: "*"}, true
}

// Named invents a nemesis near level, e.g. "Brak the Troll".
func Named(r *alea.Rand, level, candidates int) string {
	m, idx := alea.Closest(r, catalog.Monsters, candidates, level, catalog.MonsterLevel)
	if idx < 0 {
		m = Fallback
	}
	return names.Generate(r) + " the " + m.Name
}

var (
	sickWords    = []string{"dead", "comatose", "crippled", "sick", "undernourished"}
	youngWords   = []string{"foetal", "baby", "preadolescent", "teenage", "underage"}
	bigWords     = []string{"greater", "massive", "enormous", "giant", "titanic"}
	specialWords = []string{"veteran", "cursed", "warrior", "undead", "demon"}
	specialParts = []string{"Battle-", "cursed ", "Were-", "undead ", "demon "}
)

// modify describes a monster gap levels weaker (negative) or stronger than
// the fight calls for.
func modify(r *alea.Rand, s string, gap int) string {
	switch {
	case gap <= -10:
		return "imaginary " + s
	case gap < -5:
		i := 5 - r.Intn(10+gap+1)
		return sick(i, young(-gap-i, s))
	case gap < 0 && r.Intn(2) == 1:
		return sick(gap, s)
	case gap < 0:
		return young(gap, s)
	case gap >= 10:
		return "messianic " + s
	case gap > 5:
		i := 5 - r.Intn(10-gap+1)
		return big(i, special(gap-i, s))
	case gap > 0 && r.Intn(2) == 1:
		return big(gap, s)
	case gap > 0:
		return special(gap, s)
	}
	return s
}

func sick(m int, s string) string  { return prefix(sickWords, 6-abs(m), s, " ") }
func young(m int, s string) string { return prefix(youngWords, 6-abs(m), s, " ") }
func big(m int, s string) string   { return prefix(bigWords, m, s, " ") }

func special(m int, s string) string {
	if strings.Contains(s, " ") {
		return prefix(specialWords, m, s, " ")
	}
	return prefix(specialParts, m, s, "")
}

func prefix(words []string, m int, s, sep string) string {
	m = abs(m)
	if m < 1 || m > len(words) {
		return s
	}
	return words[m-1] + sep + s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
