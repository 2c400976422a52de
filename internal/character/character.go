// Package character models the hero: traits, stats, equipment and spells,
// plus the stat and spell rewards granted on level up.
package character

import (
	"fmt"
	"sort"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
)

type Character struct {
	Name      string
	Race      string
	Class     string
	Level     int
	Stats     Stats
	Equipment Equipment
	Spells    Spellbook
}

// Clone returns a deep copy.
func (c Character) Clone() Character {
	c.Spells = c.Spells.Clone()
	return c
}

// Stats is indexed by catalog.Stat.
type Stats [catalog.NumStats]int

func (s Stats) Get(st catalog.Stat) int { return s[st] }

func (s *Stats) Add(st catalog.Stat, n int) { s[st] += n }

// Best returns the highest prime stat. Ties go to the earlier stat.
func (s Stats) Best() catalog.Stat {
	best := catalog.STR
	for _, st := range catalog.PrimeStats {
		if s[st] > s[best] {
			best = st
		}
	}
	return best
}

// BestLabel renders the best prime stat as "STR 15".
func (s Stats) BestLabel() string {
	b := s.Best()
	return fmt.Sprintf("%s %d", b, s[b])
}

// GainStat raises one stat by a point and returns it. Half the time any
// stat is eligible; otherwise a prime stat is drawn weighted by its square,
// so strong stats keep growing.
func GainStat(r *alea.Rand, s *Stats) catalog.Stat {
	var chosen catalog.Stat
	if r.Odds(1, 2) {
		chosen, _ = alea.Pick(r, catalog.AllStats)
	} else {
		total := 0
		for _, st := range catalog.PrimeStats {
			total += s[st] * s[st]
		}
		t := r.Intn(total)
		for _, st := range catalog.PrimeStats {
			chosen = st
			t -= s[st] * s[st]
			if t < 0 {
				break
			}
		}
	}
	s.Add(chosen, 1)
	return chosen
}

// Equipment maps each slot to the item worn there. Empty means nothing.
type Equipment [catalog.NumSlots]string

// StartingEquipment is what every new hero sets out with.
func StartingEquipment() Equipment {
	var e Equipment
	e[catalog.Weapon] = "Sharp Rock"
	e[catalog.Hauberk] = "-3 Burlap"
	return e
}

// Spellbook maps spell name to level.
type Spellbook map[string]int

type Spell struct {
	Name  string
	Level int
}

// Roman renders the level the way the spell list displays it.
func (s Spell) Roman() string { return lingo.Roman(s.Level) }

func (b Spellbook) Clone() Spellbook {
	out := make(Spellbook, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Sorted lists spells alphabetically.
func (b Spellbook) Sorted() []Spell {
	out := make([]Spell, 0, len(b))
	for name, lvl := range b {
		out = append(out, Spell{Name: name, Level: lvl})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Best picks the headline spell, weighting later list entries so a fresh
// high-level spell outranks an old cantrip.
func (b Spellbook) Best() string {
	spells := b.Sorted()
	if len(spells) == 0 {
		return ""
	}
	best := 0
	for i := 1; i < len(spells); i++ {
		if (i+1)*spells[i].Level > (best+1)*spells[best].Level {
			best = i
		}
	}
	return spells[best].Name + " " + spells[best].Roman()
}

// GrantSpell teaches an unknown spell from the first WIS+Level catalog
// entries, favouring the front of the list. When every eligible spell is
// already known, one of them goes up a level instead.
func GrantSpell(r *alea.Rand, c *Character) (Spell, bool) {
	if c.Spells == nil {
		c.Spells = Spellbook{}
	}
	limit := min(c.Stats[catalog.WIS]+c.Level, len(catalog.Spells))
	if limit <= 0 {
		return Spell{}, false
	}
	eligible := catalog.Spells[:limit]

	var unknown []string
	for _, name := range eligible {
		if _, ok := c.Spells[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if name, ok := alea.PickLow(r, unknown); ok {
		lvl := 1 + c.Level/7
		c.Spells[name] = lvl
		return Spell{Name: name, Level: lvl}, true
	}

	name, _ := alea.PickLow(r, eligible)
	c.Spells[name]++
	return Spell{Name: name, Level: c.Spells[name]}, true
}
