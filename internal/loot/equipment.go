package loot

import (
	"strconv"
	"strings"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
)

// FallbackGear is forged when a base table is empty.
const FallbackGear = "Stick"

// Forged is a newly made piece of equipment.
type Forged struct {
	Slot catalog.Slot
	Name string
}

// Forge makes equipment for a random slot, matched to level. The base item
// is the closest-levelled of candidates draws; the remaining gap becomes up
// to two adjectives and then a +N or -N prefix.
func Forge(r *alea.Rand, level, candidates int) Forged {
	slot := catalog.Slot(r.Intn(catalog.NumSlots))

	var stuff []catalog.Gear
	var better, worse []catalog.Modifier
	switch slot {
	case catalog.Weapon:
		stuff, better, worse = catalog.Weapons, catalog.OffenseAttrib, catalog.OffenseBad
	case catalog.Shield:
		stuff, better, worse = catalog.Shields, catalog.DefenseAttrib, catalog.DefenseBad
	default:
		stuff, better, worse = catalog.Armors, catalog.DefenseAttrib, catalog.DefenseBad
	}

	base, idx := alea.Closest(r, stuff, candidates, level, catalog.GearLevel)
	if idx < 0 {
		return Forged{Slot: slot, Name: FallbackGear}
	}
	return Forged{Slot: slot, Name: Embellish(r, base, level, better, worse)}
}

// Embellish closes the gap between base's level and the target with
// modifiers that share the gap's sign and do not overshoot it.
func Embellish(r *alea.Rand, base catalog.Gear, level int, better, worse []catalog.Modifier) string {
	name := base.Name
	delta := level - base.Level
	mods := better
	if delta < 0 {
		mods = worse
	}

	for count := 0; count < 2 && delta != 0; count++ {
		var eligible []catalog.Modifier
		for _, m := range mods {
			if abs(m.Value) <= abs(delta) && !strings.Contains(name, m.Name) {
				eligible = append(eligible, m)
			}
		}
		m, ok := alea.Pick(r, eligible)
		if !ok {
			break
		}
		name = m.Name + " " + name
		delta -= m.Value
	}

	switch {
	case delta > 0:
		name = "+" + strconv.Itoa(delta) + " " + name
	case delta < 0:
		name = strconv.Itoa(delta) + " " + name
	}
	return name
}

// EquipPrice is what the armourer charges a hero of level.
func EquipPrice(level int) int {
	return 5*level*level + 10*level + 20
}

// SalePrice is what a merchant pays for a whole entry. Named treasures
// ("... of Foreboding") fetch two to five times as much.
func SalePrice(r *alea.Rand, e Entry, level int) int {
	amt := e.Qty * level
	if strings.Contains(e.Name, " of ") {
		amt *= 2 + r.Intn(4)
	}
	return amt
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
