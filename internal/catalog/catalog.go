// Package catalog holds the immutable content tables the generators draw
// from. Records are looked up by name; positions are only used for random
// draws.
package catalog

// Stat identifies one of the eight character statistics.
type Stat int

const (
	STR Stat = iota
	CON
	DEX
	INT
	WIS
	CHA
	HPMax
	MPMax
)

// NumStats is the number of Stat values.
const NumStats = 8

var statNames = [NumStats]string{"STR", "CON", "DEX", "INT", "WIS", "CHA", "HP Max", "MP Max"}

func (s Stat) String() string {
	if s < 0 || int(s) >= NumStats {
		return "Stat(?)"
	}
	return statNames[s]
}

// AllStats lists every stat in display order.
var AllStats = []Stat{STR, CON, DEX, INT, WIS, CHA, HPMax, MPMax}

// PrimeStats are the six rolled attributes.
var PrimeStats = []Stat{STR, CON, DEX, INT, WIS, CHA}

// ParseStat maps a display name back to its Stat.
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

// Slot is an equipment slot.
type Slot int

const (
	Weapon Slot = iota
	Shield
	Helm
	Hauberk
	Brassairts
	Vambraces
	Gauntlets
	Gambeson
	Cuisses
	Greaves
	Sollerets
)

// NumSlots is the number of equipment slots.
const NumSlots = 11

var slotNames = [NumSlots]string{
	"Weapon", "Shield", "Helm", "Hauberk", "Brassairts", "Vambraces",
	"Gauntlets", "Gambeson", "Cuisses", "Greaves", "Sollerets",
}

func (s Slot) String() string {
	if s < 0 || int(s) >= NumSlots {
		return "Slot(?)"
	}
	return slotNames[s]
}

// ParseSlot maps a display name back to its Slot.
func ParseSlot(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

type Monster struct {
	Name  string
	Level int
	Loot  string
}

// Gear is a base piece of equipment and its quality level.
type Gear struct {
	Name  string
	Level int
}

// Modifier is a named adjective worth Value levels. Bad modifiers are
// negative.
type Modifier struct {
	Name  string
	Value int
}

// Heritage is a race or class with the stats it favours.
type Heritage struct {
	Name    string
	Bonuses []Stat
}

// MonsterByName finds a bestiary entry and its index.
func MonsterByName(name string) (Monster, int, bool) {
	for i, m := range Monsters {
		if m.Name == name {
			return m, i, true
		}
	}
	return Monster{}, -1, false
}

func MonsterLevel(m Monster) int { return m.Level }

func GearLevel(g Gear) int { return g.Level }

// FindHeritage looks a race or class up by name.
func FindHeritage(table []Heritage, name string) (Heritage, bool) {
	for _, h := range table {
		if h.Name == name {
			return h, true
		}
	}
	return Heritage{}, false
}
