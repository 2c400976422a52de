// Package save reads and writes hero snapshots: the .pqw wire format
// (base64 of a JSON document) and the repositories that keep them.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/progress"
)

// Version is the schema written by Encode.
const Version = 2

// Extension is the file suffix of a saved hero.
const Extension = ".pqw"

// Snapshot is everything needed to resume a hero. Field names follow the
// established .pqw layout.
type Snapshot struct {
	Version int `json:"version"`

	Traits     Traits     `json:"Traits"`
	DNA        alea.State `json:"dna"`
	Seed       alea.State `json:"seed"`
	Birthday   string     `json:"birthday"`
	Birthstamp float64    `json:"birthstamp"`
	Stats      Stats      `json:"Stats"`
	BestStat   string     `json:"beststat"`

	Task    string  `json:"task"`
	Tasks   int     `json:"tasks"`
	Elapsed float64 `json:"elapsed"`
	Kill    string  `json:"kill"`

	BestEquip string            `json:"bestequip"`
	Equips    map[string]string `json:"Equips"`
	Inventory []Item            `json:"Inventory"`
	Spells    []Spell           `json:"Spells"`
	BestSpell string            `json:"bestspell"`

	Act               int      `json:"act"`
	BestPlot          string   `json:"bestplot"`
	Quests            []string `json:"Quests"`
	BestQuest         string   `json:"bestquest"`
	QuestMonster      string   `json:"questmonster"`
	QuestMonsterIndex int      `json:"questmonsterindex"`

	ExpBar   progress.View `json:"ExpBar"`
	EncumBar progress.View `json:"EncumBar"`
	PlotBar  progress.View `json:"PlotBar"`
	QuestBar progress.View `json:"QuestBar"`
	TaskBar  progress.View `json:"TaskBar"`

	Queue []string `json:"queue"`

	Date     string  `json:"date"`
	Stamp    float64 `json:"stamp"`
	SaveName string  `json:"saveName"`

	Log map[string]string `json:"log,omitempty"`
}

type Traits struct {
	Name  string `json:"Name"`
	Race  string `json:"Race"`
	Class string `json:"Class"`
	Level int    `json:"Level"`
}

// Stats is the stat block, plus the seed of the roll that produced it.
type Stats struct {
	Seed  alea.State `json:"seed"`
	STR   int        `json:"STR"`
	CON   int        `json:"CON"`
	DEX   int        `json:"DEX"`
	INT   int        `json:"INT"`
	WIS   int        `json:"WIS"`
	CHA   int        `json:"CHA"`
	HPMax int        `json:"HP Max"`
	MPMax int        `json:"MP Max"`
	Best  string     `json:"best"`
}

// Values returns the stats indexed by catalog.Stat.
func (s Stats) Values() [catalog.NumStats]int {
	return [catalog.NumStats]int{s.STR, s.CON, s.DEX, s.INT, s.WIS, s.CHA, s.HPMax, s.MPMax}
}

// SetValues copies v, indexed by catalog.Stat, into the block.
func (s *Stats) SetValues(v [catalog.NumStats]int) {
	s.STR, s.CON, s.DEX, s.INT, s.WIS, s.CHA = v[0], v[1], v[2], v[3], v[4], v[5]
	s.HPMax, s.MPMax = v[6], v[7]
}

// Item is an inventory line, stored as [name, qty].
type Item struct {
	Name string
	Qty  int
}

func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{i.Name, i.Qty})
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("inventory entry: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("inventory entry: want 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &i.Name); err != nil {
		return fmt.Errorf("inventory name: %w", err)
	}
	var qty float64
	if err := json.Unmarshal(pair[1], &qty); err != nil {
		return fmt.Errorf("inventory qty for %q: %w", i.Name, err)
	}
	i.Qty = int(qty)
	return nil
}

// Spell is a spellbook line, stored as [name, roman level].
type Spell struct {
	Name  string
	Level string
}

func (s Spell) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{s.Name, s.Level})
}

func (s *Spell) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("spell entry: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("spell entry: want 2 elements, got %d", len(pair))
	}
	s.Name, s.Level = pair[0], pair[1]
	return nil
}

// Default is the empty schema every decoded document is merged onto.
func Default() Snapshot {
	equips := make(map[string]string, catalog.NumSlots)
	for i := 0; i < catalog.NumSlots; i++ {
		equips[catalog.Slot(i).String()] = ""
	}
	return Snapshot{
		Version:           Version,
		Equips:            equips,
		Inventory:         []Item{{Name: "Gold", Qty: 0}},
		Spells:            []Spell{},
		Quests:            []string{},
		QuestMonsterIndex: -1,
		Queue:             []string{},
	}
}
