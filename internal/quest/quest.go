// Package quest invents the errands a hero is sent on and keeps the log of
// them.
package quest

import (
	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
	"github.com/fernicar/PQ-TINS-Edition/internal/loot"
)

// Archetype categorizes quests
type Archetype string

const (
	Exterminate Archetype = "exterminate"
	Seek        Archetype = "seek"
	Deliver     Archetype = "deliver"
	Fetch       Archetype = "fetch"
	Placate     Archetype = "placate"
)

var Archetypes = []Archetype{Exterminate, Seek, Deliver, Fetch, Placate}

// Quest is one entry in the quest log.
type Quest struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// Windows sets how many monsters are weighed when a quest names one.
type Windows struct {
	Exterminate int
	Placate     int
}

// Generated is a freshly drawn quest.
type Generated struct {
	Archetype   Archetype
	Description string
	// Quarry is set for Exterminate quests; the monster generator hunts it
	// now and then until the next quest replaces it.
	Quarry      *catalog.Monster
	QuarryIndex int
}

// Generate draws a quest for a hero of level.
func Generate(r *alea.Rand, level int, w Windows) Generated {
	g := Generated{Archetype: Archetypes[r.Intn(len(Archetypes))], QuarryIndex: -1}
	switch g.Archetype {
	case Exterminate:
		m, idx := alea.Closest(r, catalog.Monsters, w.Exterminate, level, catalog.MonsterLevel)
		if idx < 0 {
			g.Description = "Exterminate the Rats"
			break
		}
		g.Quarry = &m
		g.QuarryIndex = idx
		g.Description = "Exterminate " + lingo.Definite(m.Name, 2)
	case Seek:
		g.Description = "Seek " + lingo.Definite(loot.InterestingItem(r), 1)
	case Deliver:
		g.Description = "Deliver this " + loot.BoringItem(r)
	case Fetch:
		g.Description = "Fetch me " + lingo.Indefinite(loot.BoringItem(r), 1)
	case Placate:
		m, idx := alea.Closest(r, catalog.Monsters, w.Placate, level, catalog.MonsterLevel)
		if idx < 0 {
			g.Description = "Placate the Rats"
			break
		}
		g.Description = "Placate " + lingo.Definite(m.Name, 2)
	}
	return g
}

// MaxLog bounds the quest log.
const MaxLog = 100

// Log is the append-only list of quests; only the newest is open.
type Log struct {
	entries []Quest
}

// Restore rebuilds a log from saved descriptions. Everything but the last
// entry is considered done.
func Restore(descriptions []string) Log {
	l := Log{}
	for i, d := range descriptions {
		l.entries = append(l.entries, Quest{Description: d, Done: i < len(descriptions)-1})
	}
	return l
}

func (l *Log) Len() int { return len(l.entries) }

// Current is the newest quest.
func (l *Log) Current() (Quest, bool) {
	if len(l.entries) == 0 {
		return Quest{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// CompleteAll marks every quest done.
func (l *Log) CompleteAll() {
	for i := range l.entries {
		l.entries[i].Done = true
	}
}

// Add appends a new open quest, dropping the oldest entries so the log
// never exceeds MaxLog.
func (l *Log) Add(description string) {
	for len(l.entries) >= MaxLog {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, Quest{Description: description})
}

// Entries returns a copy of the log, oldest first.
func (l *Log) Entries() []Quest {
	return append([]Quest(nil), l.entries...)
}

// Descriptions is the log as saved.
func (l *Log) Descriptions() []string {
	out := make([]string, len(l.entries))
	for i, q := range l.entries {
		out[i] = q.Description
	}
	return out
}
