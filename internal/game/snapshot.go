package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/character"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
	"github.com/fernicar/PQ-TINS-Edition/internal/loot"
	"github.com/fernicar/PQ-TINS-Edition/internal/progress"
	"github.com/fernicar/PQ-TINS-Edition/internal/quest"
	"github.com/fernicar/PQ-TINS-Edition/internal/save"
)

// Snapshot captures the hero for saving and stamps it with the current
// time.
func (e *Engine) Snapshot() (save.Snapshot, error) {
	st := e.st
	if st == nil {
		return save.Snapshot{}, ErrNoCharacter
	}
	now := e.clock.Now()
	h := st.hero

	s := save.Default()
	s.Traits = save.Traits{Name: h.Name, Race: h.Race, Class: h.Class, Level: h.Level}
	s.DNA = st.dna
	s.Seed = st.rng.State()
	s.Birthday = st.birthday
	s.Birthstamp = st.birthstamp

	s.Stats.SetValues(h.Stats)
	s.Stats.Seed = st.rollSeed
	s.Stats.Best = st.rollBest
	s.BestStat = h.Stats.BestLabel()

	s.Task = st.task.ID()
	s.Tasks = st.tasks
	s.Elapsed = st.elapsed
	s.Kill = st.task.Label

	s.BestEquip = st.bestEquip
	for i, item := range h.Equipment {
		s.Equips[catalog.Slot(i).String()] = item
	}

	s.Inventory = s.Inventory[:0]
	if st.inv.Gold() == 0 {
		s.Inventory = append(s.Inventory, save.Item{Name: loot.Gold})
	}
	for _, en := range st.inv.Entries() {
		s.Inventory = append(s.Inventory, save.Item{Name: en.Name, Qty: en.Qty})
	}
	for _, sp := range h.Spells.Sorted() {
		s.Spells = append(s.Spells, save.Spell{Name: sp.Name, Level: sp.Roman()})
	}
	s.BestSpell = h.Spells.Best()

	s.Act = st.act
	s.BestPlot = actName(st.act)
	s.Quests = st.quests.Descriptions()
	if q, ok := st.quests.Current(); ok {
		s.BestQuest = q.Description
	}
	if st.quarry != nil {
		m := st.quarry
		s.QuestMonster = m.Name + "|" + strconv.Itoa(m.Level) + "|" + m.Loot
		s.QuestMonsterIndex = st.quarryIndex
	}

	s.ExpBar = st.bars.Experience.View()
	s.EncumBar = st.bars.Encumbrance.View()
	s.PlotBar = st.bars.Plot.View()
	s.QuestBar = st.bars.Quest.View()
	s.TaskBar = st.bars.Task.View()

	for _, q := range st.queue {
		s.Queue = append(s.Queue, q.String())
	}

	s.Date = now.Format(dateLayout)
	s.Stamp = unixSeconds(now)
	s.SaveName = st.saveName
	if len(st.journal) > 0 {
		s.Log = make(map[string]string, len(st.journal))
		for k, v := range st.journal {
			s.Log[k] = v
		}
	}
	return s, nil
}

// Apply replaces the current hero with a loaded one. Anything the snapshot
// lacks falls back to defaults; a snapshot that cannot be a hero is refused
// and the engine keeps its previous state.
func (e *Engine) Apply(s save.Snapshot) error {
	name := strings.TrimSpace(s.Traits.Name)
	if name == "" {
		return fmt.Errorf("%w: character has no name", ErrInvalidSnapshot)
	}

	st := &state{
		hero: character.Character{
			Name:   name,
			Race:   s.Traits.Race,
			Class:  s.Traits.Class,
			Level:  max(s.Traits.Level, 1),
			Stats:  s.Stats.Values(),
			Spells: character.Spellbook{},
		},
		dna:         s.DNA,
		rollSeed:    s.Stats.Seed,
		rollBest:    s.Stats.Best,
		inv:         loot.NewInventory(),
		tasks:       s.Tasks,
		elapsed:     s.Elapsed,
		act:         max(s.Act, 0),
		quests:      quest.Restore(s.Quests),
		quarryIndex: -1,
		bestEquip:   s.BestEquip,
		birthday:    s.Birthday,
		birthstamp:  s.Birthstamp,
		saveName:    s.SaveName,
		journal:     map[string]string{},
	}
	if st.saveName == "" {
		st.saveName = name
	}
	for k, v := range s.Log {
		st.journal[k] = v
	}

	if s.Seed.IsZero() {
		e.logger.Warn("snapshot has no generator state, reseeding", "name", name)
		st.rng = alea.NewSeeded(name, s.Birthstamp)
	} else {
		st.rng = alea.New(s.Seed)
	}

	for slotName, item := range s.Equips {
		slot, ok := catalog.ParseSlot(slotName)
		if !ok {
			e.logger.Warn("unknown equipment slot", "slot", slotName)
			continue
		}
		st.hero.Equipment[slot] = item
	}

	for _, it := range s.Inventory {
		if err := st.inv.Add(it.Name, it.Qty); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	}

	for _, sp := range s.Spells {
		st.hero.Spells[sp.Name] = max(lingo.ParseRoman(sp.Level), 1)
	}

	st.bars = restoreBars(s, st)

	task, err := ParseTaskID(s.Task)
	if err != nil {
		e.logger.Warn("unrecognized task, treating as generic", "task", s.Task, "err", err)
		task = Task{Kind: TaskGeneric}
	}
	task.Label = s.Kill
	task.Duration = time.Duration(st.bars.Task.Max() * float64(time.Millisecond))
	if task.Kind == TaskCombat {
		task.Encounter.Description = strings.TrimPrefix(s.Kill, "Executing ")
	}
	if task.Kind == TaskSelling {
		task.Item, _ = st.inv.FirstSellable()
	}
	st.task = task

	for _, raw := range s.Queue {
		q, err := ParseQueueEntry(raw)
		if err != nil {
			e.logger.Warn("dropping queue entry", "entry", raw, "err", err)
			continue
		}
		st.queue = append(st.queue, q)
	}

	st.quarry, st.quarryIndex = restoreQuarry(s.QuestMonster, s.QuestMonsterIndex)

	e.st = st
	e.pace.reset()
	e.logger.Info("character loaded", "name", name, "level", st.hero.Level, "act", actName(st.act))
	return nil
}

// restoreBars rebuilds the ledger from saved positions and maxima. The
// encumbrance bar is always recomputed from the inventory.
func restoreBars(s save.Snapshot, st *state) progress.Ledger {
	restore := func(kind progress.Kind, v progress.View, fallback float64) progress.Bar {
		m := v.Max
		if m <= 0 {
			m = fallback
		}
		b := progress.NewBar(kind, m)
		b.SetPosition(v.Position)
		return b
	}

	plotMax := float64(3600 * (1 + 5*st.act))
	if st.act == 0 {
		plotMax = 26
	}
	l := progress.Ledger{
		Task:       restore(progress.Task, s.TaskBar, 1),
		Experience: restore(progress.Experience, s.ExpBar, progress.ExperienceFor(st.hero.Level)),
		Quest:      restore(progress.Quest, s.QuestBar, 1),
		Plot:       restore(progress.Plot, s.PlotBar, plotMax),
	}
	l.Encumbrance = progress.NewBar(progress.Encumbrance, 1)
	l.SyncEncumbrance(st.hero.Stats[catalog.STR], st.inv.Carried())
	return l
}

// restoreQuarry finds the quest target named by a "Name|Level|Loot" record,
// preferring the bestiary entry at index.
func restoreQuarry(record string, index int) (*catalog.Monster, int) {
	if record == "" {
		return nil, -1
	}
	parts := strings.Split(record, "|")
	if index >= 0 && index < len(catalog.Monsters) && catalog.Monsters[index].Name == parts[0] {
		m := catalog.Monsters[index]
		return &m, index
	}
	if m, idx, ok := catalog.MonsterByName(parts[0]); ok {
		return &m, idx
	}
	if len(parts) == 3 {
		lvl, err := strconv.Atoi(parts[1])
		if err == nil {
			return &catalog.Monster{Name: parts[0], Level: lvl, Loot: parts[2]}, -1
		}
	}
	return nil, -1
}
