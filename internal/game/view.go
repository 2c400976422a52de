package game

import (
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/loot"
	"github.com/fernicar/PQ-TINS-Edition/internal/progress"
	"github.com/fernicar/PQ-TINS-Edition/internal/quest"
)

// View is a read-only picture of the hero for display.
type View struct {
	Name  string `json:"name"`
	Race  string `json:"race"`
	Class string `json:"class"`
	Level int    `json:"level"`

	Stats     []StatLine    `json:"stats"`
	Equipment []EquipLine   `json:"equipment"`
	Spells    []SpellLine   `json:"spells"`
	Inventory []loot.Entry  `json:"inventory"`
	Quests    []quest.Quest `json:"quests"`

	Task     string  `json:"task"`
	TaskKind string  `json:"task_kind"`
	Tasks    int     `json:"tasks"`
	Elapsed  float64 `json:"elapsed"`
	Act      int     `json:"act"`
	Plot     string  `json:"plot"`
	Queued   int     `json:"queued"`

	BestStat  string `json:"best_stat"`
	BestEquip string `json:"best_equip"`
	BestSpell string `json:"best_spell"`
	BestQuest string `json:"best_quest"`

	TaskBar        progress.View `json:"task_bar"`
	ExperienceBar  progress.View `json:"experience_bar"`
	EncumbranceBar progress.View `json:"encumbrance_bar"`
	QuestBar       progress.View `json:"quest_bar"`
	PlotBar        progress.View `json:"plot_bar"`

	Paused bool `json:"paused"`
}

type StatLine struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type EquipLine struct {
	Slot string `json:"slot"`
	Item string `json:"item"`
}

type SpellLine struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// State describes the current hero. It is the zero View before a hero
// exists.
func (e *Engine) State() View {
	st := e.st
	if st == nil {
		return View{Paused: e.paused}
	}
	h := st.hero
	v := View{
		Name:      h.Name,
		Race:      h.Race,
		Class:     h.Class,
		Level:     h.Level,
		Inventory: st.inv.Entries(),
		Quests:    st.quests.Entries(),

		Task:     st.task.Label,
		TaskKind: st.task.Kind.String(),
		Tasks:    st.tasks,
		Elapsed:  st.elapsed,
		Act:      st.act,
		Plot:     actName(st.act),
		Queued:   len(st.queue),

		BestStat:  h.Stats.BestLabel(),
		BestEquip: st.bestEquip,
		BestSpell: h.Spells.Best(),

		TaskBar:        st.bars.Task.View(),
		ExperienceBar:  st.bars.Experience.View(),
		EncumbranceBar: st.bars.Encumbrance.View(),
		QuestBar:       st.bars.Quest.View(),
		PlotBar:        st.bars.Plot.View(),

		Paused: e.paused,
	}
	if q, ok := st.quests.Current(); ok {
		v.BestQuest = q.Description
	}
	for _, stat := range catalog.AllStats {
		v.Stats = append(v.Stats, StatLine{Name: stat.String(), Value: h.Stats[stat]})
	}
	for i, item := range h.Equipment {
		v.Equipment = append(v.Equipment, EquipLine{Slot: catalog.Slot(i).String(), Item: item})
	}
	for _, sp := range h.Spells.Sorted() {
		v.Spells = append(v.Spells, SpellLine{Name: sp.Name, Level: sp.Roman()})
	}
	return v
}
