package game

import (
	"strconv"
	"time"

	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/character"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
	"github.com/fernicar/PQ-TINS-Edition/internal/loot"
	"github.com/fernicar/PQ-TINS-Edition/internal/monster"
	"github.com/fernicar/PQ-TINS-Edition/internal/progress"
	"github.com/fernicar/PQ-TINS-Edition/internal/quest"
	"github.com/fernicar/PQ-TINS-Edition/internal/telemetry"
)

// completeTask settles the finished task, credits the bars and starts the
// next task.
func (e *Engine) completeTask() {
	st := e.st
	done := st.task
	seconds := st.bars.Task.Max() / 1000

	st.tasks++
	st.elapsed += seconds
	e.resolve(done)
	e.record(telemetry.EventTaskCompleted, telemetry.EventMetadata{
		"kind":  done.Kind.String(),
		"label": done.Label,
		"level": st.hero.Level,
	})

	if done.Kind.Productive() {
		st.bars.Credit(seconds, !e.plotPending())

		if st.bars.Experience.Done() {
			e.levelUp()
		}
		if st.quests.Len() == 0 || st.bars.Quest.Done() {
			e.completeQuest()
		}
		if st.bars.Plot.Done() && !e.plotPending() {
			st.queue = append(st.queue, interlude(st.rng, st.hero.Level, st.act, e.balance.NemesisCandidates)...)
		}
	}

	e.next(done)
}

// resolve applies what a finished task earned.
func (e *Engine) resolve(done Task) {
	st := e.st
	switch done.Kind {
	case TaskCombat:
		m := done.Encounter.Monster
		switch m.Loot {
		case "":
		case "*":
			e.winItem()
		default:
			item := loot.Trophy(m.Name, m.Loot)
			e.addItem(item, 1)
			e.record(telemetry.EventLootGained, telemetry.EventMetadata{"item": item, "monster": m.Name})
		}

	case TaskSelling:
		qty := st.inv.Qty(done.Item.Name)
		if qty <= 0 || done.Item.Name == loot.Gold {
			return
		}
		gold := loot.SalePrice(st.rng, loot.Entry{Name: done.Item.Name, Qty: qty}, st.hero.Level)
		st.inv.Remove(done.Item.Name)
		e.addItem(loot.Gold, gold)
		e.record(telemetry.EventItemSold, telemetry.EventMetadata{"item": done.Item.Name, "qty": qty, "gold": gold})

	case TaskBuying:
		price := loot.EquipPrice(st.hero.Level)
		if !st.inv.Spend(loot.Gold, price) {
			e.logger.Debug("purchase skipped", "price", price, "gold", st.inv.Gold())
			return
		}
		e.forge()
	}
}

// levelUp raises the hero a level and hands out the usual gains.
func (e *Engine) levelUp() {
	st := e.st
	h := &st.hero
	h.Level++
	h.Stats.Add(catalog.HPMax, h.Stats[catalog.CON]/3+1+st.rng.Intn(4))
	h.Stats.Add(catalog.MPMax, h.Stats[catalog.INT]/3+1+st.rng.Intn(4))

	for i := 0; i < 2; i++ {
		e.gainStat()
	}
	e.learnSpell()

	st.bars.Experience.Reset(progress.ExperienceFor(h.Level))
	e.syncEncumbrance()

	e.record(telemetry.EventLevelUp, telemetry.EventMetadata{"level": h.Level})
	e.note("Leveled up to Level " + strconv.Itoa(h.Level))
	e.logger.Info("level up", "name", h.Name, "level", h.Level)
}

// completeQuest pays out the current quest, if any, and starts another.
func (e *Engine) completeQuest() {
	st := e.st
	st.bars.Quest.Reset(float64(50 + st.rng.Intn(100)))

	if cur, ok := st.quests.Current(); ok {
		reward := quest.PickReward(st.rng)
		switch reward {
		case quest.RewardSpell:
			e.learnSpell()
		case quest.RewardEquipment:
			e.forge()
		case quest.RewardStat:
			e.gainStat()
		case quest.RewardItem:
			e.winItem()
		}
		st.quests.CompleteAll()
		e.record(telemetry.EventQuestCompleted, telemetry.EventMetadata{"quest": cur.Description, "reward": string(reward)})
		e.note("Quest completed: " + cur.Description)
	}

	g := quest.Generate(st.rng, st.hero.Level, quest.Windows{
		Exterminate: e.balance.ExterminateCandidates,
		Placate:     e.balance.PlacateCandidates,
	})
	st.quarry, st.quarryIndex = g.Quarry, g.QuarryIndex
	st.quests.Add(g.Description)
	e.logger.Debug("quest", "archetype", g.Archetype, "description", g.Description)
}

// completeAct moves the story on and pays the act bonus.
func (e *Engine) completeAct() {
	st := e.st
	st.act++
	st.bars.Plot.Reset(float64(3600 * (1 + 5*st.act)))
	if st.act > 1 {
		e.winItem()
		e.forge()
	}
	e.record(telemetry.EventActCompleted, telemetry.EventMetadata{"act": st.act})
	e.note("Act completed! Starting " + actName(st.act))
	e.logger.Info("act", "name", st.hero.Name, "act", actName(st.act))
}

// next picks and starts the task that follows done.
func (e *Engine) next(done Task) {
	st := e.st
	atMarket := done.Kind == TaskMarket || done.Kind == TaskSelling

	if atMarket {
		if item, ok := st.inv.FirstSellable(); ok {
			e.start(Task{
				Kind:     TaskSelling,
				Label:    "Selling " + lingo.Indefinite(item.Name, item.Qty),
				Duration: e.balance.SellTime,
				Item:     item,
			})
			return
		}
	}

	if len(st.queue) > 0 {
		q := st.queue[0]
		st.queue = st.queue[1:]
		dur := time.Duration(q.Seconds) * time.Second
		if q.Kind == QueuePlot {
			e.completeAct()
			e.start(Task{Kind: TaskPlotLoading, Label: "Loading " + actName(st.act), Duration: dur})
			return
		}
		e.start(Task{Kind: TaskCinematic, Label: q.Text, Duration: dur})
		return
	}

	if st.bars.Encumbrance.Done() && !atMarket {
		e.start(Task{Kind: TaskMarket, Label: "Heading to market to sell loot", Duration: e.balance.MarketTrip})
		return
	}

	if done.Kind != TaskCombat && done.Kind != TaskHeading {
		if st.inv.Gold() > loot.EquipPrice(st.hero.Level) && st.rng.Odds(e.balance.BuyChance, e.balance.BuyOutOf) {
			e.start(Task{Kind: TaskBuying, Label: "Negotiating purchase of better equipment", Duration: e.balance.BuyTime})
			return
		}
		e.start(Task{Kind: TaskHeading, Label: "Heading to the killing fields", Duration: e.balance.HeadingTrip})
		return
	}

	e.start(e.combat())
}

// combat sets up a fight, timed by how the foes compare to the hero.
func (e *Engine) combat() Task {
	st := e.st
	level := max(st.hero.Level, 1)
	enc := monster.Select(st.rng, level, e.balance.MonsterCandidates, st.quarry)
	dur := time.Duration(6000*enc.Level/level) * time.Millisecond
	dur = min(max(dur, e.balance.MinCombat), e.balance.MaxCombat)
	return Task{Kind: TaskCombat, Label: enc.Label(), Duration: dur, Encounter: enc}
}

func (e *Engine) start(t Task) {
	if t.Duration < time.Millisecond {
		t.Duration = time.Millisecond
	}
	e.st.task = t
	e.st.bars.Task.Reset(ms(t.Duration))
}

func (e *Engine) plotPending() bool {
	for _, q := range e.st.queue {
		if q.Kind == QueuePlot {
			return true
		}
	}
	return false
}

func (e *Engine) gainStat() {
	stat := character.GainStat(e.st.rng, &e.st.hero.Stats)
	if stat == catalog.STR {
		e.syncEncumbrance()
	}
	e.record(telemetry.EventStatGained, telemetry.EventMetadata{"stat": stat.String()})
}

func (e *Engine) learnSpell() {
	sp, ok := character.GrantSpell(e.st.rng, &e.st.hero)
	if !ok {
		return
	}
	e.record(telemetry.EventSpellLearned, telemetry.EventMetadata{"spell": sp.Name, "level": sp.Level})
}

func (e *Engine) forge() {
	st := e.st
	f := loot.Forge(st.rng, st.hero.Level, e.balance.EquipmentCandidates)
	st.hero.Equipment[f.Slot] = f.Name
	st.bestEquip = f.Name
	e.record(telemetry.EventEquipmentForged, telemetry.EventMetadata{"slot": f.Slot.String(), "item": f.Name})
}

func (e *Engine) winItem() {
	name, err := loot.WinItem(e.st.rng, e.st.inv)
	if err != nil {
		e.logger.Error("inventory", "item", name, "err", err)
		return
	}
	e.syncEncumbrance()
	e.record(telemetry.EventLootGained, telemetry.EventMetadata{"item": name})
}

// addItem changes the inventory and keeps the encumbrance bar in step.
func (e *Engine) addItem(name string, qty int) {
	if err := e.st.inv.Add(name, qty); err != nil {
		e.logger.Error("inventory", "item", name, "qty", qty, "err", err)
		return
	}
	e.syncEncumbrance()
}

func (e *Engine) syncEncumbrance() {
	e.st.bars.SyncEncumbrance(e.st.hero.Stats[catalog.STR], e.st.inv.Carried())
}
