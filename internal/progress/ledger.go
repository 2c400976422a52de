package progress

import "math"

// BaseEncumbrance is the carrying capacity before strength is added.
const BaseEncumbrance = 10

// Ledger holds one bar of each kind.
type Ledger struct {
	Task        Bar
	Experience  Bar
	Encumbrance Bar
	Quest       Bar
	Plot        Bar
}

// NewLedger returns the bars of a freshly created level-1 hero.
func NewLedger(str int) Ledger {
	l := Ledger{
		Task:        NewBar(Task, 2000),
		Experience:  NewBar(Experience, ExperienceFor(1)),
		Encumbrance: NewBar(Encumbrance, 1),
		Quest:       NewBar(Quest, 1),
		Plot:        NewBar(Plot, 26),
	}
	l.SyncEncumbrance(str, 0)
	return l
}

// ExperienceFor is the seconds of productive work needed to finish level.
func ExperienceFor(level int) float64 {
	return math.Round((20 + math.Pow(1.15, float64(level))) * 60)
}

// SyncEncumbrance recomputes the encumbrance bar from strength and the
// number of items carried.
func (l *Ledger) SyncEncumbrance(str, carried int) {
	l.Encumbrance.SetMax(float64(BaseEncumbrance + str))
	l.Encumbrance.SetPosition(float64(carried))
}

// Credit adds seconds of productive work to the experience and quest bars,
// and to the plot bar when advancePlot is set.
func (l *Ledger) Credit(seconds float64, advancePlot bool) {
	l.Experience.Increment(seconds)
	l.Quest.Increment(seconds)
	if advancePlot {
		l.Plot.Increment(seconds)
	}
}

// Bars lists the bars in display order.
func (l *Ledger) Bars() []*Bar {
	return []*Bar{&l.Task, &l.Experience, &l.Encumbrance, &l.Quest, &l.Plot}
}
