// Package game runs a hero's life: it advances the current task on every
// tick, settles what the task earned, feeds the progress bars and picks
// what to do next.
package game

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/character"
	"github.com/fernicar/PQ-TINS-Edition/internal/config"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
	"github.com/fernicar/PQ-TINS-Edition/internal/loot"
	"github.com/fernicar/PQ-TINS-Edition/internal/names"
	"github.com/fernicar/PQ-TINS-Edition/internal/progress"
	"github.com/fernicar/PQ-TINS-Edition/internal/quest"
	"github.com/fernicar/PQ-TINS-Edition/internal/telemetry"
)

var (
	// ErrNoCharacter is returned before a hero has been created or loaded.
	ErrNoCharacter = errors.New("no character")
	// ErrInvalidSnapshot is returned by Apply for a snapshot that cannot
	// describe a hero. The engine keeps its previous state.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Timestamp layout used for birthdays and save dates.
const dateLayout = "2006-01-02 15:04:05"

type Options struct {
	Balance config.Balance
	Clock   Clock
	Logger  *log.Logger
	Events  telemetry.Recorder
}

// Engine owns one hero. It is not safe for concurrent use; hosts call it
// from a single goroutine.
type Engine struct {
	balance config.Balance
	clock   Clock
	logger  *log.Logger
	events  telemetry.Recorder

	pace   pacer
	paused bool
	st     *state
}

// state is everything that a save captures.
type state struct {
	rng *alea.Rand

	hero     character.Character
	dna      alea.State
	rollSeed alea.State
	rollBest string

	inv  *loot.Inventory
	bars progress.Ledger

	task    Task
	tasks   int
	elapsed float64
	queue   []QueueEntry

	act         int
	quests      quest.Log
	quarry      *catalog.Monster
	quarryIndex int
	bestEquip   string

	birthday   string
	birthstamp float64
	saveName   string
	journal    map[string]string
}

func New(opts Options) *Engine {
	opts.Balance.ApplyDefaults()
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Events == nil {
		opts.Events = telemetry.Discard{}
	}
	return &Engine{
		balance: opts.Balance,
		clock:   opts.Clock,
		logger:  opts.Logger,
		events:  opts.Events,
		pace:    pacer{clock: opts.Clock},
	}
}

// CreateCharacter starts a new hero from a stat roll. The roll's seed
// seeds the hero's generator, so the same roll always plays out the same.
func (e *Engine) CreateCharacter(name, race, class string, roll character.Roll) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = names.Placeholder
	}

	seed := roll.Seed
	if seed.IsZero() {
		seed = alea.Seed(name, race, class)
	}
	rng := alea.New(seed)
	// Replay the roll so play continues from where stat rolling stopped.
	character.RollStats(rng)

	now := e.clock.Now()
	st := &state{
		rng: rng,
		hero: character.Character{
			Name:      name,
			Race:      race,
			Class:     class,
			Level:     1,
			Stats:     roll.Stats,
			Equipment: character.StartingEquipment(),
			Spells:    character.Spellbook{},
		},
		dna:         seed,
		rollSeed:    seed,
		rollBest:    roll.Stats.Best().String(),
		inv:         loot.NewInventory(),
		bars:        progress.NewLedger(roll.Stats[catalog.STR]),
		task:        Task{Kind: TaskGeneric, Label: "Loading....", Duration: 2 * time.Second},
		queue:       prologue(),
		quarryIndex: -1,
		bestEquip:   character.StartingEquipment()[catalog.Weapon],
		birthday:    now.Format(dateLayout),
		birthstamp:  unixSeconds(now),
		saveName:    name,
		journal:     map[string]string{},
	}
	st.bars.Task.Reset(ms(st.task.Duration))

	e.st = st
	e.pace.reset()
	e.logger.Info("character created", "name", name, "race", race, "class", class, "stats", roll.Total())
	return nil
}

// CreateRandomCharacter rolls a hero of a random race and class with a
// generated name. The same seed always yields the same hero.
func (e *Engine) CreateRandomCharacter(seed alea.State) error {
	rng := alea.New(seed)
	name := names.Generate(rng)
	race, ok := alea.Pick(rng, catalog.Races)
	if !ok {
		return errors.New("no races to pick from")
	}
	class, ok := alea.Pick(rng, catalog.Classes)
	if !ok {
		return errors.New("no classes to pick from")
	}
	roll := character.NewRoller(rng.State()).Roll()
	return e.CreateCharacter(name, race.Name, class.Name, roll)
}

// Tick advances the game by elapsed, which is clamped to a few nominal
// tick intervals. A paused engine ignores it.
func (e *Engine) Tick(elapsed time.Duration) error {
	if e.st == nil {
		return ErrNoCharacter
	}
	if e.paused {
		return nil
	}
	elapsed = min(max(elapsed, 0), e.balance.MaxTick())

	e.st.bars.Task.Increment(ms(elapsed))
	if e.st.bars.Task.Done() {
		e.completeTask()
	}
	return nil
}

// Pulse ticks by the time passed on the engine clock since the previous
// pulse.
func (e *Engine) Pulse() error {
	if e.st == nil {
		return ErrNoCharacter
	}
	return e.Tick(e.pace.lap())
}

// SetPaused stops or resumes the game. Pulses while paused still move the
// baseline, so resuming does not replay the pause.
func (e *Engine) SetPaused(paused bool) {
	if e.paused != paused {
		e.logger.Debug("pause", "paused", paused)
	}
	e.paused = paused
}

func (e *Engine) Paused() bool { return e.paused }

// HasCharacter reports whether a hero has been created or loaded.
func (e *Engine) HasCharacter() bool { return e.st != nil }

// Name is the current hero's name.
func (e *Engine) Name() string {
	if e.st == nil {
		return ""
	}
	return e.st.hero.Name
}

func (e *Engine) record(t telemetry.EventType, md telemetry.EventMetadata) {
	if err := e.events.RecordEvent(t, md); err != nil {
		e.logger.Warn("record event", "type", t, "err", err)
	}
}

// maxJournal bounds the hero's journal.
const maxJournal = 100

// note adds a line to the hero's journal, dropping the oldest lines once
// it is full.
func (e *Engine) note(msg string) {
	j := e.st.journal
	j[e.clock.Now().UTC().Format(time.RFC3339Nano)] = msg
	for len(j) > maxJournal {
		oldest := ""
		for k := range j {
			if oldest == "" || k < oldest {
				oldest = k
			}
		}
		delete(j, oldest)
	}
}

func actName(act int) string {
	if act <= 0 {
		return "Prologue"
	}
	return "Act " + lingo.Roman(act)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
