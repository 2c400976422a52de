package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/loot"
	"github.com/fernicar/PQ-TINS-Edition/internal/monster"
)

// TaskKind is what the hero is busy with.
type TaskKind int

const (
	TaskGeneric TaskKind = iota
	TaskCombat
	TaskMarket
	TaskSelling
	TaskBuying
	TaskHeading
	TaskCinematic
	TaskPlotLoading
)

var taskKindNames = map[TaskKind]string{
	TaskGeneric:     "generic",
	TaskCombat:      "combat",
	TaskMarket:      "market",
	TaskSelling:     "selling",
	TaskBuying:      "buying",
	TaskHeading:     "heading",
	TaskCinematic:   "cinematic",
	TaskPlotLoading: "plot_loading",
}

func (k TaskKind) String() string {
	if s, ok := taskKindNames[k]; ok {
		return s
	}
	return "TaskKind(" + strconv.Itoa(int(k)) + ")"
}

// Productive tasks feed the experience, quest and plot bars.
func (k TaskKind) Productive() bool {
	return k == TaskCombat || k == TaskHeading || k == TaskCinematic
}

// Task is the activity in progress.
type Task struct {
	Kind     TaskKind
	Label    string
	Duration time.Duration

	// Encounter is set for TaskCombat.
	Encounter monster.Encounter
	// Item is the entry on the counter for TaskSelling.
	Item loot.Entry
}

// Save-file ids of the non-combat kinds.
const (
	idMarket    = "market"
	idSelling   = "sell"
	idBuying    = "buying"
	idHeading   = "heading"
	idCinematic = "queued_task"
	idPlot      = "plot_loading"
	idKill      = "kill"
)

// ID is the compact form stored in save files, e.g. "kill|Goblin|3|ear".
func (t Task) ID() string {
	switch t.Kind {
	case TaskCombat:
		m := t.Encounter.Monster
		return strings.Join([]string{idKill, m.Name, strconv.Itoa(m.Level), m.Loot}, "|")
	case TaskMarket:
		return idMarket
	case TaskSelling:
		return idSelling
	case TaskBuying:
		return idBuying
	case TaskHeading:
		return idHeading
	case TaskCinematic:
		return idCinematic
	case TaskPlotLoading:
		return idPlot
	}
	return ""
}

// ParseTaskID reverses Task.ID. Only the kind and, for combat, the base
// monster survive the round trip; labels and durations live elsewhere in
// the save.
func ParseTaskID(id string) (Task, error) {
	switch id {
	case "":
		return Task{Kind: TaskGeneric}, nil
	case idMarket:
		return Task{Kind: TaskMarket}, nil
	case idSelling:
		return Task{Kind: TaskSelling}, nil
	case idBuying:
		return Task{Kind: TaskBuying}, nil
	case idHeading:
		return Task{Kind: TaskHeading}, nil
	case idCinematic:
		return Task{Kind: TaskCinematic}, nil
	case idPlot:
		return Task{Kind: TaskPlotLoading}, nil
	}

	parts := strings.Split(id, "|")
	if parts[0] != idKill || len(parts) != 4 {
		return Task{}, fmt.Errorf("unknown task id %q", id)
	}
	lvl, err := strconv.Atoi(parts[2])
	if err != nil {
		return Task{}, fmt.Errorf("task id %q: monster level: %w", id, err)
	}
	m := catalog.Monster{Name: parts[1], Level: lvl, Loot: parts[3]}
	return Task{
		Kind:      TaskCombat,
		Encounter: monster.Encounter{Monster: m, Quantity: 1, Level: lvl, Description: m.Name},
	}, nil
}

// QueueKind tags a scripted queue entry.
type QueueKind int

const (
	QueueTask QueueKind = iota
	QueuePlot
)

// QueueEntry is one step of a scripted interlude. A plot entry ends the
// act when it is reached.
type QueueEntry struct {
	Kind    QueueKind
	Seconds int
	Text    string
}

func cinematic(seconds int, text string) QueueEntry {
	return QueueEntry{Kind: QueueTask, Seconds: seconds, Text: text}
}

func plotMarker(seconds int) QueueEntry {
	return QueueEntry{Kind: QueuePlot, Seconds: seconds, Text: "Loading"}
}

// String renders the entry as "task|seconds|text" or "plot|seconds|text".
func (q QueueEntry) String() string {
	kind := "task"
	if q.Kind == QueuePlot {
		kind = "plot"
	}
	return kind + "|" + strconv.Itoa(q.Seconds) + "|" + q.Text
}

func ParseQueueEntry(s string) (QueueEntry, error) {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) < 2 {
		return QueueEntry{}, fmt.Errorf("queue entry %q: want kind|seconds|text", s)
	}
	var q QueueEntry
	switch parts[0] {
	case "task":
		q.Kind = QueueTask
	case "plot":
		q.Kind = QueuePlot
	default:
		return QueueEntry{}, fmt.Errorf("queue entry %q: unknown kind %q", s, parts[0])
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil {
		return QueueEntry{}, fmt.Errorf("queue entry %q: seconds: %w", s, err)
	}
	q.Seconds = secs
	if len(parts) == 3 {
		q.Text = parts[2]
	}
	return q, nil
}
