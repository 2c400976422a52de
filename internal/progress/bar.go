// Package progress implements the five progress bars that meter a hero's
// life: task, experience, encumbrance, quest and plot.
package progress

import (
	"fmt"
	"math"

	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
)

type Kind string

const (
	Task        Kind = "task"
	Experience  Kind = "experience"
	Encumbrance Kind = "encumbrance"
	Quest       Kind = "quest"
	Plot        Kind = "plot"
)

// Bar is a position within [0, Max]. Everything else is derived.
type Bar struct {
	Kind     Kind
	position float64
	max      float64
}

func NewBar(kind Kind, max float64) Bar {
	b := Bar{Kind: kind}
	b.SetMax(max)
	return b
}

func (b Bar) Position() float64 { return b.position }

func (b Bar) Max() float64 { return b.max }

// SetMax changes the maximum, re-clamping the position. Non-positive
// maxima are treated as 1.
func (b *Bar) SetMax(m float64) {
	if m <= 0 {
		m = 1
	}
	b.max = m
	b.SetPosition(b.position)
}

// SetPosition clamps p to [0, Max].
func (b *Bar) SetPosition(p float64) {
	b.position = math.Max(0, math.Min(p, b.max))
}

func (b *Bar) Increment(d float64) {
	b.SetPosition(b.position + d)
}

// Reset empties the bar and sets a new maximum.
func (b *Bar) Reset(m float64) {
	b.position = 0
	b.SetMax(m)
}

func (b Bar) Done() bool { return b.position >= b.max }

func (b Bar) Percent() int {
	if b.max <= 0 {
		return 0
	}
	return int(math.Floor(100 * b.position / b.max))
}

func (b Bar) Remaining() float64 { return b.max - b.position }

// Time is the rough remaining duration for bars measured in seconds.
func (b Bar) Time() string {
	switch b.Kind {
	case Experience, Quest, Plot:
		return lingo.RoughTime(int(b.Remaining()))
	}
	return ""
}

// Hint is the tooltip text shown next to the bar.
func (b Bar) Hint() string {
	switch b.Kind {
	case Experience:
		return fmt.Sprintf("%d XP needed for next level", int(b.Remaining()))
	case Encumbrance:
		return fmt.Sprintf("%d/%d cubits", int(b.position), int(b.max))
	case Plot:
		return b.Time() + " remaining"
	case Quest:
		return fmt.Sprintf("%d%% complete", b.Percent())
	default:
		return fmt.Sprintf("%d%%", b.Percent())
	}
}

// View is the read-only shape of a bar handed to hosts and save files.
type View struct {
	Position  float64 `json:"position"`
	Max       float64 `json:"max"`
	Percent   int     `json:"percent"`
	Remaining float64 `json:"remaining"`
	Time      string  `json:"time"`
	Hint      string  `json:"hint"`
}

func (b Bar) View() View {
	return View{
		Position:  b.position,
		Max:       b.max,
		Percent:   b.Percent(),
		Remaining: b.Remaining(),
		Time:      b.Time(),
		Hint:      b.Hint(),
	}
}
