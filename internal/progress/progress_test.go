package progress

import (
	"math"
	"testing"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar_Clamping(t *testing.T) {
	b := NewBar(Task, 100)

	b.SetPosition(150)
	assert.Equal(t, 100.0, b.Position())
	assert.True(t, b.Done())

	b.SetPosition(-5)
	assert.Equal(t, 0.0, b.Position())

	b.SetPosition(80)
	b.SetMax(50)
	assert.Equal(t, 50.0, b.Position(), "shrinking the max re-clamps")

	b.SetMax(0)
	assert.Equal(t, 1.0, b.Max(), "non-positive max is treated as 1")

	b.Reset(40)
	assert.Equal(t, 0.0, b.Position())
	assert.Equal(t, 40.0, b.Max())
}

func TestBar_Invariant(t *testing.T) {
	r := alea.NewSeeded("ledger")
	b := NewBar(Quest, 10)
	for i := 0; i < 2000; i++ {
		switch r.Intn(3) {
		case 0:
			b.Increment(float64(r.Intn(20) - 5))
		case 1:
			b.SetMax(float64(r.Intn(50) - 5))
		default:
			b.SetPosition(float64(r.Intn(80) - 10))
		}
		require.GreaterOrEqual(t, b.Position(), 0.0)
		require.LessOrEqual(t, b.Position(), b.Max())
		require.Equal(t, int(math.Floor(100*b.Position()/b.Max())), b.Percent())
	}
}

func TestBar_Hints(t *testing.T) {
	exp := NewBar(Experience, 1270)
	exp.SetPosition(270)
	assert.Equal(t, "1000 XP needed for next level", exp.Hint())

	enc := NewBar(Encumbrance, 22)
	enc.SetPosition(7)
	assert.Equal(t, "7/22 cubits", enc.Hint())

	plot := NewBar(Plot, 3600)
	assert.Equal(t, "60 minutes remaining", plot.Hint())

	q := NewBar(Quest, 200)
	q.SetPosition(50)
	assert.Equal(t, "25% complete", q.Hint())

	task := NewBar(Task, 3)
	task.SetPosition(2)
	assert.Equal(t, "66%", task.Hint())
	assert.Equal(t, "", task.Time())

	v := q.View()
	assert.Equal(t, 25, v.Percent)
	assert.Equal(t, 150.0, v.Remaining)
	assert.Equal(t, "2 minutes", v.Time)
}

func TestExperienceFor(t *testing.T) {
	assert.Equal(t, math.Round((20+1.15)*60), ExperienceFor(1))
	assert.Equal(t, math.Round((20+1.15*1.15)*60), ExperienceFor(2))
	assert.Greater(t, ExperienceFor(30), ExperienceFor(29))
}

func TestLedger(t *testing.T) {
	t.Run("fresh hero with STR 12 carries 22 cubits", func(t *testing.T) {
		l := NewLedger(12)
		assert.Equal(t, 22.0, l.Encumbrance.Max())
		assert.Equal(t, 26.0, l.Plot.Max())
		assert.Equal(t, 2000.0, l.Task.Max())
	})

	t.Run("credit", func(t *testing.T) {
		l := NewLedger(10)
		l.Quest.Reset(100)
		l.Credit(6, false)
		assert.Equal(t, 6.0, l.Experience.Position())
		assert.Equal(t, 6.0, l.Quest.Position())
		assert.Equal(t, 0.0, l.Plot.Position())
		l.Credit(4, true)
		assert.Equal(t, 4.0, l.Plot.Position())
	})

	t.Run("encumbrance tracks strength", func(t *testing.T) {
		l := NewLedger(10)
		l.SyncEncumbrance(11, 30)
		assert.Equal(t, 21.0, l.Encumbrance.Max())
		assert.True(t, l.Encumbrance.Done())
	})

	assert.Len(t, (&Ledger{}).Bars(), 5)
}
