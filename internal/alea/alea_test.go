package alea

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Deterministic(t *testing.T) {
	a := NewSeeded("my", 3, "seeds")
	b := NewSeeded("my", 3, "seeds")
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float(), b.Float(), "draw %d", i)
	}
}

func TestSeed_DifferentInputsDiverge(t *testing.T) {
	a := Seed("alpha")
	b := Seed("beta")
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, Seed(1), Seed("1.5"))
	assert.Equal(t, Seed(1), Seed("1"), "numbers hash by their string form")
	assert.Equal(t, Seed(1.5), Seed("1.5"))
}

func TestNext_IsPure(t *testing.T) {
	s := Seed("pure")
	f1, n1 := s.Next()
	f2, n2 := s.Next()
	assert.Equal(t, f1, f2)
	assert.Equal(t, n1, n2)
	assert.NotEqual(t, s, n1)
}

func TestFloat_InUnitInterval(t *testing.T) {
	r := NewSeeded("range")
	for i := 0; i < 10000; i++ {
		f := r.Float()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestRestore_ReplaysSequence(t *testing.T) {
	r := NewSeeded("replay", 42)
	r.Intn(10)
	saved := r.State()

	var want []int
	for i := 0; i < 20; i++ {
		want = append(want, r.Intn(1000))
	}

	r.Restore(saved)
	var got []int
	for i := 0; i < 20; i++ {
		got = append(got, r.Intn(1000))
	}
	assert.Equal(t, want, got)
}

func TestIntn(t *testing.T) {
	t.Run("non-positive n returns zero without drawing", func(t *testing.T) {
		r := NewSeeded("zero")
		before := r.State()
		assert.Equal(t, 0, r.Intn(0))
		assert.Equal(t, 0, r.Intn(-5))
		assert.Equal(t, before, r.State())
	})

	t.Run("stays in range", func(t *testing.T) {
		r := NewSeeded("bounds")
		seen := map[int]bool{}
		for i := 0; i < 2000; i++ {
			n := r.Intn(6)
			require.GreaterOrEqual(t, n, 0)
			require.Less(t, n, 6)
			seen[n] = true
		}
		assert.Len(t, seen, 6)
	})

	t.Run("low is never above either draw", func(t *testing.T) {
		r := NewSeeded("low")
		for i := 0; i < 500; i++ {
			s := r.State()
			a, b := r.Intn(50), r.Intn(50)
			r.Restore(s)
			assert.Equal(t, min(a, b), r.Low(50))
		}
	})
}

func TestSign(t *testing.T) {
	r := NewSeeded("sign")
	for i := 0; i < 200; i++ {
		s := r.Sign()
		require.True(t, s == 1 || s == -1)
	}
}

func TestPick(t *testing.T) {
	r := NewSeeded("pick")
	_, ok := Pick[string](r, nil)
	assert.False(t, ok)

	v, ok := Pick(r, []string{"only"})
	assert.True(t, ok)
	assert.Equal(t, "only", v)

	_, ok = PickLow[int](r, []int{})
	assert.False(t, ok)
}

func TestClosest(t *testing.T) {
	levels := []int{0, 5, 10, 15, 20, 25, 30}
	id := func(n int) int { return n }

	t.Run("empty", func(t *testing.T) {
		_, idx := Closest(NewSeeded("x"), []int{}, 5, 3, id)
		assert.Equal(t, -1, idx)
	})

	t.Run("never worse than the first candidate", func(t *testing.T) {
		r := NewSeeded("closest")
		for i := 0; i < 200; i++ {
			s := r.State()
			first := levels[r.Intn(len(levels))]
			r.Restore(s)
			got, idx := Closest(r, levels, 6, 12, id)
			assert.Equal(t, levels[idx], got)
			assert.LessOrEqual(t, abs(12-got), abs(12-first))
		}
	})
}

func TestState_JSON(t *testing.T) {
	s := Seed("json")
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, byte('['), b[0])

	var back State
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)

	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &back))
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
}

func TestJSNumber(t *testing.T) {
	cases := map[float64]string{
		0:             "0",
		1.5:           "1.5",
		-42:           "-42",
		1700000000000: "1700000000000",
		1e21:          "1e+21",
		1e-7:          "1e-7",
	}
	for in, want := range cases {
		assert.Equal(t, want, jsNumber(in), "jsNumber(%v)", in)
	}
}
