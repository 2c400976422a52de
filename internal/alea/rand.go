package alea

// Rand owns a State and advances it on every draw.
type Rand struct {
	s State
}

func New(s State) *Rand {
	return &Rand{s: s}
}

// NewSeeded is shorthand for New(Seed(values...)).
func NewSeeded(values ...any) *Rand {
	return New(Seed(values...))
}

func (r *Rand) State() State { return r.s }

func (r *Rand) Restore(s State) { r.s = s }

// Float returns a uniform float in [0,1).
func (r *Rand) Float() float64 {
	f, next := r.s.Next()
	r.s = next
	return f
}

// Intn returns a uniform int in [0,n). It returns 0 without drawing when
// n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float() * float64(n))
}

// Low returns the lower of two draws from [0,n).
func (r *Rand) Low(n int) int {
	return min(r.Intn(n), r.Intn(n))
}

// Odds reports a chance-in-outOf success.
func (r *Rand) Odds(chance, outOf int) bool {
	return r.Intn(outOf) < chance
}

// Sign returns -1 or +1.
func (r *Rand) Sign() int {
	return r.Intn(2)*2 - 1
}

// Pick returns a uniformly chosen element. ok is false for an empty slice.
func Pick[T any](r *Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.Intn(len(items))], true
}

// PickLow is Pick biased toward the front of the slice.
func PickLow[T any](r *Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.Low(len(items))], true
}

// Closest draws n candidates and keeps the one whose level is nearest target.
// Ties keep the earliest draw. It returns the chosen index, or -1 for an
// empty slice.
func Closest[T any](r *Rand, items []T, n, target int, level func(T) int) (T, int) {
	var zero T
	if len(items) == 0 {
		return zero, -1
	}
	best := r.Intn(len(items))
	for i := 1; i < n; i++ {
		c := r.Intn(len(items))
		if abs(target-level(items[c])) < abs(target-level(items[best])) {
			best = c
		}
	}
	return items[best], best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
