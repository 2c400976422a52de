// Package alea implements Johannes Baagøe's Alea generator as a pure state
// transition, so a character's dice can be saved, restored and replayed.
package alea

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

const norm32 = 2.3283064365386963e-10 // 2^-32

// State is the full generator state. The zero value is not a useful
// generator; build one with Seed.
type State struct {
	S0, S1, S2, C float64
}

// Next returns the next float in [0,1) and the successor state.
func (s State) Next() (float64, State) {
	t := 2091639*s.S0 + s.C*norm32
	c := math.Floor(t)
	next := State{S0: s.S1, S1: s.S2, S2: t - c, C: c}
	return next.S2, next
}

// Seed mixes values into a fresh state. Strings hash by UTF-16 code unit and
// numbers hash by their JavaScript string form, so seeds carry over from
// saves written by other Progress Quest clients.
func Seed(values ...any) State {
	m := newMasher()
	s := State{C: 1}
	s.S0 = m.mash(" ")
	s.S1 = m.mash(" ")
	s.S2 = m.mash(" ")
	for _, v := range values {
		str := format(v)
		s.S0 -= m.mash(str)
		if s.S0 < 0 {
			s.S0++
		}
		s.S1 -= m.mash(str)
		if s.S1 < 0 {
			s.S1++
		}
		s.S2 -= m.mash(str)
		if s.S2 < 0 {
			s.S2++
		}
	}
	return s
}

// NewSeed seeds a state from crypto/rand.
func NewSeed() (State, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return State{}, fmt.Errorf("read entropy: %w", err)
	}
	return Seed(
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
		binary.LittleEndian.Uint32(b[8:12]),
		binary.LittleEndian.Uint32(b[12:16]),
	), nil
}

// MarshalJSON writes the state as [s0,s1,s2,c].
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{s.S0, s.S1, s.S2, s.C})
}

func (s *State) UnmarshalJSON(b []byte) error {
	var arr []float64
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	if len(arr) != 4 {
		return fmt.Errorf("alea state: want 4 numbers, got %d", len(arr))
	}
	*s = State{S0: arr[0], S1: arr[1], S2: arr[2], C: arr[3]}
	return nil
}

// IsZero reports whether the state was never seeded.
func (s State) IsZero() bool {
	return s == State{}
}

type masher struct {
	n float64
}

func newMasher() *masher {
	return &masher{n: 0xefc8249d}
}

func (m *masher) mash(data string) float64 {
	n := m.n
	for _, unit := range utf16.Encode([]rune(data)) {
		n += float64(unit)
		h := 0.02519603282416938 * n
		n = toUint32(h)
		h -= n
		h *= n
		n = toUint32(h)
		h -= n
		n += h * 0x100000000
	}
	m.n = n
	return toUint32(n) * norm32
}

func toUint32(f float64) float64 {
	return float64(uint32(uint64(math.Trunc(f))))
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return jsNumber(x)
	case float32:
		return jsNumber(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return fmt.Sprint(v)
	}
}

func jsNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
