package lingo

import (
	"strings"
)

type numeral struct {
	sym   string
	value int
}

// T and A extend the usual numerals to 10000 and 5000 so levels up to
// 39999 stay readable.
var numerals = []numeral{
	{"T", 10000}, {"MT", 9000}, {"A", 5000}, {"MA", 4000},
	{"M", 1000}, {"CM", 900}, {"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90}, {"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9}, {"V", 5}, {"IV", 4}, {"I", 1},
}

// Roman renders n. Zero is "N"; negatives get a leading "-".
func Roman(n int) string {
	if n == 0 {
		return "N"
	}
	var b strings.Builder
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	for _, nm := range numerals {
		for n >= nm.value {
			b.WriteString(nm.sym)
			n -= nm.value
		}
	}
	return b.String()
}

// ParseRoman is the inverse of Roman. Unknown symbols are skipped.
func ParseRoman(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "N" {
		return 0
	}
	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	}
	total := 0
	for len(s) > 0 {
		matched := false
		for _, nm := range numerals {
			if strings.HasPrefix(s, nm.sym) {
				total += nm.value
				s = s[len(nm.sym):]
				matched = true
				break
			}
		}
		if !matched {
			s = s[1:]
		}
	}
	return sign * total
}
