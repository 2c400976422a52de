// Package lingo holds the English helpers shared by the content generators:
// plurals, articles, Roman numerals, casing and rough durations.
package lingo

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	title = cases.Title(language.English)
	upper = cases.Upper(language.English)
	lower = cases.Lower(language.English)
)

// Plural applies the game's suffix rules: consonant+y → ies, us → i,
// ch/sh/s/x → es, f/fe → ves, man → men, otherwise s.
func Plural(s string) string {
	switch {
	case consonantY(s):
		return s[:len(s)-1] + "ies"
	case strings.HasSuffix(s, "us"):
		return s[:len(s)-2] + "i"
	case strings.HasSuffix(s, "ch"), strings.HasSuffix(s, "sh"),
		strings.HasSuffix(s, "s"), strings.HasSuffix(s, "x"):
		return s + "es"
	case strings.HasSuffix(s, "fe"):
		return s[:len(s)-2] + "ves"
	case strings.HasSuffix(s, "f"):
		return s[:len(s)-1] + "ves"
	case strings.HasSuffix(s, "man"), strings.HasSuffix(s, "Man"):
		return s[:len(s)-2] + "en"
	default:
		return s + "s"
	}
}

func consonantY(s string) bool {
	if len(s) < 2 || s[len(s)-1] != 'y' {
		return false
	}
	return !strings.ContainsRune("aeiouAEIOU", rune(s[len(s)-2]))
}

// Indefinite renders "a goblin", "an orc" or "3 orcs".
func Indefinite(s string, qty int) string {
	if qty == 1 {
		if startsWithVowel(s) {
			return "an " + s
		}
		return "a " + s
	}
	return strconv.Itoa(qty) + " " + Plural(s)
}

// Definite renders "the orc" or, for qty > 1, "the orcs".
func Definite(s string, qty int) string {
	if qty > 1 {
		s = Plural(s)
	}
	return "the " + s
}

func startsWithVowel(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ContainsRune("AEIOUÜaeiouü", r)
}

// Title upper-cases the first letter of every word.
func Title(s string) string {
	return title.String(s)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return upper.String(string(r)) + lower.String(s[size:])
}

// Lower lower-cases s.
func Lower(s string) string {
	return lower.String(s)
}
