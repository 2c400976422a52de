// Package names invents proper names for characters, nemeses and patrons.
package names

import (
	"strings"
	"unicode"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
)

// Placeholder is used when the phoneme draw produces no letters at all.
const Placeholder = "Nameless"

// Generate builds a name from six phoneme picks.
func Generate(r *alea.Rand) string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		part, _ := alea.Pick(r, catalog.NameParts[i%3])
		b.WriteString(part)
	}
	name := strings.TrimFunc(b.String(), func(c rune) bool { return !unicode.IsLetter(c) })
	if name == "" {
		return Placeholder
	}
	return lingo.Title(name)
}

// Impressive names a dignitary: either "the Lord of the Half Orcs" or
// "Baroness Brak of Dorp".
func Impressive(r *alea.Rand) string {
	title, ok := alea.Pick(r, catalog.ImpressiveTitles)
	if !ok {
		title = "Lord"
	}
	if r.Odds(1, 2) {
		race, ok := alea.Pick(r, catalog.Races)
		if !ok {
			return "the " + title
		}
		return "the " + title + " of the " + lingo.Plural(race.Name)
	}
	return title + " " + Generate(r) + " of " + Generate(r)
}
