// Package loot generates the things a hero picks up, buys and sells, and
// keeps track of what is being carried.
package loot

import (
	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/catalog"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
)

// Fallbacks used when a table turns out empty.
const (
	fallbackBoring  = "rock"
	fallbackSpecial = "Orb"
)

// BoringItem is a mundane object such as "sock".
func BoringItem(r *alea.Rand) string {
	s, ok := alea.Pick(r, catalog.BoringItems)
	if !ok {
		return fallbackBoring
	}
	return s
}

// InterestingItem is an adjective plus a trinket, e.g. "Golden Tiara".
func InterestingItem(r *alea.Rand) string {
	attrib, ok := alea.Pick(r, catalog.ItemAttrib)
	special, ok2 := alea.Pick(r, catalog.Specials)
	if !ok2 {
		special = fallbackSpecial
	}
	if !ok {
		return special
	}
	return attrib + " " + special
}

// SpecialItem is an interesting item with a provenance, e.g.
// "Golden Tiara of Foreboding".
func SpecialItem(r *alea.Rand) string {
	of, ok := alea.Pick(r, catalog.ItemOfs)
	if !ok {
		return InterestingItem(r)
	}
	return InterestingItem(r) + " of " + of
}

// WinItem adds a special item. Once the pack is absurdly full it tops up
// something already carried instead. It returns the item's name.
func WinItem(r *alea.Rand, inv *Inventory) (string, error) {
	name := ""
	if inv.Len() > max(250, r.Intn(1000)) {
		if e, ok := alea.Pick(r, inv.Entries()); ok && e.Name != Gold {
			name = e.Name
		}
	}
	if name == "" {
		name = SpecialItem(r)
	}
	return name, inv.Add(name, 1)
}

// Trophy names the body part taken from a kill: "goblin Ear".
func Trophy(monster, tag string) string {
	return lingo.Lower(monster) + " " + lingo.Capitalize(tag)
}
