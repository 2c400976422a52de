package loot

import (
	"errors"
	"fmt"
	"sort"
)

// Gold is the reserved inventory entry for money.
const Gold = "Gold"

// ErrNegativeQuantity is returned when a change would leave an entry below
// zero. It signals a bookkeeping bug, not a game event.
var ErrNegativeQuantity = errors.New("inventory quantity would go negative")

// Entry is one inventory line.
type Entry struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Inventory tracks what the hero is carrying. Entries at zero are removed.
type Inventory struct {
	items map[string]int
}

func NewInventory() *Inventory {
	return &Inventory{items: map[string]int{}}
}

// Add changes name's quantity by qty, which may be negative. A change that
// would go below zero is refused with ErrNegativeQuantity.
func (inv *Inventory) Add(name string, qty int) error {
	if inv.items == nil {
		inv.items = map[string]int{}
	}
	next := inv.items[name] + qty
	if next < 0 {
		return fmt.Errorf("%w: %s %d%+d", ErrNegativeQuantity, name, inv.items[name], qty)
	}
	if next == 0 {
		delete(inv.items, name)
		return nil
	}
	inv.items[name] = next
	return nil
}

// Spend removes amount of name if enough is held.
func (inv *Inventory) Spend(name string, amount int) bool {
	if amount <= 0 {
		return true
	}
	if !inv.Has(name, amount) {
		return false
	}
	_ = inv.Add(name, -amount)
	return true
}

// Has checks if inventory contains at least the specified amount
func (inv *Inventory) Has(name string, amount int) bool {
	return inv.items[name] >= amount
}

func (inv *Inventory) Qty(name string) int { return inv.items[name] }

func (inv *Inventory) Gold() int { return inv.items[Gold] }

// Remove drops an entry entirely and returns how many were held.
func (inv *Inventory) Remove(name string) int {
	n := inv.items[name]
	delete(inv.items, name)
	return n
}

// Carried is the number of items weighing the hero down. Gold is free.
func (inv *Inventory) Carried() int {
	total := 0
	for name, qty := range inv.items {
		if name != Gold {
			total += qty
		}
	}
	return total
}

// Len counts entries, Gold included.
func (inv *Inventory) Len() int { return len(inv.items) }

// Entries lists Gold first, then everything else alphabetically.
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, 0, len(inv.items))
	for name, qty := range inv.items {
		if name != Gold {
			out = append(out, Entry{Name: name, Qty: qty})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if g, ok := inv.items[Gold]; ok {
		out = append([]Entry{{Name: Gold, Qty: g}}, out...)
	}
	return out
}

// FirstSellable is the next entry the merchant will take.
func (inv *Inventory) FirstSellable() (Entry, bool) {
	for _, e := range inv.Entries() {
		if e.Name != Gold {
			return e, true
		}
	}
	return Entry{}, false
}

func (inv *Inventory) Clone() *Inventory {
	out := NewInventory()
	for k, v := range inv.items {
		out.items[k] = v
	}
	return out
}
