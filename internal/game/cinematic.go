package game

import (
	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/loot"
	"github.com/fernicar/PQ-TINS-Edition/internal/monster"
	"github.com/fernicar/PQ-TINS-Edition/internal/names"
)

// prologue plays once, right after a hero is created.
func prologue() []QueueEntry {
	return []QueueEntry{
		cinematic(10, "Experiencing an enigmatic and foreboding night vision"),
		cinematic(6, "Much is revealed about that wise old bastard you'd underestimated"),
		cinematic(6, "A shocking series of events leaves you alone and bewildered, but resolute"),
		cinematic(4, "Drawing upon an unrealized reserve of determination, you set out on a long and dangerous journey"),
		plotMarker(2),
	}
}

// interlude picks one of the scripted scenes that close an act. Every
// script ends with the plot marker that starts the next act.
func interlude(r *alea.Rand, level, act, nemesisCandidates int) []QueueEntry {
	var script []QueueEntry
	switch r.Intn(3) {
	case 0:
		script = []QueueEntry{
			cinematic(1, "Exhausted, you arrive at a friendly oasis in a hostile land"),
			cinematic(2, "You greet old friends and meet new allies"),
			cinematic(2, "You are privy to a council of powerful do-gooders"),
			cinematic(1, "There is much to be done. You are chosen!"),
		}
	case 1:
		nemesis := monster.Named(r, level+3, nemesisCandidates)
		script = []QueueEntry{
			cinematic(1, "Your quarry is in sight, but a mighty enemy bars your path!"),
			cinematic(4, "A desperate struggle commences with "+nemesis),
		}
		s := r.Intn(3)
		rounds := r.Intn(act + 2)
		for i := 0; i < rounds; i++ {
			s += 1 + r.Intn(2)
			switch s % 3 {
			case 0:
				script = append(script, cinematic(2, "Locked in grim combat with "+nemesis))
			case 1:
				script = append(script, cinematic(2, nemesis+" seems to have the upper hand"))
			default:
				script = append(script, cinematic(2, "You seem to gain the advantage over "+nemesis))
			}
		}
		script = append(script,
			cinematic(3, "Victory! "+nemesis+" is slain! Exhausted, you lose consciousness"),
			cinematic(2, "You awake in a friendly place, but the road awaits"),
		)
	default:
		ally := names.Impressive(r)
		script = []QueueEntry{
			cinematic(2, "Oh sweet relief! You've reached the kind protection of "+ally),
			cinematic(3, "There is rejoicing, and an unnerving encounter with "+ally+" in private"),
			cinematic(2, "You forget your "+loot.BoringItem(r)+" and go back to get it"),
			cinematic(2, "What's this!? You overhear something shocking!"),
			cinematic(2, "Could "+ally+" be a dirty double-dealer?"),
			cinematic(3, "Who can possibly be trusted with this news!? -- Oh yes, of course"),
		}
	}
	return append(script, plotMarker(1))
}
