package lingo

import "fmt"

// RoughTime describes a span of seconds in the largest sensible unit.
func RoughTime(seconds int) string {
	switch {
	case seconds < 120:
		return fmt.Sprintf("%d seconds", seconds)
	case seconds < 60*120:
		return fmt.Sprintf("%d minutes", seconds/60)
	case seconds < 60*60*48:
		return fmt.Sprintf("%d hours", seconds/3600)
	case seconds < 60*60*24*60:
		return fmt.Sprintf("%d days", seconds/(3600*24))
	case seconds < 60*60*24*30*24:
		return fmt.Sprintf("%d months", seconds/(3600*24*30))
	default:
		return fmt.Sprintf("%d years", seconds/(3600*24*30*12))
	}
}
