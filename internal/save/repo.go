package save

import (
	"context"
	"time"
)

// Summary describes one stored save without decoding the whole hero.
type Summary struct {
	Name     string    `json:"name"`
	Race     string    `json:"race"`
	Class    string    `json:"class"`
	Level    int       `json:"level"`
	Revision string    `json:"revision,omitempty"`
	Saved    time.Time `json:"saved"`
}

// Repository stores snapshots keyed by hero name.
type Repository interface {
	Save(ctx context.Context, s Snapshot) error
	Load(ctx context.Context, name string) (Snapshot, error)
	// Latest is the most recently saved hero.
	Latest(ctx context.Context) (Snapshot, error)
	List(ctx context.Context) ([]Summary, error)
}

func summarize(s Snapshot) Summary {
	return Summary{
		Name:  s.Traits.Name,
		Race:  s.Traits.Race,
		Class: s.Traits.Class,
		Level: s.Traits.Level,
	}
}
