package telemetry

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository stores telemetry events
type Repository interface {
	Recorder
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps the chronicle of one engine run in memory. Only
// the most recent limit events are kept.
type MemoryRepository struct {
	mu     sync.RWMutex
	runID  string
	events []Event
	nextID int
	limit  int
	now    func() time.Time
}

// DefaultLimit caps an in-memory chronicle.
const DefaultLimit = 10000

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		runID:  uuid.NewString(),
		events: make([]Event, 0),
		nextID: 1,
		limit:  DefaultLimit,
		now:    time.Now,
	}
}

// WithClock makes timestamps come from now.
func (r *MemoryRepository) WithClock(now func() time.Time) *MemoryRepository {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
	return r
}

// WithLimit changes how many events are kept. Zero or less keeps them all.
func (r *MemoryRepository) WithLimit(n int) *MemoryRepository {
	r.mu.Lock()
	r.limit = n
	r.mu.Unlock()
	return r
}

// RunID identifies this chronicle.
func (r *MemoryRepository) RunID() string { return r.runID }

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: r.now(),
		Metadata:  string(metadataJSON),
	})
	r.nextID++
	if r.limit > 0 && len(r.events) > r.limit {
		r.events = r.events[len(r.events)-r.limit:]
	}
	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool)
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}

	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make([]Event, 0)
	r.nextID = 1

	return nil
}
