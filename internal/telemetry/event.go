package telemetry

import "time"

type EventType string

const (
	EventTaskCompleted   EventType = "task_completed"
	EventLevelUp         EventType = "level_up"
	EventStatGained      EventType = "stat_gained"
	EventSpellLearned    EventType = "spell_learned"
	EventQuestCompleted  EventType = "quest_completed"
	EventActCompleted    EventType = "act_completed"
	EventLootGained      EventType = "loot_gained"
	EventItemSold        EventType = "item_sold"
	EventEquipmentForged EventType = "equipment_forged"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}

// Recorder is the write side the engine needs.
type Recorder interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
}

// Discard drops every event.
type Discard struct{}

func (Discard) RecordEvent(EventType, EventMetadata) error { return nil }
