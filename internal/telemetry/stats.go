package telemetry

import (
	"encoding/json"
	"time"
)

// Stats summarises a run of the engine.
type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	TaskCompletions int               `json:"task_completions"`
	LevelUps        int               `json:"level_ups"`
	QuestsCompleted int               `json:"quests_completed"`
	ActsCompleted   int               `json:"acts_completed"`
	GoldEarned      int               `json:"gold_earned"`
	TasksByKind     map[string]int    `json:"tasks_by_kind"`
	RewardsByKind   map[string]int    `json:"rewards_by_kind"`
	StatGains       map[string]int    `json:"stat_gains"`
	TasksPerLevel   float64           `json:"tasks_per_level"`
}

// CalculateStats computes run stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:        since.Format("2006-01-02"),
		EventCounts:   make(map[EventType]int),
		TasksByKind:   make(map[string]int),
		RewardsByKind: make(map[string]int),
		StatGains:     make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventTaskCompleted:
			stats.TaskCompletions++
			if kind, ok := metadata["kind"].(string); ok {
				stats.TasksByKind[kind]++
			}
		case EventLevelUp:
			stats.LevelUps++
		case EventQuestCompleted:
			stats.QuestsCompleted++
			if reward, ok := metadata["reward"].(string); ok {
				stats.RewardsByKind[reward]++
			}
		case EventActCompleted:
			stats.ActsCompleted++
		case EventItemSold:
			// JSON numbers decode as float64
			if gold, ok := metadata["gold"].(float64); ok {
				stats.GoldEarned += int(gold)
			}
		case EventStatGained:
			if stat, ok := metadata["stat"].(string); ok {
				stats.StatGains[stat]++
			}
		}
	}

	if stats.LevelUps > 0 {
		stats.TasksPerLevel = float64(stats.TaskCompletions) / float64(stats.LevelUps)
	}

	return stats, nil
}
