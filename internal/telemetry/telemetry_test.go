package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	now := start
	repo := NewMemoryRepository().WithClock(func() time.Time { return now })
	assert.NotEmpty(t, repo.RunID())

	require.NoError(t, repo.RecordEvent(EventTaskCompleted, EventMetadata{"kind": "combat"}))
	now = now.Add(time.Minute)
	require.NoError(t, repo.RecordEvent(EventLevelUp, EventMetadata{"level": 2}))

	t.Run("filter by type", func(t *testing.T) {
		events, err := repo.GetEvents(start, []EventType{EventLevelUp})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, 2, events[0].ID)
	})

	t.Run("filter by time", func(t *testing.T) {
		events, err := repo.GetEvents(start.Add(30*time.Second), nil)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, repo.Clear())
		events, _ := repo.GetEvents(time.Time{}, nil)
		assert.Empty(t, events)
	})
}

func TestMemoryRepository_Limit(t *testing.T) {
	repo := NewMemoryRepository().WithLimit(3)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.RecordEvent(EventTaskCompleted, nil))
	}
	events, _ := repo.GetEvents(time.Time{}, nil)
	require.Len(t, events, 3)
	assert.Equal(t, 3, events[0].ID)

	t.Run("unbounded", func(t *testing.T) {
		repo := NewMemoryRepository().WithLimit(0)
		for i := 0; i < DefaultLimit+5; i++ {
			require.NoError(t, repo.RecordEvent(EventLevelUp, nil))
		}
		events, _ := repo.GetEvents(time.Time{}, nil)
		assert.Len(t, events, DefaultLimit+5)
	})
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository()
	record := func(et EventType, md EventMetadata) {
		require.NoError(t, repo.RecordEvent(et, md))
	}
	record(EventTaskCompleted, EventMetadata{"kind": "combat"})
	record(EventTaskCompleted, EventMetadata{"kind": "combat"})
	record(EventTaskCompleted, EventMetadata{"kind": "selling"})
	record(EventItemSold, EventMetadata{"item": "orc Snout", "gold": 12})
	record(EventLevelUp, EventMetadata{"level": 2})
	record(EventStatGained, EventMetadata{"stat": "STR"})
	record(EventQuestCompleted, EventMetadata{"reward": "spell"})
	record(EventActCompleted, EventMetadata{"act": 1})

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	stats, err := CalculateStats(events, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TaskCompletions)
	assert.Equal(t, 2, stats.TasksByKind["combat"])
	assert.Equal(t, 12, stats.GoldEarned)
	assert.Equal(t, 1, stats.LevelUps)
	assert.Equal(t, 1, stats.StatGains["STR"])
	assert.Equal(t, 1, stats.RewardsByKind["spell"])
	assert.Equal(t, 1, stats.ActsCompleted)
	assert.Equal(t, 3.0, stats.TasksPerLevel)
	assert.Equal(t, 3, stats.EventCounts[EventTaskCompleted])
}

func TestDiscard(t *testing.T) {
	var r Recorder = Discard{}
	assert.NoError(t, r.RecordEvent(EventLevelUp, nil))
}
