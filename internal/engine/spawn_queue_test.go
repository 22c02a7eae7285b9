package engine

import (
	"container/heap"
	"new-haven-server/pkg/levels"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnQueue(t *testing.T) {
	pq := make(SpawnQueue, 0)
	heap.Init(&pq)

	item1 := &SpawnItem{Spawn: levels.EnemySpawn{ID: "m1"}, At: 10}
	item2 := &SpawnItem{Spawn: levels.EnemySpawn{ID: "m2"}, At: 5}
	item3 := &SpawnItem{Spawn: levels.EnemySpawn{ID: "m3"}, At: 15}

	heap.Push(&pq, item1)
	heap.Push(&pq, item2)
	heap.Push(&pq, item3)

	if pq.Len() != 3 {
		t.Errorf("Expected length 3, got %d", pq.Len())
	}

	// Первым выходит m2 (5 с)
	first := heap.Pop(&pq).(*SpawnItem)
	if first.Spawn.ID != "m2" {
		t.Errorf("Expected m2, got %s", first.Spawn.ID)
	}

	// Переносим m1 с 10 на 30. Новая вершина - m3.
	pq.Update(item1, 30)

	second := heap.Pop(&pq).(*SpawnItem)
	if second.Spawn.ID != "m3" {
		t.Errorf("Expected m3 (15s), got %s", second.Spawn.ID)
	}

	third := heap.Pop(&pq).(*SpawnItem)
	if third.Spawn.ID != "m1" {
		t.Errorf("Expected m1 (30s), got %s", third.Spawn.ID)
	}
}

func TestSpawnScheduler(t *testing.T) {
	s := NewSpawnScheduler()
	for i, at := range levels.MinionDelays {
		s.Schedule(levels.EnemySpawn{ID: string(rune('a' + i))}, at)
	}
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "a", s.PeekNext().Spawn.ID)

	assert.Empty(t, s.PopDue(4.9))

	due := s.PopDue(10)
	require.Len(t, due, 2)
	assert.Equal(t, "a", due[0].ID)
	assert.Equal(t, "b", due[1].ID)

	// Повтор ID переносит время, а не дублирует
	s.Schedule(levels.EnemySpawn{ID: "c"}, 1)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1.0, s.PeekNext().At)
	assert.Len(t, s.DebugDump(), 1)

	assert.True(t, s.Cancel("c"))
	assert.False(t, s.Cancel("c"))
	assert.Nil(t, s.PeekNext())
	assert.NotNil(t, s.DebugDump())

	s.Schedule(levels.EnemySpawn{ID: "d"}, 3)
	s.Clear()
	assert.Zero(t, s.Len())
}

func TestSpawnScheduler_EqualTimesKeepScheduleOrder(t *testing.T) {
	s := NewSpawnScheduler()
	ids := []string{"m0", "m1", "m2", "m3", "m4", "m5", "m6", "m7"}
	s.Schedule(levels.EnemySpawn{ID: "late"}, 9)
	for _, id := range ids {
		s.Schedule(levels.EnemySpawn{ID: id}, 5)
	}
	s.Schedule(levels.EnemySpawn{ID: "early"}, 1)

	due := s.PopDue(5)
	require.Len(t, due, len(ids)+1)
	assert.Equal(t, "early", due[0].ID)
	for i, id := range ids {
		assert.Equal(t, id, due[i+1].ID)
	}
	assert.Equal(t, "late", s.PeekNext().Spawn.ID)
}
