package engine

import (
	"container/heap"
	"new-haven-server/pkg/levels"
	"new-haven-server/pkg/logger"
)

// SpawnScheduler - отложенные появления врагов (миньоны босса)
type SpawnScheduler struct {
	queue   SpawnQueue
	itemMap map[string]*SpawnItem
	seq     uint64
}

func NewSpawnScheduler() *SpawnScheduler {
	return &SpawnScheduler{
		queue:   make(SpawnQueue, 0),
		itemMap: make(map[string]*SpawnItem),
	}
}

// Schedule ставит появление на время at. Повтор ID переносит время.
func (s *SpawnScheduler) Schedule(spawn levels.EnemySpawn, at float64) {
	if item, ok := s.itemMap[spawn.ID]; ok {
		s.queue.Update(item, at)
		return
	}
	s.seq++
	item := &SpawnItem{Spawn: spawn, At: at, Seq: s.seq}
	heap.Push(&s.queue, item)
	s.itemMap[spawn.ID] = item

	logger.Log.WithField("spawn_id", spawn.ID).WithField("at", at).Debug("Spawn scheduled")
}

// PopDue снимает все появления, чье время наступило, в порядке времени
func (s *SpawnScheduler) PopDue(now float64) []levels.EnemySpawn {
	var due []levels.EnemySpawn
	for s.queue.Len() > 0 && s.queue[0].At <= now {
		item := heap.Pop(&s.queue).(*SpawnItem)
		delete(s.itemMap, item.Spawn.ID)
		due = append(due, item.Spawn)
	}
	return due
}

// PeekNext возвращает ближайшее появление, не снимая его
func (s *SpawnScheduler) PeekNext() *SpawnItem {
	if s.queue.Len() == 0 {
		return nil
	}
	return s.queue[0]
}

// Cancel убирает появление из очереди
func (s *SpawnScheduler) Cancel(id string) bool {
	item, ok := s.itemMap[id]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, item.Index)
	delete(s.itemMap, id)
	return true
}

// Clear - смена уровня
func (s *SpawnScheduler) Clear() {
	s.queue = make(SpawnQueue, 0)
	s.itemMap = make(map[string]*SpawnItem)
}

func (s *SpawnScheduler) Len() int {
	return s.queue.Len()
}

// DebugDump возвращает снимок очереди для отладки
func (s *SpawnScheduler) DebugDump() []map[string]interface{} {
	// Пустой слайс, а не nil: в JSON будет "[]", а не "null"
	result := make([]map[string]interface{}, 0)

	for _, item := range s.queue {
		result = append(result, map[string]interface{}{
			"id":    item.Spawn.ID,
			"kind":  item.Spawn.Kind,
			"at":    item.At,
			"index": item.Index,
		})
	}
	return result
}
