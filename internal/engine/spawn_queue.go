package engine

import (
	"container/heap"
	"new-haven-server/pkg/levels"
)

// SpawnItem обертка для элемента очереди появления
type SpawnItem struct {
	Spawn levels.EnemySpawn // Кого создать
	At    float64           // Время уровня (сек), когда появиться. Чем меньше, тем раньше.
	Index int               // Индекс в куче (нужен для Fix/Remove)
	Seq   uint64            // Порядок постановки, разводит равные At
}

// SpawnQueue реализует heap.Interface и хранит SpawnItems
type SpawnQueue []*SpawnItem

func (pq SpawnQueue) Len() int { return len(pq) }

func (pq SpawnQueue) Less(i, j int) bool {
	// MinHeap по времени появления, при равенстве - кто раньше поставлен
	if pq[i].At == pq[j].At {
		return pq[i].Seq < pq[j].Seq
	}
	return pq[i].At < pq[j].At
}

func (pq SpawnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *SpawnQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*SpawnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *SpawnQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// Update переносит время появления элемента
func (pq *SpawnQueue) Update(item *SpawnItem, at float64) {
	item.At = at
	heap.Fix(pq, item.Index)
}
