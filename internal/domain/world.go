package domain

import (
	"errors"
)

// ErrDuplicateEntity - сущность с таким ID уже зарегистрирована
var ErrDuplicateEntity = errors.New("entity already exists")

// World - арена сущностей: упорядоченный слайс + индекс id -> слот.
// Порядок обхода = порядок вставки, от него зависит порядок пар в коллизиях.
type World struct {
	entities []*Entity
	index    map[string]int
}

func NewWorld() *World {
	return &World{index: make(map[string]int)}
}

// CreateEntity регистрирует новую пустую сущность
func (w *World) CreateEntity(id string, t Transform, size Size) (*Entity, error) {
	e := NewEntity(id, t, size)
	if err := w.Spawn(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Spawn регистрирует уже собранную сущность. Повтор ID - ошибка, а не перезапись.
func (w *World) Spawn(e *Entity) error {
	if _, exists := w.index[e.ID]; exists {
		return ErrDuplicateEntity
	}
	e.SyncBounds()
	w.index[e.ID] = len(w.entities)
	w.entities = append(w.entities, e)
	return nil
}

// DestroyEntity удаляет сущность, сохраняя порядок остальных
func (w *World) DestroyEntity(id string) bool {
	slot, ok := w.index[id]
	if !ok {
		return false
	}
	copy(w.entities[slot:], w.entities[slot+1:])
	w.entities[len(w.entities)-1] = nil
	w.entities = w.entities[:len(w.entities)-1]
	delete(w.index, id)

	for i := slot; i < len(w.entities); i++ {
		w.index[w.entities[i].ID] = i
	}
	return true
}

// GetEntity - поиск по ID. Нет сущности - nil.
func (w *World) GetEntity(id string) *Entity {
	if slot, ok := w.index[id]; ok {
		return w.entities[slot]
	}
	return nil
}

// AddComponent вешает компонент на сущность
func (w *World) AddComponent(id string, c Component) bool {
	e := w.GetEntity(id)
	if e == nil || c == nil {
		return false
	}
	return e.Attach(c)
}

// RemoveComponent снимает компонент
func (w *World) RemoveComponent(id string, kind ComponentKind) bool {
	e := w.GetEntity(id)
	if e == nil {
		return false
	}
	return e.Detach(kind)
}

// GetComponent - компонент сущности. Неизвестный ID или вид - (nil, false).
func (w *World) GetComponent(id string, kind ComponentKind) (Component, bool) {
	e := w.GetEntity(id)
	if e == nil {
		return nil, false
	}
	return e.Component(kind)
}

// All возвращает копию списка сущностей в порядке вставки
func (w *World) All() []*Entity {
	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// With - сущности, у которых есть все перечисленные компоненты
func (w *World) With(kinds ...ComponentKind) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.HasAll(kinds...) {
			out = append(out, e)
		}
	}
	return out
}

// ActiveWith - то же, но только активные
func (w *World) ActiveWith(kinds ...ComponentKind) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.Active && e.HasAll(kinds...) {
			out = append(out, e)
		}
	}
	return out
}

// FirstPlayer - первая активная сущность с компонентом игрока
func (w *World) FirstPlayer() *Entity {
	for _, e := range w.entities {
		if e.Active && e.Player != nil {
			return e
		}
	}
	return nil
}

// Clear удаляет все сущности, кроме перечисленных ID
func (w *World) Clear(keep ...string) {
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}
	w.retain(func(e *Entity) bool {
		_, ok := keepSet[e.ID]
		return ok
	})
}

// Compact выбрасывает неактивные сущности без компонента игрока
func (w *World) Compact() int {
	return w.retain(func(e *Entity) bool {
		return e.Active || e.Player != nil
	})
}

// retain оставляет сущности, для которых keep == true, за один проход:
// фильтрация на месте с сохранением порядка, индекс пересобирается один раз.
// Возвращает число удаленных.
func (w *World) retain(keep func(*Entity) bool) int {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	removed := len(w.entities) - len(kept)
	if removed == 0 {
		return 0
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept

	w.index = make(map[string]int, len(kept))
	for i, e := range kept {
		w.index[e.ID] = i
	}
	return removed
}

func (w *World) Len() int {
	return len(w.entities)
}
