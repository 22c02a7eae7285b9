package engine

import (
	"new-haven-server/internal/domain"
	"sync"

	"github.com/google/uuid"
)

// ListenerID - дескриптор подписки
type ListenerID string

// Listener получает событие на горутине игрового цикла и не должен блокировать
type Listener func(domain.Event)

type subscription struct {
	id ListenerID
	fn Listener
}

// EventBus - типизированный реестр слушателей.
// Подписка возможна с любой горутины, рассылка идет с горутины цикла.
type EventBus struct {
	mu        sync.RWMutex
	listeners map[domain.EventType][]subscription
	any       []subscription
}

func NewEventBus() *EventBus {
	return &EventBus{listeners: make(map[domain.EventType][]subscription)}
}

// Subscribe подписывает fn на события типа t
func (b *EventBus) Subscribe(t domain.EventType, fn Listener) ListenerID {
	id := ListenerID(uuid.NewString())
	b.mu.Lock()
	b.listeners[t] = append(b.listeners[t], subscription{id: id, fn: fn})
	b.mu.Unlock()
	return id
}

// SubscribeAll подписывает fn на все события (трансляция клиенту)
func (b *EventBus) SubscribeAll(fn Listener) ListenerID {
	id := ListenerID(uuid.NewString())
	b.mu.Lock()
	b.any = append(b.any, subscription{id: id, fn: fn})
	b.mu.Unlock()
	return id
}

// Unsubscribe снимает подписку. Для SubscribeAll тип - EventUnknown.
func (b *EventBus) Unsubscribe(t domain.EventType, id ListenerID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if t == domain.EventUnknown {
		var ok bool
		b.any, ok = without(b.any, id)
		return ok
	}
	list, ok := without(b.listeners[t], id)
	b.listeners[t] = list
	return ok
}

func without(list []subscription, id ListenerID) ([]subscription, bool) {
	for i, s := range list {
		if s.id == id {
			out := make([]subscription, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...), true
		}
	}
	return list, false
}

// Emit рассылает событие. Слушатели вызываются вне блокировки,
// поэтому могут отписываться прямо из обработчика.
func (b *EventBus) Emit(ev domain.Event) {
	b.mu.RLock()
	typed := b.listeners[ev.Type]
	all := b.any
	b.mu.RUnlock()

	for _, s := range typed {
		s.fn(ev)
	}
	for _, s := range all {
		s.fn(ev)
	}
}

// Count - число подписчиков на тип
func (b *EventBus) Count(t domain.EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[t])
}
