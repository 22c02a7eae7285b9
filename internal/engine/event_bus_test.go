package engine

import (
	"new-haven-server/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_TypedAndAll(t *testing.T) {
	b := NewEventBus()
	var typed, all []domain.EventType

	b.Subscribe(domain.EventLevelUp, func(ev domain.Event) { typed = append(typed, ev.Type) })
	b.SubscribeAll(func(ev domain.Event) { all = append(all, ev.Type) })

	b.Emit(domain.NewEvent(domain.EventLevelUp, "player"))
	b.Emit(domain.NewEvent(domain.EventPlayerDash, "player"))

	assert.Equal(t, []domain.EventType{domain.EventLevelUp}, typed)
	assert.Equal(t, []domain.EventType{domain.EventLevelUp, domain.EventPlayerDash}, all)
	assert.Equal(t, 1, b.Count(domain.EventLevelUp))
}

func TestEventBus_Unsubscribe(t *testing.T) {
	b := NewEventBus()
	calls := 0
	id := b.Subscribe(domain.EventEnemyDeath, func(domain.Event) { calls++ })
	anyID := b.SubscribeAll(func(domain.Event) { calls++ })

	assert.False(t, b.Unsubscribe(domain.EventLevelUp, id))
	assert.True(t, b.Unsubscribe(domain.EventEnemyDeath, id))
	assert.True(t, b.Unsubscribe(domain.EventUnknown, anyID))
	assert.False(t, b.Unsubscribe(domain.EventUnknown, anyID))

	b.Emit(domain.NewEvent(domain.EventEnemyDeath, "e1"))
	assert.Zero(t, calls)
}

func TestEventBus_UnsubscribeFromListener(t *testing.T) {
	b := NewEventBus()
	calls := 0
	var id ListenerID
	id = b.Subscribe(domain.EventLevelComplete, func(domain.Event) {
		calls++
		b.Unsubscribe(domain.EventLevelComplete, id)
	})

	b.Emit(domain.NewEvent(domain.EventLevelComplete, ""))
	b.Emit(domain.NewEvent(domain.EventLevelComplete, ""))
	assert.Equal(t, 1, calls)
	assert.Zero(t, b.Count(domain.EventLevelComplete))
}
