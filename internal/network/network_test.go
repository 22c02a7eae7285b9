package network

import (
	"encoding/json"
	"new-haven-server/internal/abilities"
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine"
	"new-haven-server/internal/version"
	"new-haven-server/pkg/api"
	"new-haven-server/pkg/logger"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Silence()
	os.Exit(m.Run())
}

func TestBroadcaster(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("c1")
	assert.True(t, b.HasSubscriber("c1"))
	assert.Equal(t, 1, b.SubscriberCount())

	assert.True(t, b.SendTo("c1", Frame{Data: []byte("hi")}))
	assert.False(t, b.SendTo("ghost", Frame{}))
	assert.Equal(t, "hi", string((<-ch).Data))

	// Переполненный канал пропускает кадры, а не блокирует цикл
	for i := 0; i < SendBuffer; i++ {
		b.Broadcast(Frame{})
	}
	assert.Zero(t, b.Broadcast(Frame{}))

	b.Unregister("c1")
	assert.False(t, b.HasSubscriber("c1"))
	for range ch {
	}
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("c1")
	b.Register("c1")

	_, ok := <-old
	assert.False(t, ok)
	assert.Equal(t, 1, b.SubscriberCount())
}

func TestEventFrame(t *testing.T) {
	f, err := EventFrame(domain.Event{Type: domain.EventLevelUp, EntityID: "player", Level: 3})
	require.NoError(t, err)
	assert.False(t, f.Binary)

	var msg api.EventMessage
	require.NoError(t, json.Unmarshal(f.Data, &msg))
	assert.Equal(t, api.TypeEvent, msg.Type)
	assert.Equal(t, "level_up", msg.Event)
	assert.Equal(t, 3, msg.Level)

	var em api.ErrorMessage
	require.NoError(t, json.Unmarshal(ErrorFrame("bad").Data, &em))
	assert.Equal(t, api.TypeError, em.Type)
}

func newManager(t *testing.T) *engine.Manager {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 42
	catalog, err := abilities.DefaultCatalog()
	require.NoError(t, err)
	m := engine.NewManager(cfg, catalog)
	require.True(t, m.StartGame())
	return m
}

func TestPublisher_ThrottlesSnapshots(t *testing.T) {
	hub := NewBroadcaster()
	inbox := hub.Register("viewer")
	pub := NewPublisher(hub, 25)

	clock := time.Unix(0, 0)
	pub.now = func() time.Time { return clock }

	m := newManager(t)
	pub.Attach(m)

	_, ok := pub.Latest()
	assert.False(t, ok)

	// 50 кадров по 20 мс при лимите 25 в секунду -> каждый второй
	for i := 0; i < 50; i++ {
		m.Update(0.02)
		pub.OnFrame(m)
		clock = clock.Add(20 * time.Millisecond)
	}

	snaps := 0
	for len(inbox) > 0 {
		f := <-inbox
		if f.Binary {
			snaps++
		}
	}
	assert.Equal(t, 25, snaps)

	latest, ok := pub.Latest()
	require.True(t, ok)
	assert.True(t, latest.State.Running)
}

func TestPublisher_SnapshotDecodes(t *testing.T) {
	hub := NewBroadcaster()
	inbox := hub.Register("viewer")
	pub := NewPublisher(hub, 0)

	m := newManager(t)
	m.Update(1.0 / 60)
	pub.OnFrame(m)

	f := <-inbox
	require.True(t, f.Binary)
	snap, err := DecodeSnapshot(f.Data)
	require.NoError(t, err)
	assert.Equal(t, api.TypeSnapshot, snap.Type)
	assert.Equal(t, version.Protocol, snap.Protocol)
	assert.Equal(t, uint64(1), snap.Tick)
	require.NotNil(t, snap.Level)
	assert.Equal(t, 1, snap.Level.ID)
	assert.Len(t, snap.Entities, len(m.Snapshot().Entities))
}

func TestPublisher_RelaysEvents(t *testing.T) {
	hub := NewBroadcaster()
	inbox := hub.Register("viewer")
	pub := NewPublisher(hub, 0)

	m := newManager(t)
	pub.Attach(m)
	require.True(t, m.PauseGame())

	f := <-inbox
	assert.False(t, f.Binary)
	assert.Contains(t, string(f.Data), "game_paused")
}
