package agent

import (
	"context"
	"new-haven-server/internal/abilities"
	"new-haven-server/internal/engine"
	"new-haven-server/internal/network"
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

type nopGame struct{ n int }

func (g *nopGame) Submit(engine.Command) bool { g.n++; return true }

func newBot() *Bot {
	return NewBot(&nopGame{}, network.NewBroadcaster())
}

func running(entities ...api.EntityView) api.Snapshot {
	return api.Snapshot{
		Type:  api.TypeSnapshot,
		State: api.StateView{Running: true, LevelID: 1, PlayerID: "player"},
		Player: &api.PlayerView{
			Equipped:  []string{"mono_slash", "plasma_bolt", "nano_heal", "", "", ""},
			Cooldowns: map[string]float64{},
		},
		Entities: entities,
	}
}

func player(x, hp float64) api.EntityView {
	return api.EntityView{ID: "player", Type: "PLAYER", X: x, W: 32, H: 48, VX: 5, OnGround: true,
		Stats: &api.StatsView{Health: hp, MaxHealth: 100}}
}

func enemy(id string, x float64) api.EntityView {
	return api.EntityView{ID: id, Type: "ENEMY", X: x, W: 32, H: 40,
		Stats: &api.StatsView{Health: 30, MaxHealth: 30}}
}

func actions(msgs []api.ClientMessage) []string {
	var out []string
	for _, m := range msgs {
		if m.Type == api.MessageControl {
			out = append(out, m.Command)
			continue
		}
		if m.Pressed {
			out = append(out, "+"+m.Action)
		} else {
			out = append(out, "-"+m.Action)
		}
	}
	return out
}

func TestDecide_Control(t *testing.T) {
	b := newBot()

	msgs := b.Decide(api.Snapshot{})
	assert.Equal(t, []string{"start"}, actions(msgs))
	// Повторно ту же команду не шлем
	assert.Empty(t, b.Decide(api.Snapshot{}))

	over := running()
	over.State.GameOver = true
	assert.Equal(t, []string{"restart"}, actions(b.Decide(over)))

	done := running()
	done.State.LevelComplete = true
	done.State.LevelID = 4
	msgs = b.Decide(done)
	require.Len(t, msgs, 1)
	assert.Equal(t, api.ControlLoad, msgs[0].Command)
	assert.Equal(t, 5, msgs[0].Level)

	last := running()
	last.State.LevelComplete = true
	last.State.LevelID = MaxLevel
	assert.Empty(t, b.Decide(last))
}

func TestDecide_Combat(t *testing.T) {
	tests := []struct {
		name     string
		snap     api.Snapshot
		expected []string
	}{
		{
			name:     "No enemies walks right",
			snap:     running(player(100, 100)),
			expected: []string{"+move_right"},
		},
		{
			name:     "Enemy in melee reach on the left",
			snap:     running(player(100, 100), enemy("e1", 60)),
			expected: []string{"+move_left", "-move_left", "+attack", "-attack"},
		},
		{
			name:     "Enemy at range gets a bolt",
			snap:     running(player(100, 100), enemy("e1", 400)),
			expected: []string{"+move_right", "+ability_1", "-ability_1"},
		},
		{
			name:     "Low health heals first",
			snap:     running(player(100, 20)),
			expected: []string{"+ability_2", "-ability_2", "+move_right"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBot()
			assert.Equal(t, tt.expected, actions(b.Decide(tt.snap)))
		})
	}
}

func TestDecide_HeldKeysAreNotRepeated(t *testing.T) {
	b := newBot()
	snap := running(player(100, 100))
	snap.Entities[0].VX = 5

	assert.Equal(t, []string{"+move_right"}, actions(b.Decide(snap)))
	assert.Empty(t, b.Decide(snap))

	// Стоим у стены - прыжок
	snap.Entities[0].VX = 0
	assert.Equal(t, []string{"+jump", "-jump"}, actions(b.Decide(snap)))
}

func TestDecide_BoltOnCooldown(t *testing.T) {
	b := newBot()
	snap := running(player(100, 100), enemy("e1", 400))
	snap.Player.Cooldowns["plasma_bolt"] = 0.5
	assert.Equal(t, []string{"+move_right"}, actions(b.Decide(snap)))
}

func TestBot_SkipsForeignProtocol(t *testing.T) {
	game := &nopGame{}
	b := NewBot(game, network.NewBroadcaster())

	frame := func(protocol int) network.Frame {
		snap := api.Snapshot{Type: api.TypeSnapshot, Protocol: protocol}
		data, err := network.EncodeSnapshot(&snap)
		require.NoError(t, err)
		return network.Frame{Binary: true, Data: data}
	}

	assert.False(t, b.onFrame(frame(version.Protocol+1)))
	assert.False(t, b.onFrame(network.Frame{Data: []byte(`{"type":"EVENT"}`)}))
	assert.False(t, b.onFrame(network.Frame{Binary: true, Data: []byte{0xc1}}))
	assert.Zero(t, game.n)

	// Совместимый кадр с остановленным матчем - команда start
	assert.True(t, b.onFrame(frame(version.Protocol)))
	assert.Equal(t, 1, game.n)
}

func TestBot_DrivesManager(t *testing.T) {
	cfg := engine.NewConfig()
	cfg.Seed = 42
	catalog, err := abilities.DefaultCatalog()
	require.NoError(t, err)
	m := engine.NewManager(cfg, catalog)

	hub := network.NewBroadcaster()
	pub := network.NewPublisher(hub, 0)
	pub.Attach(m)

	b := NewBot(m, hub)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	// Бот сам стартует матч по первому снапшоту
	require.Eventually(t, func() bool {
		m.Update(1.0 / 60)
		pub.Publish(m.Snapshot())
		return m.State().Running
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.False(t, hub.HasSubscriber(b.ID))
}
