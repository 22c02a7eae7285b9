package agent

import (
	"context"
	"math"
	"new-haven-server/internal/engine"
	"new-haven-server/internal/network"
	"new-haven-server/internal/version"
	"new-haven-server/pkg/api"
	"new-haven-server/pkg/logger"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Пороги решений автопилота
const (
	MeleeReach     = 60.0
	BoltReach      = 400.0
	LowHealthRatio = 0.35
	MaxLevel       = 100
)

// Submitter - куда бот отправляет команды (менеджер матча)
type Submitter interface {
	Submit(cmd engine.Command) bool
}

// Bot - автопилот игрока (Headless Agent).
// Подключается к хабу так же, как WebSocket-клиент: получает снапшоты
// и отвечает теми же сообщениями, что прислал бы живой игрок.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> слушает Inbox до отмены контекста.
//  3. На каждый бинарный кадр Decide превращает снапшот в сообщения клиента.
type Bot struct {
	ID    string
	Game  Submitter
	Hub   *network.Broadcaster
	Inbox <-chan network.Frame

	held        map[string]bool
	lastControl string
	log         *logrus.Entry
}

func NewBot(game Submitter, hub *network.Broadcaster) *Bot {
	id := "bot_" + uuid.NewString()
	b := &Bot{
		ID:    id,
		Game:  game,
		Hub:   hub,
		Inbox: hub.Register(id),
		held:  make(map[string]bool),
		log:   logger.For("bot").WithField("bot_id", id),
	}
	b.log.Info("Agent created")
	return b
}

// Run - цикл жизни бота. Возвращает nil после отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	defer b.Hub.Unregister(b.ID)

	for {
		select {
		case <-ctx.Done():
			b.log.Info("Agent shut down")
			return nil
		case frame, ok := <-b.Inbox:
			if !ok {
				return nil
			}
			b.onFrame(frame)
		}
	}
}

// onFrame - один кадр из хаба. Возвращает false, если кадр пропущен.
func (b *Bot) onFrame(frame network.Frame) bool {
	if !frame.Binary {
		return false // события и ошибки боту не нужны
	}
	snap, err := network.DecodeSnapshot(frame.Data)
	if err != nil {
		b.log.WithError(err).Warn("Bad snapshot frame")
		return false
	}
	if !version.Compatible(snap.Protocol) {
		b.log.WithFields(logrus.Fields{
			"protocol": snap.Protocol,
			"expected": version.Protocol,
		}).Warn("Snapshot protocol mismatch")
		return false
	}
	b.send(b.Decide(snap))
	return true
}

func (b *Bot) send(msgs []api.ClientMessage) {
	for _, msg := range msgs {
		cmd, err := engine.CommandFromMessage(msg)
		if err != nil {
			b.log.WithError(err).WithField("action", msg.Action).Error("Bot produced invalid message")
			continue
		}
		if !b.Game.Submit(cmd) {
			b.log.Debug("Command dropped")
		}
	}
}

// Decide - мозг бота: снапшот -> сообщения клиента.
// Держит состояние зажатых клавиш, чтобы не слать одно нажатие на каждый кадр.
func (b *Bot) Decide(snap api.Snapshot) []api.ClientMessage {
	var out []api.ClientMessage
	st := snap.State

	switch {
	case !st.Running:
		return b.control(out, api.ControlStart, 0)
	case st.GameOver:
		return b.control(b.releaseAll(out), api.ControlRestart, 0)
	case st.LevelComplete:
		if st.LevelID >= MaxLevel {
			return b.releaseAll(out)
		}
		return b.control(b.releaseAll(out), api.ControlLoad, st.LevelID+1)
	case st.Paused:
		return out
	}
	b.lastControl = ""

	me := findEntity(snap, st.PlayerID)
	if me == nil || me.Stats == nil || me.Stats.Dead {
		return b.releaseAll(out)
	}
	target := nearestEnemy(snap, me)

	// Лечимся первым делом
	if me.Stats.MaxHealth > 0 && me.Stats.Health/me.Stats.MaxHealth < LowHealthRatio {
		if slot, ok := b.readySlot(snap, "nano_heal"); ok {
			out = tap(out, "ability_"+strconv.Itoa(slot))
		}
	}

	dir := 1.0
	dist := math.Inf(1)
	if target != nil {
		dx := centerX(target) - centerX(me)
		dist = math.Abs(dx)
		if dx < 0 {
			dir = -1
		}
	}

	switch {
	case dist <= MeleeReach:
		// Разворачиваемся к цели и бьем с места
		out = b.hold(out, dir)
		out = b.hold(out, 0)
		out = tap(out, "attack")
	case dist <= BoltReach:
		out = b.hold(out, dir)
		if slot, ok := b.readySlot(snap, "plasma_bolt"); ok {
			out = tap(out, "ability_"+strconv.Itoa(slot))
		}
	default:
		out = b.hold(out, dir)
		// Уперлись в стену - прыгаем
		if me.OnGround && me.VX == 0 {
			out = tap(out, "jump")
		}
	}
	return out
}

func (b *Bot) control(out []api.ClientMessage, command string, level int) []api.ClientMessage {
	key := command + strconv.Itoa(level)
	if b.lastControl == key {
		return out
	}
	b.lastControl = key
	return append(out, api.ClientMessage{Type: api.MessageControl, Command: command, Level: level})
}

// hold зажимает клавишу движения в сторону dir (0 - отпустить обе)
func (b *Bot) hold(out []api.ClientMessage, dir float64) []api.ClientMessage {
	out = b.set(out, "move_right", dir > 0)
	return b.set(out, "move_left", dir < 0)
}

func (b *Bot) set(out []api.ClientMessage, action string, pressed bool) []api.ClientMessage {
	if b.held[action] == pressed {
		return out
	}
	b.held[action] = pressed
	return append(out, api.ClientMessage{Type: api.MessageInput, Action: action, Pressed: pressed})
}

func (b *Bot) releaseAll(out []api.ClientMessage) []api.ClientMessage {
	return b.hold(out, 0)
}

// readySlot - слот экипированной способности без перезарядки
func (b *Bot) readySlot(snap api.Snapshot, abilityID string) (int, bool) {
	if snap.Player == nil {
		return 0, false
	}
	if snap.Player.Cooldowns[abilityID] > 0 {
		return 0, false
	}
	for i, id := range snap.Player.Equipped {
		if id == abilityID {
			return i, true
		}
	}
	return 0, false
}

func tap(out []api.ClientMessage, action string) []api.ClientMessage {
	return append(out,
		api.ClientMessage{Type: api.MessageInput, Action: action, Pressed: true},
		api.ClientMessage{Type: api.MessageInput, Action: action, Pressed: false},
	)
}

func findEntity(snap api.Snapshot, id string) *api.EntityView {
	for i := range snap.Entities {
		if snap.Entities[i].ID == id {
			return &snap.Entities[i]
		}
	}
	return nil
}

func nearestEnemy(snap api.Snapshot, me *api.EntityView) *api.EntityView {
	var best *api.EntityView
	bestDist := math.Inf(1)
	for i := range snap.Entities {
		e := &snap.Entities[i]
		if e.Type != "ENEMY" && e.Type != "BOSS" {
			continue
		}
		if e.Stats == nil || e.Stats.Dead {
			continue
		}
		if d := math.Abs(centerX(e) - centerX(me)); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func centerX(e *api.EntityView) float64 {
	return e.X + e.W/2
}
