package network

import (
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine"
	"new-haven-server/internal/version"
	"new-haven-server/pkg/api"
	"new-haven-server/pkg/logger"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultSnapshotRate - снапшотов в секунду
const DefaultSnapshotRate = 30

// Publisher превращает кадры менеджера в рассылку.
// OnFrame и OnEvent вызываются с горутины цикла, Latest - с любой.
type Publisher struct {
	hub      *Broadcaster
	interval time.Duration
	now      func() time.Time
	last     time.Time

	mu     sync.RWMutex
	latest *api.Snapshot

	log *logrus.Entry
}

func NewPublisher(hub *Broadcaster, rate int) *Publisher {
	if rate <= 0 {
		rate = DefaultSnapshotRate
	}
	return &Publisher{
		hub:      hub,
		interval: time.Second / time.Duration(rate),
		now:      time.Now,
		log:      logger.For("publisher"),
	}
}

// Attach вешает публикацию на хук кадра и на шину событий
func (p *Publisher) Attach(m *engine.Manager) {
	m.OnFrame(p.OnFrame)
	m.Events().SubscribeAll(p.OnEvent)
}

// OnFrame - хук кадра: не чаще одного снапшота за интервал
func (p *Publisher) OnFrame(m *engine.Manager) {
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return
	}
	p.last = now
	p.Publish(m.Snapshot())
}

// Publish запоминает снапшот и рассылает его подписчикам
func (p *Publisher) Publish(snap api.Snapshot) {
	snap.Protocol = version.Protocol

	p.mu.Lock()
	p.latest = &snap
	p.mu.Unlock()

	if p.hub.SubscriberCount() == 0 {
		return
	}
	data, err := EncodeSnapshot(&snap)
	if err != nil {
		p.log.WithError(err).Error("Snapshot dropped")
		return
	}
	p.hub.Broadcast(Frame{Binary: true, Data: data})
}

// OnEvent - слушатель шины
func (p *Publisher) OnEvent(ev domain.Event) {
	if p.hub.SubscriberCount() == 0 {
		return
	}
	f, err := EventFrame(ev)
	if err != nil {
		p.log.WithError(err).Warn("Event dropped")
		return
	}
	p.hub.Broadcast(f)
}

// Latest - последний опубликованный снапшот (debug-роуты)
func (p *Publisher) Latest() (api.Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.latest == nil {
		return api.Snapshot{}, false
	}
	return *p.latest, true
}
