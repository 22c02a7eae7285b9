package network

import (
	"new-haven-server/pkg/logger"
	"sync"
)

// SendBuffer - емкость личного канала клиента
const SendBuffer = 64

// Frame - готовое к отправке сообщение. Binary - msgpack-снапшот, иначе JSON-текст.
type Frame struct {
	Binary bool
	Data   []byte
}

// Broadcaster занимается только рассылкой кадров подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ClientID -> Личный канал
	subscribers map[string]chan Frame
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan Frame),
	}
}

// Register создает личный канал для клиента (WebSocket-сессия или бот)
func (b *Broadcaster) Register(clientID string) <-chan Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[clientID]; ok {
		close(old)
	}

	ch := make(chan Frame, SendBuffer)
	b.subscribers[clientID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[clientID]; ok {
		close(ch)
		delete(b.subscribers, clientID)
	}
}

// SendTo отправляет кадр конкретному клиенту (Unicast)
func (b *Broadcaster) SendTo(clientID string, f Frame) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[clientID]
	if !ok {
		return false
	}
	select {
	case ch <- f:
		return true
	default:
		logger.Log.WithField("client_id", clientID).Debug("Hub: channel full, frame dropped")
		return false
	}
}

// Broadcast отправляет всем. Медленные клиенты пропускают кадр.
func (b *Broadcaster) Broadcast(f Frame) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sent := 0
	for _, ch := range b.subscribers {
		select {
		case ch <- f:
			sent++
		default:
		}
	}
	return sent
}

// HasSubscriber проверяет, подключен ли клиент
func (b *Broadcaster) HasSubscriber(clientID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[clientID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
