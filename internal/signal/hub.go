// Package signal fans out indexing notifications to in-process observers. Delivery is best
// effort: a subscriber whose buffer is full misses the signal.
package signal

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
)

// Name identifies a signal kind.
type Name string

var (
	NewBlock    Name = "newBlock"
	DeleteBlock Name = "deleteBlock"
	NewRound    Name = "newRound"
)

// Signal is one notification. Block is set for NewBlock, Header for DeleteBlock.
type Signal struct {
	Name   Name
	Block  model.Block
	Header model.BlockHeader
}

// Subscription receives the signals it subscribed to on C until it is closed.
type Subscription struct {
	C <-chan Signal

	ch    chan Signal
	names map[Name]struct{}
}

// Hub is a non-blocking publish/subscribe point. It is safe for concurrent use.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}

	emitted atomic.Int64
	dropped atomic.Int64

	metrics Metrics
	logger  *zap.Logger
}

// NewHub constructs an empty Hub.
func NewHub(metrics Metrics, logger *zap.Logger) *Hub {
	return &Hub{
		subs:    make(map[*Subscription]struct{}),
		metrics: metrics,
		logger:  logger.Named("signal"),
	}
}

// Subscribe registers a subscriber for names with a buffer of size signals.
func (h *Hub) Subscribe(size int, names ...Name) *Subscription {
	ch := make(chan Signal, size)
	sub := &Subscription{C: ch, ch: ch, names: make(map[Name]struct{}, len(names))}
	for _, n := range names {
		sub.names[n] = struct{}{}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes sub and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
}

// Emit delivers s to every interested subscriber without blocking.
func (h *Hub) Emit(s Signal) {
	h.emitted.Inc()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if _, ok := sub.names[s.Name]; !ok {
			continue
		}
		select {
		case sub.ch <- s:
			h.metrics.ObserveDelivery(string(s.Name), true)
		default:
			h.dropped.Inc()
			h.metrics.ObserveDelivery(string(s.Name), false)
			h.logger.Debug("signal dropped", zap.String("signal", string(s.Name)))
		}
	}
}

// Counts returns the number of emitted signals and of deliveries dropped so far.
func (h *Hub) Counts() (emitted, dropped int64) {
	return h.emitted.Load(), h.dropped.Load()
}
