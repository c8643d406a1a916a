package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	TopicNewBlock          = "chain_newBlock"
	TopicDeleteBlock       = "chain_deleteBlock"
	TopicValidatorsChanged = "chain_validatorsChanged"
)

// SessionConfig tunes reconnects of a Session.
type SessionConfig struct {
	URL              string
	Topics           []string
	ReconnectBackoff time.Duration
	MaxBackoff       time.Duration
}

// Session keeps one live connection to the node, redialing and resubscribing after
// disconnects. Calls made while disconnected wait for the next connection.
type Session struct {
	cfg     SessionConfig
	notify  func(Notification)
	metrics Metrics
	logger  *zap.Logger

	mu    sync.Mutex
	conn  *Conn
	ready chan struct{}
}

// NewSession constructs a Session. Run must be started before calls can succeed.
func NewSession(cfg SessionConfig, notify func(Notification), metrics Metrics, logger *zap.Logger) *Session {
	if cfg.ReconnectBackoff <= 0 {
		cfg.ReconnectBackoff = time.Second
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 30 * time.Second
	}
	return &Session{
		cfg:     cfg,
		notify:  notify,
		metrics: metrics,
		logger:  logger.Named("node_session"),
		ready:   make(chan struct{}),
	}
}

// Run maintains the connection until ctx is canceled.
func (s *Session) Run(ctx context.Context) error {
	for {
		conn, err := s.connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		s.mu.Lock()
		s.conn = conn
		close(s.ready)
		s.mu.Unlock()
		s.logger.Info("connected to node", zap.String("url", s.cfg.URL))

		select {
		case <-ctx.Done():
			s.disconnect()
			return nil
		case <-conn.Done():
			s.logger.Warn("node connection lost", zap.Error(conn.Err()))
			s.disconnect()
		}
	}
}

// Call performs a JSON-RPC call on the current connection.
func (s *Session) Call(ctx context.Context, method string, params, result any) error {
	s.mu.Lock()
	ready := s.ready
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ready:
	}

	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return ErrClosed
	}
	return conn.Call(ctx, method, params, result)
}

func (s *Session) connect(ctx context.Context) (*Conn, error) {
	backoff, err := retry.NewExponential(s.cfg.ReconnectBackoff)
	if err != nil {
		return nil, fmt.Errorf("build backoff: %w", err)
	}
	backoff = retry.WithCappedDuration(s.cfg.MaxBackoff, backoff)

	var conn *Conn
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		c, err := Dial(ctx, s.cfg.URL, s.notify, s.logger)
		if err == nil && len(s.cfg.Topics) > 0 {
			err = c.Call(ctx, "subscribe", map[string][]string{"topics": s.cfg.Topics}, nil)
			if err != nil {
				_ = c.Close()
				err = fmt.Errorf("subscribe: %w", err)
			}
		}
		s.metrics.ObserveReconnect(err)
		if err != nil {
			s.logger.Warn("node connect failed", zap.Error(err))
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (s *Session) disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = nil
	s.ready = make(chan struct{})
}
