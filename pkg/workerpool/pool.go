package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	DefaultWorkers        = 1
	DefaultQueueSize      = 1024
	DefaultAttempts       = 5
	DefaultAttemptTimeout = 5 * time.Minute
	DefaultBackoff        = time.Second
	DefaultMaxBackoff     = 30 * time.Second
)

var (
	// ErrStopped is returned by Submit once the pool no longer accepts jobs.
	ErrStopped = errors.New("worker pool stopped")
)

type (
	// Config tunes a Pool. Zero values fall back to the package defaults.
	Config struct {
		Name           string
		Workers        int
		QueueSize      int
		Attempts       uint64
		AttemptTimeout time.Duration
		Backoff        time.Duration
		MaxBackoff     time.Duration
	}

	// Stats is a snapshot of the pool counters.
	Stats struct {
		Pending   int64
		Active    int64
		Completed int64
		Failed    int64
	}
)

type job[T any] struct {
	id      uuid.UUID
	key     string
	payload T
}

type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying; the job fails on the current attempt.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err: err}
}

// Pool is a persistent queue with a fixed number of workers. Every job gets up to
// Config.Attempts attempts, each bounded by Config.AttemptTimeout, with exponential
// back-off in between. Jobs submitted with a key already queued are coalesced.
type Pool[T any] struct {
	cfg     Config
	handler Handler[T]
	metrics Metrics
	logger  *zap.Logger

	queue     chan job[T]
	onFailure func(payload T, err error)

	mu     sync.Mutex
	queued map[string]struct{}

	stopped   atomic.Bool
	pending   atomic.Int64
	active    atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// New constructs a Pool. Call Run to start processing.
func New[T any](cfg Config, handler Handler[T], metrics Metrics, logger *zap.Logger) *Pool[T] {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = DefaultAttempts
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = DefaultAttemptTimeout
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = DefaultMaxBackoff
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pool[T]{
		cfg:     cfg,
		handler: handler,
		metrics: metrics,
		logger:  logger.Named("workerpool").With(zap.String("pool", cfg.Name)),
		queue:   make(chan job[T], cfg.QueueSize),
		queued:  make(map[string]struct{}),
	}
}

// Name returns the configured pool name.
func (p *Pool[T]) Name() string {
	return p.cfg.Name
}

// OnFailure registers fn to be called with every job that exhausted its attempts. It must be
// called before Run.
func (p *Pool[T]) OnFailure(fn func(payload T, err error)) {
	p.onFailure = fn
}

// Submit enqueues a job. It returns false without error when a job with the same non-empty
// key is still waiting in the queue. Submit blocks while the queue is full.
func (p *Pool[T]) Submit(ctx context.Context, key string, payload T) (bool, error) {
	if p.stopped.Load() {
		return false, ErrStopped
	}

	if key != "" {
		p.mu.Lock()
		if _, ok := p.queued[key]; ok {
			p.mu.Unlock()
			return false, nil
		}
		p.queued[key] = struct{}{}
		p.mu.Unlock()
	}

	// pending counts the job before a worker can receive and decrement it
	j := job[T]{id: uuid.New(), key: key, payload: payload}
	p.metrics.SetPending(p.pending.Inc())
	select {
	case p.queue <- j:
		return true, nil
	case <-ctx.Done():
		p.metrics.SetPending(p.pending.Dec())
		p.release(key)
		return false, ctx.Err()
	}
}

// Run starts the workers and blocks until ctx is canceled and every in-flight job has returned.
// Jobs still queued at that point are discarded.
func (p *Pool[T]) Run(ctx context.Context) error {
	p.logger.Info("worker pool started", zap.Int("workers", p.cfg.Workers))

	var wg sync.WaitGroup
	for i := 0; i < p.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.work(ctx)
		}()
	}

	<-ctx.Done()
	p.stopped.Store(true)
	wg.Wait()

	p.logger.Info("worker pool stopped", zap.Int64("discarded", p.pending.Load()))
	return nil
}

// Stats returns the current counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Pending:   p.pending.Load(),
		Active:    p.active.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
	}
}

func (p *Pool[T]) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.queue:
			p.metrics.SetPending(p.pending.Dec())
			p.release(j.key)
			p.execute(ctx, j)
		}
	}
}

func (p *Pool[T]) execute(ctx context.Context, j job[T]) {
	p.active.Inc()
	defer p.active.Dec()

	err := p.attempt(ctx, j)
	p.metrics.ObserveJob(err)
	if err == nil {
		p.completed.Inc()
		return
	}
	if ctx.Err() != nil {
		return
	}

	p.failed.Inc()
	p.logger.Error("job failed",
		zap.String("job_id", j.id.String()),
		zap.String("key", j.key),
		zap.Error(err),
	)
	if p.onFailure != nil {
		p.onFailure(j.payload, err)
	}
}

func (p *Pool[T]) attempt(ctx context.Context, j job[T]) error {
	backoff, err := retry.NewExponential(p.cfg.Backoff)
	if err != nil {
		return fmt.Errorf("build backoff: %w", err)
	}
	backoff = retry.WithCappedDuration(p.cfg.MaxBackoff, backoff)
	backoff = retry.WithMaxRetries(p.cfg.Attempts-1, backoff)

	var attempt uint64
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, p.cfg.AttemptTimeout)
		defer cancel()

		started := time.Now()
		err := p.handler(attemptCtx, j.payload)
		p.metrics.ObserveAttempt(err, started)
		if err == nil {
			return nil
		}

		var perm permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		p.logger.Warn("job attempt failed",
			zap.String("job_id", j.id.String()),
			zap.String("key", j.key),
			zap.Uint64("attempt", attempt),
			zap.Error(err),
		)
		return retry.RetryableError(err)
	})
}

func (p *Pool[T]) release(key string) {
	if key == "" {
		return
	}
	p.mu.Lock()
	delete(p.queued, key)
	p.mu.Unlock()
}
