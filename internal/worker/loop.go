package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TickFunc is one unit of background work. Errors are logged; the loop keeps going.
type TickFunc func(ctx context.Context) error

// Loop runs a TickFunc on a fixed interval between Start and Stop.
type Loop struct {
	name     string
	interval time.Duration
	tick     TickFunc
	timeout  time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewLoop(name string, interval time.Duration, tick TickFunc, logger *slog.Logger) *Loop {
	return &Loop{
		name:     name,
		interval: interval,
		tick:     tick,
		timeout:  interval * 10,
		logger:   logger.With(slog.String("worker", name)),
	}
}

func (l *Loop) Name() string { return l.name }

func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan struct{})

	l.logger.Info("Worker started", slog.Duration("interval", l.interval))
	go l.run(ctx, l.done)
}

// Stop cancels the running tick and waits for the loop to exit or ctx to expire.
func (l *Loop) Stop(ctx context.Context) error {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		l.logger.Info("Worker stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.runOnce(ctx)
		}
	}
}

func (l *Loop) runOnce(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	if err := l.tick(tickCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		l.logger.Error("Worker tick failed",
			slog.Any("error", err),
			slog.Duration("duration", time.Since(start)))
	}
}
