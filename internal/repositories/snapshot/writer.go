package snapshot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
)

const defaultWriteTimeout = 5 * time.Second

// WriterConfig holds the configuration for an AsyncWriter
type WriterConfig struct {
	Repository Repository
	Key        string
	// WriteTimeout bounds each Save call; zero means five seconds
	WriteTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *WriterConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	errors.ValidateRequired("Key", c.Key, vb)
	if c.WriteTimeout < 0 {
		vb.Field("WriteTimeout", "must not be negative")
	}
	return vb.Build()
}

// AsyncWriter saves roster snapshots on a background goroutine. Persist never
// blocks; when several snapshots arrive before the goroutine gets to them
// only the newest is written. Save failures are logged and dropped.
type AsyncWriter struct {
	repo    Repository
	key     string
	timeout time.Duration

	mu      sync.Mutex
	pending *entities.Roster
	queued  uint64
	written uint64
	changed chan struct{}
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewAsyncWriter starts the writer goroutine. Call Close to stop it.
func NewAsyncWriter(cfg *WriterConfig) (*AsyncWriter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.WriteTimeout
	if timeout == 0 {
		timeout = defaultWriteTimeout
	}

	w := &AsyncWriter{
		repo:    cfg.Repository,
		key:     cfg.Key,
		timeout: timeout,
		changed: make(chan struct{}),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()

	return w, nil
}

// Persist queues state for writing. The writer keeps a reference, so callers
// must not mutate state afterwards.
func (w *AsyncWriter) Persist(state *entities.Roster) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		slog.Warn("dropping hero state queued after writer closed", "key", w.key)
		return
	}
	w.pending = state
	w.queued++
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush waits until everything queued before the call has been written
func (w *AsyncWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.queued
	w.mu.Unlock()

	for {
		w.mu.Lock()
		if w.written >= target {
			w.mu.Unlock()
			return nil
		}
		changed := w.changed
		w.mu.Unlock()

		select {
		case <-changed:
		case <-w.done:
			return w.flushAfterStop(target)
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "flush interrupted")
		}
	}
}

func (w *AsyncWriter) flushAfterStop(target uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written >= target {
		return nil
	}
	return errors.FailedPrecondition("writer stopped before flush completed")
}

// Close writes any pending state and stops the goroutine. Calling it more
// than once is safe.
func (w *AsyncWriter) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stop)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "close interrupted before pending hero state was written")
	}
}

func (w *AsyncWriter) run() {
	defer close(w.done)

	for {
		select {
		case <-w.wake:
			w.writePending()
		case <-w.stop:
			w.writePending()
			return
		}
	}
}

func (w *AsyncWriter) writePending() {
	w.mu.Lock()
	state := w.pending
	target := w.queued
	w.pending = nil
	w.mu.Unlock()

	if state == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	out, err := w.repo.Save(ctx, SaveInput{Key: w.key, State: state})
	cancel()

	if err != nil {
		slog.Error("failed to persist hero state",
			"key", w.key,
			"error", err.Error())
	} else {
		slog.Debug("persisted hero state",
			"key", w.key,
			"hero_count", len(state.Heroes),
			"bytes", out.Bytes)
	}

	w.mu.Lock()
	w.written = target
	close(w.changed)
	w.changed = make(chan struct{})
	w.mu.Unlock()
}
