// Package application contains use-case orchestration services.
package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tfccofficial/tfcc/internal/domain/port/driven"
)

// StartupConnector makes the single database connection attempt performed at
// process start. The outcome is only logged: nothing waits on it, it is never
// retried, and the health endpoint does not consult it.
type StartupConnector struct {
	connector driven.DatabaseConnector
	timeout   time.Duration
	logger    *slog.Logger

	once sync.Once
	done chan struct{}

	mu sync.Mutex
	db driven.Database
}

// NewStartupConnector creates a StartupConnector. A zero timeout leaves the
// attempt bounded only by the context passed to Start.
func NewStartupConnector(connector driven.DatabaseConnector, timeout time.Duration, logger *slog.Logger) *StartupConnector {
	return &StartupConnector{
		connector: connector,
		timeout:   timeout,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start launches the connection attempt in the background and returns
// immediately. Calls after the first are no-ops.
func (s *StartupConnector) Start(ctx context.Context) {
	s.once.Do(func() {
		go s.connect(ctx)
	})
}

func (s *StartupConnector) connect(ctx context.Context) {
	defer close(s.done)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	db, err := s.connector.Connect(ctx)
	if err != nil {
		s.logger.Error("database connection failed",
			"error", err,
			"duration", time.Since(start).Round(time.Millisecond),
		)
		return
	}

	s.mu.Lock()
	s.db = db
	s.mu.Unlock()

	s.logger.Info("database connected", "duration", time.Since(start).Round(time.Millisecond))
}

// Close waits for a started attempt to finish and disconnects the database if
// the attempt succeeded. It returns ctx.Err() if ctx ends first. Close on a
// connector that was never started returns nil immediately.
func (s *StartupConnector) Close(ctx context.Context) error {
	started := true
	s.once.Do(func() {
		started = false
		close(s.done)
	})
	if !started {
		return nil
	}

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.mu.Lock()
	db := s.db
	s.db = nil
	s.mu.Unlock()

	if db == nil {
		return nil
	}

	return db.Disconnect(ctx)
}
