package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/usecases"
)

// DefaultRefreshInterval is how often the credential is regenerated.
const DefaultRefreshInterval = 1800 * time.Second

// RefreshState is the state of the refresh scheduler.
type RefreshState int32

const (
	// RefreshIdle means the scheduler is waiting for the next cycle.
	RefreshIdle RefreshState = iota
	// RefreshRefreshing means a refresh attempt is in flight.
	RefreshRefreshing
)

// String returns the string representation of the state.
func (s RefreshState) String() string {
	switch s {
	case RefreshIdle:
		return "idle"
	case RefreshRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// RefreshScheduler periodically regenerates the music service credential.
// It only interacts with the foreground through the credential store, and a
// failing or panicking attempt never stops the loop or alters the stored credential.
type RefreshScheduler struct {
	credentials *usecases.CredentialService
	interval    time.Duration

	state atomic.Int32

	mu          sync.RWMutex
	lastRefresh time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

// NewRefreshScheduler creates a new RefreshScheduler.
// A non-positive interval falls back to DefaultRefreshInterval.
func NewRefreshScheduler(
	credentials *usecases.CredentialService,
	interval time.Duration,
) *RefreshScheduler {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &RefreshScheduler{
		credentials: credentials,
		interval:    interval,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// RefreshNow performs one refresh attempt synchronously.
// It is used for the eager refresh before the foreground starts serving.
func (s *RefreshScheduler) RefreshNow(ctx context.Context) error {
	return s.attempt(ctx)
}

// Start launches the background refresh loop.
func (s *RefreshScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	s.wg.Add(1)
	go s.run()

	slog.Debug("started credential refresh scheduler", "interval", s.interval)
}

// Stop ends the refresh loop and waits for it to exit.
func (s *RefreshScheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

// State returns the current scheduler state.
func (s *RefreshScheduler) State() RefreshState {
	return RefreshState(s.state.Load())
}

// LastRefresh returns the time of the last successful refresh.
func (s *RefreshScheduler) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}

func (s *RefreshScheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if err := s.attempt(s.ctx); err != nil {
				slog.Error(
					"failed to refresh music service credential, keeping previous one",
					"next_attempt_in", s.interval,
					"error", err,
				)
			}
		}
	}
}

// attempt runs a single refresh, converting a panic into an error.
func (s *RefreshScheduler) attempt(ctx context.Context) (err error) {
	s.state.Store(int32(RefreshRefreshing))
	defer s.state.Store(int32(RefreshIdle))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", usecases.ErrCredentialRefreshFailed, r)
		}
	}()

	cred, err := s.credentials.Refresh(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.lastRefresh = time.Now()
	s.mu.Unlock()

	slog.Info("refreshed music service credential", "credential", cred.String())

	return nil
}
