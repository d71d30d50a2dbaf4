package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/calema/findash_backend/internal/platform/metrics"
	"golang.org/x/sync/errgroup"
)

// Snapshot is a point-in-time copy of every collection of one dashboard.
// Readers get the whole set from the same load, never a torn mix of old
// transactions and new budgets.
type Snapshot struct {
	DashboardID  string
	Transactions []domain.Transaction
	Goals        []domain.Goal
	Budgets      []domain.Budget
	Categories   []domain.Category
	Version      uint64 // bumped on every successful refresh
	LoadedAt     time.Time
}

// Session is a live view of one dashboard. It owns two timers: a refresh
// ticker that reloads the snapshot, and a sweep ticker that drives the
// automatic installment progression. Both fire inside a single goroutine,
// so a sweep never interleaves with a refresh; each event runs to
// completion before the next is taken.
type Session struct {
	dashboardID string
	repos       *portsrepo.RepositoryProvider
	sweeper     portssvc.InstallmentSweeperSvc

	refreshInterval time.Duration
	sweepInterval   time.Duration
	logger          *slog.Logger

	mu   sync.RWMutex
	snap Snapshot

	commands  chan command
	closeOnce sync.Once
	closed    chan struct{}
}

// NewSession creates a session for one dashboard. Call Run to start the
// timers; the session is usable (via Refresh and Snapshot) without Run, which
// keeps tests synchronous.
func NewSession(dashboardID string, repos *portsrepo.RepositoryProvider, sweeper portssvc.InstallmentSweeperSvc, refreshInterval, sweepInterval time.Duration, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		dashboardID:     dashboardID,
		repos:           repos,
		sweeper:         sweeper,
		refreshInterval: refreshInterval,
		sweepInterval:   sweepInterval,
		logger:          logger.With(slog.String("dashboard_id", dashboardID)),
		snap:            Snapshot{DashboardID: dashboardID},
		commands:        make(chan command),
		closed:          make(chan struct{}),
	}
}

// Snapshot returns the current snapshot. The slices are shared with the
// session's copy and must be treated as read-only.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Refresh reloads every collection of the dashboard and swaps the snapshot
// atomically. The four loads run concurrently; one failure aborts the whole
// refresh and keeps the previous snapshot.
func (s *Session) Refresh(ctx context.Context) error {
	var (
		txns       []domain.Transaction
		goals      []domain.Goal
		budgets    []domain.Budget
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = s.repos.TransactionRepo.ListByDashboard(gctx, s.dashboardID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.repos.GoalRepo.ListByDashboard(gctx, s.dashboardID)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.repos.BudgetRepo.ListByDashboard(gctx, s.dashboardID)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.repos.CategoryRepo.ListByDashboard(gctx, s.dashboardID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = Snapshot{
		DashboardID:  s.dashboardID,
		Transactions: txns,
		Goals:        goals,
		Budgets:      budgets,
		Categories:   categories,
		Version:      s.snap.Version + 1,
		LoadedAt:     time.Now(),
	}
	s.mu.Unlock()

	metrics.SessionRefreshes.Inc()
	return nil
}

// Run drives the session until ctx is cancelled or Close is called. Commands,
// refresh ticks and sweep ticks are serialized through one select loop.
func (s *Session) Run(ctx context.Context) {
	ctx = middleware.WithLogger(ctx, s.logger)

	refreshTicker := time.NewTicker(s.refreshInterval)
	defer refreshTicker.Stop()
	sweepTicker := time.NewTicker(s.sweepInterval)
	defer sweepTicker.Stop()

	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("Initial snapshot load failed", slog.String("error", err.Error()))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.closed:
			return
		case cmd := <-s.commands:
			cmd.done <- cmd.fn(ctx)
		case <-refreshTicker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn("Snapshot refresh failed", slog.String("error", err.Error()))
			}
		case <-sweepTicker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Session) sweep(ctx context.Context) {
	advanced, err := s.sweeper.SweepDashboard(ctx, s.dashboardID)
	if err != nil {
		s.logger.Error("Installment sweep failed", slog.String("error", err.Error()))
		return
	}
	// A sweep that advanced something invalidates the snapshot immediately
	// rather than waiting out the refresh interval.
	if advanced > 0 {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("Post-sweep refresh failed", slog.String("error", err.Error()))
		}
	}
}

// Close stops Run. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}
