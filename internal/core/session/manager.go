package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
)

// Manager lazily creates one Session per active dashboard and owns their
// lifecycles. A dashboard becomes active the first time a request touches it
// and stays active until shutdown.
type Manager struct {
	repos   *portsrepo.RepositoryProvider
	sweeper portssvc.InstallmentSweeperSvc

	refreshInterval time.Duration
	sweepInterval   time.Duration
	logger          *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates a session manager. Sessions it spawns run until Shutdown.
func NewManager(repos *portsrepo.RepositoryProvider, sweeper portssvc.InstallmentSweeperSvc, refreshInterval, sweepInterval time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		repos:           repos,
		sweeper:         sweeper,
		refreshInterval: refreshInterval,
		sweepInterval:   sweepInterval,
		logger:          logger,
		sessions:        make(map[string]*Session),
		ctx:             ctx,
		cancel:          cancel,
	}
}

// Ensure returns the dashboard's session, starting one if none is running.
func (m *Manager) Ensure(dashboardID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[dashboardID]; ok {
		return s
	}

	s := NewSession(dashboardID, m.repos, m.sweeper, m.refreshInterval, m.sweepInterval, m.logger)
	m.sessions[dashboardID] = s
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		s.Run(m.ctx)
	}()
	m.logger.Info("Dashboard session started", slog.String("dashboard_id", dashboardID))
	return s
}

// Get returns a running session without starting one.
func (m *Manager) Get(dashboardID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[dashboardID]
	return s, ok
}

// Shutdown stops every session and waits for their loops to exit.
func (m *Manager) Shutdown() {
	m.cancel()
	m.mu.Lock()
	for _, s := range m.sessions {
		s.Close()
	}
	m.mu.Unlock()
	m.wg.Wait()
}
