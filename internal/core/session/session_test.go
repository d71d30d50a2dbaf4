package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	"github.com/calema/findash_backend/internal/core/session"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore backs every repository interface with in-memory slices so the
// session can be exercised without a database.
type fakeStore struct {
	mu           sync.Mutex
	transactions []domain.Transaction
	goals        []domain.Goal
	budgets      []domain.Budget
	categories   []domain.Category
}

func (f *fakeStore) setTransactions(txns []domain.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions = txns
}

type fakeTransactionRepo struct{ store *fakeStore }

func (r *fakeTransactionRepo) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]domain.Transaction, len(r.store.transactions))
	copy(out, r.store.transactions)
	return out, nil
}
func (r *fakeTransactionRepo) FindByID(ctx context.Context, transactionID, dashboardID string) (*domain.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.transactions = append(r.store.transactions, txn)
	return nil
}
func (r *fakeTransactionRepo) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return nil
}
func (r *fakeTransactionRepo) UpdateTransactionVersioned(ctx context.Context, txn domain.Transaction) error {
	return nil
}
func (r *fakeTransactionRepo) DeleteTransaction(ctx context.Context, transactionID, dashboardID string) error {
	return nil
}
func (r *fakeTransactionRepo) Begin(ctx context.Context) (pgx.Tx, error)      { return nil, nil }
func (r *fakeTransactionRepo) Commit(ctx context.Context, tx pgx.Tx) error    { return nil }
func (r *fakeTransactionRepo) Rollback(ctx context.Context, tx pgx.Tx) error  { return nil }

type fakeGoalRepo struct{ store *fakeStore }

func (r *fakeGoalRepo) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Goal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.Goal(nil), r.store.goals...), nil
}
func (r *fakeGoalRepo) FindGoalByID(ctx context.Context, goalID, dashboardID string) (*domain.Goal, error) {
	return nil, nil
}
func (r *fakeGoalRepo) SaveGoal(ctx context.Context, goal domain.Goal) error     { return nil }
func (r *fakeGoalRepo) UpdateGoal(ctx context.Context, goal domain.Goal) error   { return nil }
func (r *fakeGoalRepo) DeleteGoal(ctx context.Context, goalID, dashboardID string) error { return nil }

type fakeBudgetRepo struct{ store *fakeStore }

func (r *fakeBudgetRepo) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.Budget(nil), r.store.budgets...), nil
}
func (r *fakeBudgetRepo) FindBudgetByID(ctx context.Context, budgetID, dashboardID string) (*domain.Budget, error) {
	return nil, nil
}
func (r *fakeBudgetRepo) SaveBudget(ctx context.Context, budget domain.Budget) error   { return nil }
func (r *fakeBudgetRepo) UpdateBudget(ctx context.Context, budget domain.Budget) error { return nil }
func (r *fakeBudgetRepo) DeleteBudget(ctx context.Context, budgetID, dashboardID string) error {
	return nil
}

type fakeCategoryRepo struct{ store *fakeStore }

func (r *fakeCategoryRepo) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.Category(nil), r.store.categories...), nil
}
func (r *fakeCategoryRepo) FindCategoryByID(ctx context.Context, categoryID, dashboardID string) (*domain.Category, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) SaveCategory(ctx context.Context, category domain.Category) error { return nil }
func (r *fakeCategoryRepo) UpdateCategory(ctx context.Context, category domain.Category) error {
	return nil
}
func (r *fakeCategoryRepo) DeleteCategory(ctx context.Context, categoryID, dashboardID string) error {
	return nil
}

type fakeSweeper struct {
	mu       sync.Mutex
	calls    int
	advanced int
}

func (s *fakeSweeper) SweepDashboard(ctx context.Context, dashboardID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.advanced, nil
}

func newTestProvider(store *fakeStore) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TransactionRepo: &fakeTransactionRepo{store: store},
		GoalRepo:        &fakeGoalRepo{store: store},
		BudgetRepo:      &fakeBudgetRepo{store: store},
		CategoryRepo:    &fakeCategoryRepo{store: store},
	}
}

func TestSessionRefresh(t *testing.T) {
	store := &fakeStore{
		transactions: []domain.Transaction{{TransactionID: "t1", Amount: decimal.NewFromInt(10)}},
		goals:        []domain.Goal{{GoalID: "g1"}},
		budgets:      []domain.Budget{{BudgetID: "b1"}},
		categories:   []domain.Category{{CategoryID: "c1"}},
	}
	s := session.NewSession("dash-1", newTestProvider(store), &fakeSweeper{}, time.Hour, time.Hour, nil)

	require.NoError(t, s.Refresh(context.Background()))
	snap := s.Snapshot()
	assert.Equal(t, uint64(1), snap.Version)
	assert.Len(t, snap.Transactions, 1)
	assert.Len(t, snap.Goals, 1)
	assert.Len(t, snap.Budgets, 1)
	assert.Len(t, snap.Categories, 1)

	store.setTransactions([]domain.Transaction{
		{TransactionID: "t1"}, {TransactionID: "t2"},
	})
	require.NoError(t, s.Refresh(context.Background()))
	snap = s.Snapshot()
	assert.Equal(t, uint64(2), snap.Version)
	assert.Len(t, snap.Transactions, 2)
}

func TestSessionApplyForcesRefresh(t *testing.T) {
	store := &fakeStore{}
	provider := newTestProvider(store)
	s := session.NewSession("dash-1", provider, &fakeSweeper{}, time.Hour, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)
	defer s.Close()

	err := s.Apply(ctx, func(ctx context.Context) error {
		return provider.TransactionRepo.SaveTransaction(ctx, domain.Transaction{TransactionID: "t-new"})
	})
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "t-new", snap.Transactions[0].TransactionID)
}

func TestSessionSweepTickRefreshesWhenAdvanced(t *testing.T) {
	store := &fakeStore{}
	sweeper := &fakeSweeper{advanced: 1}
	s := session.NewSession("dash-1", newTestProvider(store), sweeper, time.Hour, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)
	defer s.Close()

	assert.Eventually(t, func() bool {
		sweeper.mu.Lock()
		defer sweeper.mu.Unlock()
		return sweeper.calls >= 2
	}, 2*time.Second, 5*time.Millisecond)

	// Each advancing sweep forces a refresh on top of the initial load.
	assert.Eventually(t, func() bool {
		return s.Snapshot().Version >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestManagerEnsureReusesSession(t *testing.T) {
	store := &fakeStore{}
	m := session.NewManager(newTestProvider(store), &fakeSweeper{}, time.Hour, time.Hour, nil)
	defer m.Shutdown()

	a := m.Ensure("dash-1")
	b := m.Ensure("dash-1")
	c := m.Ensure("dash-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)

	got, ok := m.Get("dash-2")
	require.True(t, ok)
	assert.Same(t, c, got)
}

func TestSessionApplyAfterClose(t *testing.T) {
	store := &fakeStore{}
	s := session.NewSession("dash-1", newTestProvider(store), &fakeSweeper{}, time.Hour, time.Hour, nil)
	s.Close()

	err := s.Apply(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, session.ErrSessionClosed)
}
