package services_test

import (
	"context"
	"time"

	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, dashboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, transactionID, dashboardID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, dashboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionVersioned(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, dashboardID string) error {
	args := m.Called(ctx, transactionID, dashboardID)
	return args.Error(0)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock DashboardRepository ---

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) FindDashboardByID(ctx context.Context, dashboardID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, dashboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) ListDashboardsByUserID(ctx context.Context, userID string) ([]domain.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) SaveDashboard(ctx context.Context, dashboard domain.Dashboard) error {
	args := m.Called(ctx, dashboard)
	return args.Error(0)
}

func (m *MockDashboardRepository) CreateDashboardWithOwner(ctx context.Context, dashboard domain.Dashboard, owner domain.UserDashboard) error {
	args := m.Called(ctx, dashboard, owner)
	return args.Error(0)
}

func (m *MockDashboardRepository) AddUserToDashboard(ctx context.Context, membership domain.UserDashboard) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockDashboardRepository) FindUserDashboardRole(ctx context.Context, userID, dashboardID string) (*domain.UserDashboard, error) {
	args := m.Called(ctx, userID, dashboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserDashboard), args.Error(1)
}

func (m *MockDashboardRepository) ListUsersByDashboardID(ctx context.Context, dashboardID string) ([]domain.UserDashboard, error) {
	args := m.Called(ctx, dashboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserDashboard), args.Error(1)
}

func (m *MockDashboardRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDashboardRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDashboardRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock DashboardAuthorizer ---

type MockDashboardAuthorizer struct {
	mock.Mock
}

func (m *MockDashboardAuthorizer) CheckAccess(ctx context.Context, userID, dashboardID string) (domain.DashboardRole, error) {
	args := m.Called(ctx, userID, dashboardID)
	return args.Get(0).(domain.DashboardRole), args.Error(1)
}

func (m *MockDashboardAuthorizer) AuthorizeUserAction(ctx context.Context, userID, dashboardID string, requiredRole domain.DashboardRole) error {
	args := m.Called(ctx, userID, dashboardID, requiredRole)
	return args.Error(0)
}

// --- Mock NotificationService ---

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, notice domain.InstallmentNotice) {
	m.Called(ctx, notice)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, dashboardID string) []domain.InstallmentNotice {
	args := m.Called(ctx, dashboardID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.InstallmentNotice)
}

func (m *MockNotificationService) DismissNotification(ctx context.Context, dashboardID, transactionID string) {
	m.Called(ctx, dashboardID, transactionID)
}

// --- Fixed test clock ---

type fixedClock struct {
	current time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.current
}

func (c *fixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
