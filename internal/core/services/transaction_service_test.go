package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/calema/findash_backend/internal/apperrors"
	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/core/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockTransactionRepository
	mockAuthorizer *MockDashboardAuthorizer
	mockNotifier   *MockNotificationService
	clock          *fixedClock
	service        *services.TransactionService

	dashboardID string
	userID      string
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockTransactionRepository)
	s.mockAuthorizer = new(MockDashboardAuthorizer)
	s.mockNotifier = new(MockNotificationService)
	s.clock = &fixedClock{current: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	s.service = services.NewTransactionService(s.mockRepo, s.mockAuthorizer, s.mockNotifier, s.clock)
	s.dashboardID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *TransactionServiceTestSuite) authorize() {
	s.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, s.userID, s.dashboardID, domain.RoleMember).Return(nil).Once()
}

func (s *TransactionServiceTestSuite) installmentTxn(current, total int, totalAmount string, next time.Time) *domain.Transaction {
	ta := decimal.RequireFromString(totalAmount)
	share := domain.InstallmentShare(ta, total)
	remaining := ta.Sub(share.Mul(decimal.NewFromInt(int64(current))))
	status := domain.StatusPending
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		DashboardID:   s.dashboardID,
		Description:   "notebook",
		Amount:        share,
		Type:          domain.Expense,
		Status:        status,
		Date:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Version:       3,
		Installment: &domain.InstallmentPlan{
			Total:           total,
			Current:         current,
			TotalAmount:     ta,
			RemainingAmount: remaining,
			NextPaymentDate: &next,
		},
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Plain() {
	ctx := context.Background()
	valor := decimal.RequireFromString("42.50")
	req := dto.CreateTransactionRequest{
		DashboardID: s.dashboardID,
		Descricao:   "groceries",
		Valor:       &valor,
		Tipo:        "despesa",
		Data:        "2025-03-01",
	}

	s.authorize()
	s.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.DashboardID == s.dashboardID &&
			t.Amount.Equal(valor) &&
			t.Type == domain.Expense &&
			t.Status == domain.StatusPending &&
			t.Installment == nil &&
			t.Version == 1
	})).Return(nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.False(txn.IsInstallment())
	s.Equal(s.userID, txn.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
	s.mockAuthorizer.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Installment_Defaults() {
	ctx := context.Background()
	installments := 12
	total := decimal.RequireFromString("1200")
	req := dto.CreateTransactionRequest{
		DashboardID:  s.dashboardID,
		Descricao:    "sofa",
		Tipo:         "despesa",
		Data:         "2025-03-01",
		Installments: &installments,
		TotalAmount:  &total,
	}

	s.authorize()
	s.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().True(txn.IsInstallment())
	s.Equal(0, txn.Installment.Current)
	s.True(txn.Installment.RemainingAmount.Equal(total))
	s.True(txn.Amount.Equal(decimal.RequireFromString("100")))
	s.Require().NotNil(txn.Installment.NextPaymentDate)
	// Next payment date defaults to the transaction date.
	s.Equal("2025-03-01", txn.Installment.NextPaymentDate.Format("2006-01-02"))
	s.NoError(txn.Validate())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Installment_MissingTotal() {
	ctx := context.Background()
	installments := 6
	req := dto.CreateTransactionRequest{
		DashboardID:  s.dashboardID,
		Descricao:    "phone",
		Tipo:         "despesa",
		Data:         "2025-03-01",
		Installments: &installments,
	}

	s.authorize()

	txn, err := s.service.CreateTransaction(ctx, req, s.userID)

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Forbidden() {
	ctx := context.Background()
	valor := decimal.RequireFromString("10")
	req := dto.CreateTransactionRequest{
		DashboardID: s.dashboardID,
		Descricao:   "coffee",
		Valor:       &valor,
		Tipo:        "despesa",
		Data:        "2025-03-01",
	}

	s.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, s.userID, s.dashboardID, domain.RoleMember).
		Return(apperrors.NewForbiddenError("no access")).Once()

	txn, err := s.service.CreateTransaction(ctx, req, s.userID)

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestPayInstallment_Advances() {
	ctx := context.Background()
	next := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	existing := s.installmentTxn(2, 12, "1200", next)

	s.authorize()
	s.mockRepo.On("FindByID", ctx, existing.TransactionID, s.dashboardID).Return(existing, nil).Once()
	s.mockRepo.On("UpdateTransactionVersioned", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Installment.Current == 3 &&
			t.Version == 3 &&
			t.Status == domain.StatusPending &&
			t.Installment.RemainingAmount.Equal(decimal.RequireFromString("900")) &&
			t.Installment.NextPaymentDate.Equal(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()
	s.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.InstallmentNotice) bool {
		return n.TransactionID == existing.TransactionID && n.Current == 3 && n.Total == 12
	})).Once()

	txn, err := s.service.PayInstallment(ctx, existing.TransactionID, s.dashboardID, s.userID)

	s.Require().NoError(err)
	s.Equal(3, txn.Installment.Current)
	s.Equal(int64(4), txn.Version)
	s.mockRepo.AssertExpectations(s.T())
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestPayInstallment_FinalCompletesAndZeroes() {
	ctx := context.Background()
	next := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	// 100 over 3: shares of 33.33 leave 33.34 before the last payment.
	existing := s.installmentTxn(2, 3, "100", next)

	s.authorize()
	s.mockRepo.On("FindByID", ctx, existing.TransactionID, s.dashboardID).Return(existing, nil).Once()
	s.mockRepo.On("UpdateTransactionVersioned", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Status == domain.StatusCompleted &&
			t.Installment.Current == 3 &&
			t.Installment.RemainingAmount.IsZero() &&
			t.Installment.NextPaymentDate == nil
	})).Return(nil).Once()
	s.mockNotifier.On("Notify", ctx, mock.Anything).Once()

	txn, err := s.service.PayInstallment(ctx, existing.TransactionID, s.dashboardID, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusCompleted, txn.Status)
	s.True(txn.Installment.RemainingAmount.IsZero())
}

func (s *TransactionServiceTestSuite) TestPayInstallment_NotInstallment() {
	ctx := context.Background()
	plain := &domain.Transaction{
		TransactionID: uuid.NewString(),
		DashboardID:   s.dashboardID,
		Amount:        decimal.RequireFromString("10"),
		Status:        domain.StatusPending,
	}

	s.authorize()
	s.mockRepo.On("FindByID", ctx, plain.TransactionID, s.dashboardID).Return(plain, nil).Once()

	txn, err := s.service.PayInstallment(ctx, plain.TransactionID, s.dashboardID, s.userID)

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, domain.ErrNotInstallment)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateTransactionVersioned", mock.Anything, mock.Anything)
	s.mockNotifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestPayInstallment_VersionConflict() {
	ctx := context.Background()
	next := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	existing := s.installmentTxn(1, 12, "1200", next)

	s.authorize()
	s.mockRepo.On("FindByID", ctx, existing.TransactionID, s.dashboardID).Return(existing, nil).Once()
	s.mockRepo.On("UpdateTransactionVersioned", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(apperrors.NewConflictError("transaction was modified concurrently")).Once()

	txn, err := s.service.PayInstallment(ctx, existing.TransactionID, s.dashboardID, s.userID)

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockNotifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_MidSchedule() {
	ctx := context.Background()
	txnID := uuid.NewString()

	s.authorize()
	s.mockRepo.On("DeleteTransaction", ctx, txnID, s.dashboardID).Return(nil).Once()

	err := s.service.DeleteTransaction(ctx, txnID, s.dashboardID, s.userID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_PartialFields() {
	ctx := context.Background()
	next := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	existing := s.installmentTxn(1, 12, "1200", next)

	newDesc := "notebook pro"
	req := dto.UpdateTransactionRequest{
		DashboardID: s.dashboardID,
		Descricao:   &newDesc,
	}

	s.authorize()
	s.mockRepo.On("FindByID", ctx, existing.TransactionID, s.dashboardID).Return(existing, nil).Once()
	s.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Description == "notebook pro" &&
			t.Installment != nil && t.Installment.Current == 1 &&
			t.LastUpdatedBy == s.userID
	})).Return(nil).Once()

	txn, err := s.service.UpdateTransaction(ctx, existing.TransactionID, req, s.userID)

	s.Require().NoError(err)
	s.Equal("notebook pro", txn.Description)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_StatusLockedForInstallments() {
	ctx := context.Background()
	next := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	existing := s.installmentTxn(3, 12, "1200", next)

	completed := "completed"
	req := dto.UpdateTransactionRequest{
		DashboardID: s.dashboardID,
		Status:      &completed,
	}

	s.authorize()
	s.mockRepo.On("FindByID", ctx, existing.TransactionID, s.dashboardID).Return(existing, nil).Once()

	txn, err := s.service.UpdateTransaction(ctx, existing.TransactionID, req, s.userID)

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	// A schedule mid-flight never reaches the repository as completed.
	s.mockRepo.AssertNotCalled(s.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_ValorLockedForInstallments() {
	ctx := context.Background()
	next := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	existing := s.installmentTxn(3, 12, "1200", next)

	valor := decimal.RequireFromString("1")
	req := dto.UpdateTransactionRequest{
		DashboardID: s.dashboardID,
		Valor:       &valor,
	}

	s.authorize()
	s.mockRepo.On("FindByID", ctx, existing.TransactionID, s.dashboardID).Return(existing, nil).Once()

	txn, err := s.service.UpdateTransaction(ctx, existing.TransactionID, req, s.userID)

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Installment_IgnoresValor() {
	ctx := context.Background()
	installments := 12
	total := decimal.RequireFromString("1200")
	valor := decimal.RequireFromString("999")
	req := dto.CreateTransactionRequest{
		DashboardID:  s.dashboardID,
		Descricao:    "sofa",
		Valor:        &valor,
		Tipo:         "despesa",
		Data:         "2025-03-01",
		Installments: &installments,
		TotalAmount:  &total,
	}

	s.authorize()
	s.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(txn.Amount.Equal(decimal.RequireFromString("100")))
	s.NoError(txn.Validate())
}

func (s *TransactionServiceTestSuite) TestListTransactions_NotFoundID() {
	ctx := context.Background()

	s.authorize()
	s.mockRepo.On("ListByDashboard", ctx, s.dashboardID).Return([]domain.Transaction{}, nil).Once()

	txns, err := s.service.ListTransactions(ctx, s.dashboardID, s.userID)

	s.Require().NoError(err)
	s.Empty(txns)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
