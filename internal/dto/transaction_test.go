package dto_test

import (
	"testing"
	"time"

	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionWireMapping_RoundTrip(t *testing.T) {
	created := time.Date(2025, time.January, 2, 10, 30, 0, 0, time.UTC)
	nextDue := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		txn  domain.Transaction
	}{
		{
			name: "plain expense",
			txn: domain.Transaction{
				TransactionID: "b2a7f6c0-0000-0000-0000-000000000001",
				DashboardID:   "dash-1",
				Description:   "mercado",
				Amount:        decimal.RequireFromString("250.40"),
				Type:          domain.Expense,
				Status:        domain.StatusCompleted,
				Category:      "Alimentação",
				Account:       "Conta Principal",
				Method:        "PIX",
				Date:          time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
				AuditFields:   domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
			},
		},
		{
			name: "income",
			txn: domain.Transaction{
				TransactionID: "b2a7f6c0-0000-0000-0000-000000000002",
				DashboardID:   "dash-1",
				Description:   "salário",
				Amount:        decimal.RequireFromString("8000"),
				Type:          domain.Income,
				Status:        domain.StatusCompleted,
				Date:          time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
				AuditFields:   domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
			},
		},
		{
			name: "installment purchase mid-schedule",
			txn: domain.Transaction{
				TransactionID: "b2a7f6c0-0000-0000-0000-000000000003",
				DashboardID:   "dash-2",
				Description:   "notebook",
				Amount:        decimal.RequireFromString("100"),
				Type:          domain.Expense,
				Status:        domain.StatusPending,
				Method:        "Cartão de Crédito",
				Date:          time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
				Installment: &domain.InstallmentPlan{
					Total:           12,
					Current:         2,
					TotalAmount:     decimal.RequireFromString("1200"),
					RemainingAmount: decimal.RequireFromString("1000"),
					NextPaymentDate: &nextDue,
				},
				AuditFields: domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
			},
		},
		{
			name: "exhausted installment schedule",
			txn: domain.Transaction{
				TransactionID: "b2a7f6c0-0000-0000-0000-000000000004",
				DashboardID:   "dash-2",
				Description:   "sofá",
				Amount:        decimal.RequireFromString("33.33"),
				Type:          domain.Expense,
				Status:        domain.StatusCompleted,
				Date:          time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
				Installment: &domain.InstallmentPlan{
					Total:           3,
					Current:         3,
					TotalAmount:     decimal.RequireFromString("100"),
					RemainingAmount: decimal.Zero,
				},
				AuditFields: domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := dto.ToTransactionResponse(&tt.txn)
			assert.Equal(t, resp.ID, resp.LegacyID)

			back, err := resp.ToDomain()
			require.NoError(t, err)

			assert.Equal(t, tt.txn.TransactionID, back.TransactionID)
			assert.Equal(t, tt.txn.DashboardID, back.DashboardID)
			assert.Equal(t, tt.txn.Description, back.Description)
			assert.True(t, tt.txn.Amount.Equal(back.Amount))
			assert.Equal(t, tt.txn.Type, back.Type)
			assert.Equal(t, tt.txn.Status, back.Status)
			assert.Equal(t, tt.txn.Category, back.Category)
			assert.Equal(t, tt.txn.Account, back.Account)
			assert.Equal(t, tt.txn.Method, back.Method)
			assert.True(t, tt.txn.Date.Equal(back.Date))

			if tt.txn.Installment == nil {
				assert.Nil(t, back.Installment)
			} else {
				require.NotNil(t, back.Installment)
				assert.Equal(t, tt.txn.Installment.Total, back.Installment.Total)
				assert.Equal(t, tt.txn.Installment.Current, back.Installment.Current)
				assert.True(t, tt.txn.Installment.TotalAmount.Equal(back.Installment.TotalAmount))
				assert.True(t, tt.txn.Installment.RemainingAmount.Equal(back.Installment.RemainingAmount))
				if tt.txn.Installment.NextPaymentDate == nil {
					assert.Nil(t, back.Installment.NextPaymentDate)
				} else {
					require.NotNil(t, back.Installment.NextPaymentDate)
					assert.True(t, tt.txn.Installment.NextPaymentDate.Equal(*back.Installment.NextPaymentDate))
				}
			}
		})
	}
}

func TestTransactionWireMapping_FieldNames(t *testing.T) {
	nextDue := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	txn := domain.Transaction{
		TransactionID: "tx-1",
		Description:   "geladeira",
		Amount:        decimal.RequireFromString("125.50"),
		Type:          domain.Expense,
		Status:        domain.StatusPending,
		Date:          time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		Installment: &domain.InstallmentPlan{
			Total:           10,
			Current:         1,
			TotalAmount:     decimal.RequireFromString("1255"),
			RemainingAmount: decimal.RequireFromString("1129.50"),
			NextPaymentDate: &nextDue,
		},
	}

	resp := dto.ToTransactionResponse(&txn)
	assert.Equal(t, "despesa", resp.Tipo)
	assert.Equal(t, "2025-02-01", resp.Data)
	require.NotNil(t, resp.NextPaymentDate)
	assert.Equal(t, "2025-03-01", *resp.NextPaymentDate)
	assert.Equal(t, "geladeira", resp.Descricao)
}

func TestTransactionResponse_ToDomain_Invalid(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		resp := dto.TransactionResponse{Tipo: "despesa", Data: "15/02/2025"}
		_, err := resp.ToDomain()
		assert.ErrorContains(t, err, "invalid date")
	})
	t.Run("bad tipo", func(t *testing.T) {
		resp := dto.TransactionResponse{Tipo: "transfer", Data: "2025-02-15"}
		_, err := resp.ToDomain()
		assert.ErrorContains(t, err, "invalid tipo")
	})
}
