package handlers

import (
	"context"
	"net/http"

	"github.com/calema/findash_backend/internal/core/domain"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/core/session"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	sessions           *session.Manager
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, sessions *session.Manager) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		sessions:           sessions,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, sessions *session.Manager) {
	h := newTransactionHandler(ts, sessions)

	transacoes := rg.Group("/transacoes")
	{
		transacoes.GET("", h.listTransactions)
		transacoes.POST("", h.createTransaction)
		transacoes.PUT("/:id", h.updateTransaction)
		transacoes.DELETE("/:id", h.deleteTransaction)
		transacoes.POST("/:id/pay-installment", h.payInstallment)
	}
}

// touch marks the dashboard active so its session timers are running.
func (h *transactionHandler) touch(dashboardID string) {
	if h.sessions != nil {
		h.sessions.Ensure(dashboardID)
	}
}

// apply runs a mutation through the dashboard's session loop, so the snapshot
// is reloaded before the response goes out. Without a session manager the
// mutation runs directly.
func (h *transactionHandler) apply(ctx context.Context, dashboardID string, fn func(ctx context.Context) error) error {
	if h.sessions == nil {
		return fn(ctx)
	}
	return h.sessions.Ensure(dashboardID).Apply(ctx, fn)
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	dashboardID, ok := requireDashboardID(c)
	if !ok {
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), dashboardID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	h.touch(dashboardID)

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "CreateTransaction", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var txn *domain.Transaction
	err := h.apply(c.Request.Context(), req.DashboardID, func(ctx context.Context) error {
		var err error
		txn, err = h.transactionService.CreateTransaction(ctx, req, userID)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "UpdateTransaction", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var txn *domain.Transaction
	err := h.apply(c.Request.Context(), req.DashboardID, func(ctx context.Context) error {
		var err error
		txn, err = h.transactionService.UpdateTransaction(ctx, transactionID, req, userID)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	dashboardID, ok := requireDashboardID(c)
	if !ok {
		return
	}

	err := h.apply(c.Request.Context(), dashboardID, func(ctx context.Context) error {
		return h.transactionService.DeleteTransaction(ctx, transactionID, dashboardID, userID)
	})
	if err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *transactionHandler) payInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	var req dto.PayInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "PayInstallment", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var txn *domain.Transaction
	err := h.apply(c.Request.Context(), req.DashboardID, func(ctx context.Context) error {
		var err error
		txn, err = h.transactionService.PayInstallment(ctx, transactionID, req.DashboardID, userID)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "Failed to pay installment")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
