package handlers

import (
	"fundledger/internal/adapters/persistence/repositories"
	"fundledger/internal/pkg/pagination"
	"fundledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles the fund-wide transaction log
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepository
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{transactionRepo: transactionRepo}
}

// List lists ledger entries, newest first
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by transaction type"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	txs, total, err := h.transactionRepo.List(c.Context(), c.Query("type"),
		params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list transactions")
	}

	return response.Success(c, "Transactions retrieved successfully",
		pagination.NewResponse(txs, params, total))
}
