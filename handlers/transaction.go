package handlers

import (
	"net/http"

	"thanawyia/models"
	"thanawyia/services/transaction"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the wallet ledger endpoints.
type TransactionHandler struct {
	TransactionService transaction.TransactionService
}

func NewTransactionHandler(ts transaction.TransactionService) *TransactionHandler {
	return &TransactionHandler{TransactionService: ts}
}

// ListMyTransactionsHandler handles GET /api/transactions.
func (h *TransactionHandler) ListMyTransactionsHandler(c *gin.Context) {
	id, _ := caller(c)
	txs, err := h.TransactionService.ListByAccount(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "transactions", txs)
}

// CreateTransactionHandler handles POST /api/transactions.
// Only admins may record entries for another account.
func (h *TransactionHandler) CreateTransactionHandler(c *gin.Context) {
	id, role := caller(c)
	var req models.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	if role != models.RoleAdmin || req.UserID == "" {
		req.UserID = id
	}

	tx, err := h.TransactionService.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "transaction", tx)
}

// ListAllTransactionsHandler handles GET /api/admin/transactions.
func (h *TransactionHandler) ListAllTransactionsHandler(c *gin.Context) {
	txs, err := h.TransactionService.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "transactions", txs)
}
