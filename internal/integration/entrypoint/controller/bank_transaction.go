// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/usecase/banktransaction"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/integration/entrypoint/dto"
)

// BankTransactionController handles bank-transaction endpoints.
type BankTransactionController struct {
	importTransactionsUseCase *banktransaction.ImportTransactionsUseCase
	listTransactionsUseCase   *banktransaction.ListTransactionsUseCase
}

// NewBankTransactionController creates a new bank transaction controller
// instance.
func NewBankTransactionController(
	importTransactionsUseCase *banktransaction.ImportTransactionsUseCase,
	listTransactionsUseCase *banktransaction.ListTransactionsUseCase,
) *BankTransactionController {
	return &BankTransactionController{
		importTransactionsUseCase: importTransactionsUseCase,
		listTransactionsUseCase:   listTransactionsUseCase,
	}
}

// Import handles POST /tenants/:tenantId/bank-transactions/import requests.
func (c *BankTransactionController) Import(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	var req dto.ImportTransactionsRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	transactions := make([]banktransaction.TransactionInput, len(req.Transactions))
	for i, row := range req.Transactions {
		postedAt, err := time.Parse(time.RFC3339, row.PostedAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("Invalid posted_at in transaction %d, expected RFC3339", i),
			})
			return
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("Invalid amount in transaction %d", i),
			})
			return
		}
		transactions[i] = banktransaction.TransactionInput{
			ExternalID:  row.ExternalID,
			PostedAt:    postedAt,
			Amount:      amount,
			Currency:    row.Currency,
			Description: row.Description,
		}
	}

	input := banktransaction.ImportTransactionsInput{
		TenantID:       tenantID,
		IdempotencyKey: ctx.GetHeader("Idempotency-Key"),
		Transactions:   transactions,
	}

	output, err := c.importTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	if output.Replayed {
		ctx.Header("Idempotency-Replayed", "true")
	}
	ctx.JSON(http.StatusOK, dto.ToImportTransactionsResponseDTO(output.Summary))
}

// List handles GET /tenants/:tenantId/bank-transactions requests.
func (c *BankTransactionController) List(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	input := banktransaction.ListTransactionsInput{
		TenantID:            tenantID,
		DescriptionContains: ctx.Query("description_contains"),
	}

	if postedStart, ok := parseDateQuery(ctx, "posted_start"); !ok {
		return
	} else if postedStart != nil {
		input.PostedStart = postedStart
	}
	if postedEnd, ok := parseDateQuery(ctx, "posted_end"); !ok {
		return
	} else if postedEnd != nil {
		input.PostedEnd = postedEnd
	}
	if amountMin, ok := parseDecimalQuery(ctx, "amount_min"); !ok {
		return
	} else if amountMin != nil {
		input.AmountMin = amountMin
	}
	if amountMax, ok := parseDecimalQuery(ctx, "amount_max"); !ok {
		return
	} else if amountMax != nil {
		input.AmountMax = amountMax
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	transactions := make([]dto.BankTransactionDTO, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = dto.ToBankTransactionDTO(txn)
	}

	ctx.JSON(http.StatusOK, dto.ListBankTransactionsResponseDTO{Transactions: transactions})
}

// handleTransactionError handles transaction errors and returns appropriate
// HTTP responses.
func (c *BankTransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps error codes to HTTP status codes.
func (c *BankTransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeBankTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingIdempotencyKey,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidTransactionCurrency:
		return http.StatusBadRequest
	case domainerror.ErrCodeIdempotencyConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
