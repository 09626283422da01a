// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoice-recon/backend/internal/application/usecase/explanation"
	"github.com/invoice-recon/backend/internal/application/usecase/reconciliation"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/integration/entrypoint/dto"
)

// ReconciliationController handles reconciliation endpoints.
type ReconciliationController struct {
	reconcileUseCase    *reconciliation.ReconcileUseCase
	confirmMatchUseCase *reconciliation.ConfirmMatchUseCase
	listMatchesUseCase  *reconciliation.ListMatchesUseCase
	explainMatchUseCase *explanation.ExplainMatchUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	reconcileUseCase *reconciliation.ReconcileUseCase,
	confirmMatchUseCase *reconciliation.ConfirmMatchUseCase,
	listMatchesUseCase *reconciliation.ListMatchesUseCase,
	explainMatchUseCase *explanation.ExplainMatchUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		reconcileUseCase:    reconcileUseCase,
		confirmMatchUseCase: confirmMatchUseCase,
		listMatchesUseCase:  listMatchesUseCase,
		explainMatchUseCase: explainMatchUseCase,
	}
}

// Reconcile handles POST /tenants/:tenantId/reconcile requests.
func (c *ReconciliationController) Reconcile(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	// Body is optional; defaults apply when it is absent.
	var req dto.ReconcileRequestDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	input := reconciliation.ReconcileInput{
		TenantID:                tenantID,
		MaxCandidatesPerInvoice: req.MaxCandidatesPerInvoice,
		DateWindowDays:          req.DateWindowDays,
	}

	output, err := c.reconcileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	matches := make([]dto.MatchDTO, len(output.Matches))
	for i, m := range output.Matches {
		matches[i] = dto.ToMatchDTO(m)
	}

	ctx.JSON(http.StatusOK, dto.ReconcileResponseDTO{Matches: matches})
}

// ConfirmMatch handles POST /tenants/:tenantId/matches/:matchId/confirm requests.
func (c *ReconciliationController) ConfirmMatch(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}
	matchID, ok := parseUintParam(ctx, "matchId")
	if !ok {
		return
	}

	input := reconciliation.ConfirmMatchInput{
		TenantID: tenantID,
		MatchID:  matchID,
	}

	output, err := c.confirmMatchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ConfirmMatchResponseDTO{Match: dto.ToMatchDTO(output.Match)})
}

// ListMatches handles GET /tenants/:tenantId/matches requests.
func (c *ReconciliationController) ListMatches(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	input := reconciliation.ListMatchesInput{
		TenantID: tenantID,
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.MatchStatus(statusStr)
		input.Status = &status
	}

	output, err := c.listMatchesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	matches := make([]dto.MatchDTO, len(output.Matches))
	for i, m := range output.Matches {
		matches[i] = dto.ToMatchDTO(m)
	}

	ctx.JSON(http.StatusOK, dto.ListMatchesResponseDTO{Matches: matches})
}

// ExplainMatch handles GET /tenants/:tenantId/reconcile/explain requests.
func (c *ReconciliationController) ExplainMatch(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	invoiceStr := ctx.Query("invoice_id")
	transactionStr := ctx.Query("transaction_id")
	if invoiceStr == "" || transactionStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invoice_id and transaction_id query parameters are required",
		})
		return
	}

	invoiceID, ok := parseUintQuery(ctx, "invoice_id", invoiceStr)
	if !ok {
		return
	}
	transactionID, ok := parseUintQuery(ctx, "transaction_id", transactionStr)
	if !ok {
		return
	}

	input := explanation.ExplainMatchInput{
		TenantID:          tenantID,
		InvoiceID:         invoiceID,
		BankTransactionID: transactionID,
	}

	output, err := c.explainMatchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExplainMatchResponseDTO(output))
}

// handleReconciliationError handles reconciliation errors and returns
// appropriate HTTP responses. The explain endpoint surfaces invoice and
// transaction lookup errors, so all three families are mapped here.
func (c *ReconciliationController) handleReconciliationError(ctx *gin.Context, err error) {
	var matchErr *domainerror.MatchError
	if errors.As(err, &matchErr) {
		statusCode := c.getStatusCodeForMatchError(matchErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: matchErr.Message,
			Code:  string(matchErr.Code),
		})
		return
	}

	var invoiceErr *domainerror.InvoiceError
	if errors.As(err, &invoiceErr) {
		statusCode := http.StatusInternalServerError
		if invoiceErr.Code == domainerror.ErrCodeInvoiceNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invoiceErr.Message,
			Code:  string(invoiceErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := http.StatusInternalServerError
		if txnErr.Code == domainerror.ErrCodeBankTransactionNotFound {
			statusCode = http.StatusNotFound
		}
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

// getStatusCodeForMatchError maps error codes to HTTP status codes.
func (c *ReconciliationController) getStatusCodeForMatchError(code domainerror.MatchErrorCode) int {
	switch code {
	case domainerror.ErrCodeMatchNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMatchNotProposed,
		domainerror.ErrCodeInvalidReconcileParams,
		domainerror.ErrCodeInvalidMatchStatus:
		return http.StatusBadRequest
	case domainerror.ErrCodeMatchConflict,
		domainerror.ErrCodeReconcileInProgress:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
