// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/usecase/invoice"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/integration/entrypoint/dto"
)

// InvoiceController handles invoice endpoints.
type InvoiceController struct {
	createInvoiceUseCase *invoice.CreateInvoiceUseCase
	listInvoicesUseCase  *invoice.ListInvoicesUseCase
	deleteInvoiceUseCase *invoice.DeleteInvoiceUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	createInvoiceUseCase *invoice.CreateInvoiceUseCase,
	listInvoicesUseCase *invoice.ListInvoicesUseCase,
	deleteInvoiceUseCase *invoice.DeleteInvoiceUseCase,
) *InvoiceController {
	return &InvoiceController{
		createInvoiceUseCase: createInvoiceUseCase,
		listInvoicesUseCase:  listInvoicesUseCase,
		deleteInvoiceUseCase: deleteInvoiceUseCase,
	}
}

// Create handles POST /tenants/:tenantId/invoices requests.
func (c *InvoiceController) Create(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return
	}

	var invoiceDate *time.Time
	if req.InvoiceDate != "" {
		parsed, err := time.Parse("2006-01-02", req.InvoiceDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid invoice_date format, expected YYYY-MM-DD",
			})
			return
		}
		invoiceDate = &parsed
	}

	input := invoice.CreateInvoiceInput{
		TenantID:    tenantID,
		VendorID:    req.VendorID,
		Number:      req.Number,
		Amount:      amount,
		Currency:    req.Currency,
		InvoiceDate: invoiceDate,
		Description: req.Description,
	}

	output, err := c.createInvoiceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceDTO(output.Invoice))
}

// List handles GET /tenants/:tenantId/invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	input := invoice.ListInvoicesInput{
		TenantID: tenantID,
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.InvoiceStatus(statusStr)
		input.Status = &status
	}
	if vendorStr := ctx.Query("vendor_id"); vendorStr != "" {
		vendorID, ok := parseUintQuery(ctx, "vendor_id", vendorStr)
		if !ok {
			return
		}
		input.VendorID = &vendorID
	}
	if dateStart, ok := parseDateQuery(ctx, "date_start"); !ok {
		return
	} else if dateStart != nil {
		input.DateStart = dateStart
	}
	if dateEnd, ok := parseDateQuery(ctx, "date_end"); !ok {
		return
	} else if dateEnd != nil {
		input.DateEnd = dateEnd
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

	output, err := c.listInvoicesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	invoices := make([]dto.InvoiceDTO, len(output.Invoices))
	for i, inv := range output.Invoices {
		invoices[i] = dto.ToInvoiceDTO(inv)
	}

	ctx.JSON(http.StatusOK, dto.ListInvoicesResponseDTO{Invoices: invoices})
}

// Delete handles DELETE /tenants/:tenantId/invoices/:invoiceId requests.
func (c *InvoiceController) Delete(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}
	invoiceID, ok := parseUintParam(ctx, "invoiceId")
	if !ok {
		return
	}

	input := invoice.DeleteInvoiceInput{
		TenantID:  tenantID,
		InvoiceID: invoiceID,
	}

	if err := c.deleteInvoiceUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleInvoiceError handles invoice errors and returns appropriate HTTP responses.
func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, err error) {
	var invoiceErr *domainerror.InvoiceError
	if errors.As(err, &invoiceErr) {
		statusCode := c.getStatusCodeForInvoiceError(invoiceErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invoiceErr.Message,
			Code:  string(invoiceErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvoiceError maps error codes to HTTP status codes.
func (c *InvoiceController) getStatusCodeForInvoiceError(code domainerror.InvoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidInvoiceAmount,
		domainerror.ErrCodeInvalidInvoiceCurrency,
		domainerror.ErrCodeInvalidInvoiceStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
