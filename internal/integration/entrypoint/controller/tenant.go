// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoice-recon/backend/internal/application/usecase/tenant"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/integration/entrypoint/dto"
)

// TenantController handles tenant management endpoints.
type TenantController struct {
	createTenantUseCase *tenant.CreateTenantUseCase
	listTenantsUseCase  *tenant.ListTenantsUseCase
	getTenantUseCase    *tenant.GetTenantUseCase
	deleteTenantUseCase *tenant.DeleteTenantUseCase
}

// NewTenantController creates a new tenant controller instance.
func NewTenantController(
	createTenantUseCase *tenant.CreateTenantUseCase,
	listTenantsUseCase *tenant.ListTenantsUseCase,
	getTenantUseCase *tenant.GetTenantUseCase,
	deleteTenantUseCase *tenant.DeleteTenantUseCase,
) *TenantController {
	return &TenantController{
		createTenantUseCase: createTenantUseCase,
		listTenantsUseCase:  listTenantsUseCase,
		getTenantUseCase:    getTenantUseCase,
		deleteTenantUseCase: deleteTenantUseCase,
	}
}

// Create handles POST /tenants requests.
func (c *TenantController) Create(ctx *gin.Context) {
	var req dto.CreateTenantRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := tenant.CreateTenantInput{
		Name: req.Name,
	}

	output, err := c.createTenantUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTenantDTO(output.Tenant.ID, output.Tenant.Name, output.Tenant.CreatedAt))
}

// List handles GET /tenants requests.
func (c *TenantController) List(ctx *gin.Context) {
	output, err := c.listTenantsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	tenants := make([]dto.TenantDTO, len(output.Tenants))
	for i, t := range output.Tenants {
		tenants[i] = dto.ToTenantDTO(t.ID, t.Name, t.CreatedAt)
	}

	ctx.JSON(http.StatusOK, dto.ListTenantsResponseDTO{Tenants: tenants})
}

// Get handles GET /tenants/:tenantId requests.
func (c *TenantController) Get(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	output, err := c.getTenantUseCase.Execute(ctx.Request.Context(), tenant.GetTenantInput{TenantID: tenantID})
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantDTO(output.Tenant.ID, output.Tenant.Name, output.Tenant.CreatedAt))
}

// Delete handles DELETE /tenants/:tenantId requests.
func (c *TenantController) Delete(ctx *gin.Context) {
	tenantID, ok := parseTenantID(ctx)
	if !ok {
		return
	}

	if err := c.deleteTenantUseCase.Execute(ctx.Request.Context(), tenant.DeleteTenantInput{TenantID: tenantID}); err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTenantError handles tenant errors and returns appropriate HTTP responses.
func (c *TenantController) handleTenantError(ctx *gin.Context, err error) {
	var tenantErr *domainerror.TenantError
	if errors.As(err, &tenantErr) {
		statusCode := c.getStatusCodeForTenantError(tenantErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: tenantErr.Message,
			Code:  string(tenantErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTenantError maps error codes to HTTP status codes.
func (c *TenantController) getStatusCodeForTenantError(code domainerror.TenantErrorCode) int {
	switch code {
	case domainerror.ErrCodeTenantNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTenantNameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTenantName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
