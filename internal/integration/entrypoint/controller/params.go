// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/integration/entrypoint/dto"
)

// parseUintParam parses a positive integer path parameter. On failure it
// writes a 400 response and returns false.
func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(value), true
}

// parseTenantID parses the tenantId path parameter shared by all
// tenant-scoped routes.
func parseTenantID(ctx *gin.Context) (uint, bool) {
	return parseUintParam(ctx, "tenantId")
}

// parseUintQuery parses an already-read query value as a positive integer.
// On failure it writes a 400 response and returns false.
func parseUintQuery(ctx *gin.Context, name, raw string) (uint, bool) {
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(value), true
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter. A missing
// parameter yields (nil, true); a malformed one writes a 400 response.
func parseDateQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &parsed, true
}

// parseDecimalQuery parses an optional decimal query parameter. A missing
// parameter yields (nil, true); a malformed one writes a 400 response.
func parseDecimalQuery(ctx *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return nil, false
	}
	return &parsed, true
}
