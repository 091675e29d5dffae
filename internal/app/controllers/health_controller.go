package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/middleware"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports service health
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health reports whether the API and its database are up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "Healthy"
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if c.db != nil {
		if err := c.db.Ping(pingCtx); err != nil {
			middleware.RequestLogger(ctx).Error().Err(err).Msg("Database health check failed")
			detail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable")
			ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(detail))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
}
