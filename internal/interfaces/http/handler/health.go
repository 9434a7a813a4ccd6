package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/backend/internal/infrastructure/persistence"
	"github.com/wanderplan/backend/internal/interfaces/http/dto"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db *persistence.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *persistence.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness reports that the process is up
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports whether the service can reach its dependencies
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("SERVICE_UNAVAILABLE", "Database is unreachable"))
			return
		}
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ready"}))
}
