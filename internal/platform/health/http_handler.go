package health

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-dashboard-api/internal/platform/logger"
)

type HealthHandler struct {
	db      *sql.DB
	version string
}

func NewHealthHandler(db *sql.DB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Check)
}

func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "Connected"
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		logger.Error("Health: database ping failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "Unhealthy",
			"timestamp": time.Now().UTC(),
			"database":  "Disconnected",
			"version":   h.version,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "Healthy",
		"timestamp": time.Now().UTC(),
		"database":  dbStatus,
		"version":   h.version,
	})
}
