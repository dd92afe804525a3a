package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/recommender"
	"github.com/apteva/apteva/internal/storage"
)

type HealthHandler struct {
	engine *recommender.Engine
	store  *storage.Store
	logger *logrus.Logger
}

func NewHealthHandler(engine *recommender.Engine, store *storage.Store, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{engine: engine, store: store, logger: logger}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	ins := h.engine.Insights()
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"model_status":      ins.CollaborativeFiltering.Status,
		"embeddings_loaded": ins.ModelInfo.EmbeddingsCount > 0,
		"timestamp":         time.Now().Format(time.RFC3339),
	})
}

// DatabaseHealth handles GET /api/db/health.
func (h *HealthHandler) DatabaseHealth(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":    "disabled",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	if err := h.store.Health(c.Request.Context()); err != nil {
		h.logger.WithError(err).Error("Database health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	stats, err := h.store.Statistics(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read storage statistics")
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"statistics": stats,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}
