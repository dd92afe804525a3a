package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/recommender"
)

type InsightsHandler struct {
	engine *recommender.Engine
	logger *logrus.Logger
}

func NewInsightsHandler(engine *recommender.Engine, logger *logrus.Logger) *InsightsHandler {
	return &InsightsHandler{engine: engine, logger: logger}
}

// GetInsights handles GET /api/insights with a read-only model snapshot.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"insights": h.engine.Insights(),
	})
}
