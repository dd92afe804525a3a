package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/messaging"
	"github.com/apteva/apteva/internal/metrics"
	"github.com/apteva/apteva/internal/middleware"
	"github.com/apteva/apteva/internal/recommender"
	"github.com/apteva/apteva/pkg/models"
)

type InteractionHandler struct {
	engine   *recommender.Engine
	producer *messaging.Producer
	metrics  *metrics.Metrics
	logger   *logrus.Logger
}

func NewInteractionHandler(engine *recommender.Engine, producer *messaging.Producer,
	m *metrics.Metrics, logger *logrus.Logger) *InteractionHandler {
	return &InteractionHandler{
		engine:   engine,
		producer: producer,
		metrics:  m,
		logger:   logger,
	}
}

// RecordInteraction handles POST /api/interaction.
func (h *InteractionHandler) RecordInteraction(c *gin.Context) {
	var req models.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", "Request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, "VALIDATION_FAILED", err.Error())
		return
	}

	userID, ok := resolveUserID(c, req.UserID)
	if !ok {
		badRequest(c, "MISSING_USER", "user_id is required")
		return
	}

	kind := req.InteractionType
	if kind == "" {
		kind = models.InteractionView
	}

	if err := h.engine.RecordInteraction(c.Request.Context(), userID, req.AssessmentID, kind, 0, nil); err != nil {
		badRequest(c, "INVALID_INTERACTION", err.Error())
		return
	}

	h.metrics.Interactions.WithLabelValues(kind).Inc()
	h.producer.PublishInteraction(messaging.InteractionEvent{
		UserID:       userID,
		AssessmentID: req.AssessmentID,
		Kind:         kind,
		Timestamp:    time.Now(),
	})

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// RecordFeedback handles POST /api/feedback. A rating is a `rate`
// interaction; when the client omits the feature context, a neutral
// default keeps the online learner fed.
func (h *InteractionHandler) RecordFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", "Request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, "VALIDATION_FAILED", err.Error())
		return
	}

	userID, ok := resolveUserID(c, req.UserID)
	if !ok {
		badRequest(c, "MISSING_USER", "user_id is required")
		return
	}

	fctx := req.Context
	if fctx == nil {
		fctx = &models.FeatureContext{
			Features:       map[string]float64{"semantic_similarity": 0.5},
			PredictedScore: 10.0,
		}
	}

	if err := h.engine.RecordInteraction(c.Request.Context(), userID, req.AssessmentID,
		models.InteractionRate, req.Rating, fctx); err != nil {
		badRequest(c, "INVALID_FEEDBACK", err.Error())
		return
	}

	h.metrics.Feedback.Inc()
	h.metrics.ModelUpdates.Inc()
	h.producer.PublishInteraction(messaging.InteractionEvent{
		UserID:       userID,
		AssessmentID: req.AssessmentID,
		Kind:         models.InteractionRate,
		Rating:       req.Rating,
		Timestamp:    time.Now(),
	})

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func resolveUserID(c *gin.Context, fromBody string) (string, bool) {
	if fromBody != "" {
		return fromBody, true
	}
	return middleware.SessionUserID(c)
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
