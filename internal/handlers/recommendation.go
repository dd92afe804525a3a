package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/auth"
	"github.com/apteva/apteva/internal/metrics"
	"github.com/apteva/apteva/internal/middleware"
	"github.com/apteva/apteva/internal/recommender"
	"github.com/apteva/apteva/pkg/models"
)

type RecommendationHandler struct {
	engine   *recommender.Engine
	sessions *auth.SessionService
	metrics  *metrics.Metrics
	logger   *logrus.Logger
}

func NewRecommendationHandler(engine *recommender.Engine, sessions *auth.SessionService,
	m *metrics.Metrics, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		engine:   engine,
		sessions: sessions,
		metrics:  m,
		logger:   logger,
	}
}

// Recommend handles POST /api/recommend. The caller must supply at least
// one criterion. A user id is resolved from the body, then the session
// token; with neither, a fresh anonymous session is minted and returned so
// the client stays recognizable. The top three results are recorded as
// view interactions, which is what seeds the collaborative filter.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Request body must be valid JSON",
			},
		})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	if !req.HasCriteria() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "MISSING_CRITERIA",
				"message": "Please select at least one criterion (role, level, industry, goal, or enter a description)",
			},
		})
		return
	}

	userID := req.UserID
	var sessionToken string
	if userID == "" {
		if id, ok := middleware.SessionUserID(c); ok {
			userID = id
		} else {
			id, token, err := h.sessions.NewSession()
			if err != nil {
				h.logger.WithError(err).Error("Failed to mint session")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{
						"code":    "SESSION_FAILED",
						"message": "Failed to create session",
					},
				})
				return
			}
			userID = id
			sessionToken = token
		}
	}
	req.UserID = userID

	userType := "returning"
	if h.engine.NewUser(userID) {
		userType = "new"
	}

	result := h.engine.Recommend(c.Request.Context(), req, req.TopK)
	h.metrics.RecommendationRequests.WithLabelValues(userType).Inc()

	// Seeing the top results is itself a weak signal.
	top := len(result.Recommendations)
	if top > 3 {
		top = 3
	}
	for _, rec := range result.Recommendations[:top] {
		if err := h.engine.RecordInteraction(c.Request.Context(), userID,
			rec.Assessment.ID, models.InteractionView, 0, nil); err != nil {
			h.logger.WithError(err).Warn("Failed to record result view")
		}
	}

	resp := gin.H{
		"status":          "success",
		"user_id":         userID,
		"recommendations": result.Recommendations,
		"quality":         result.Quality,
		"message":         result.Message,
		"suggestions":     result.Suggestions,
		"metadata":        result.Metadata,
	}
	if sessionToken != "" {
		resp["session_token"] = sessionToken
		c.Header("X-Session-Token", sessionToken)
	}
	c.JSON(http.StatusOK, resp)
}
