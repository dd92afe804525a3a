package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/auth"
	"github.com/apteva/apteva/internal/messaging"
	"github.com/apteva/apteva/internal/metrics"
	"github.com/apteva/apteva/internal/recommender"
	"github.com/apteva/apteva/internal/storage"
)

type Handlers struct {
	Recommendation *RecommendationHandler
	Interaction    *InteractionHandler
	Insights       *InsightsHandler
	Health         *HealthHandler
}

func New(engine *recommender.Engine, sessions *auth.SessionService, store *storage.Store,
	producer *messaging.Producer, m *metrics.Metrics, logger *logrus.Logger) *Handlers {
	return &Handlers{
		Recommendation: NewRecommendationHandler(engine, sessions, m, logger),
		Interaction:    NewInteractionHandler(engine, producer, m, logger),
		Insights:       NewInsightsHandler(engine, logger),
		Health:         NewHealthHandler(engine, store, logger),
	}
}
