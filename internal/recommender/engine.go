package recommender

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/catalog"
	"github.com/apteva/apteva/internal/config"
	"github.com/apteva/apteva/pkg/models"
)

// Persistence is the optional durability collaborator. Every method is
// best-effort: the engine logs failures and keeps serving from memory.
type Persistence interface {
	SaveFeedback(ctx context.Context, fb models.FeedbackEvent) error
	SaveInteraction(ctx context.Context, userID, assessmentID string, score float64, lastActivity time.Time) error
	LoadRecentFeedback(ctx context.Context, limit int) ([]models.FeedbackEvent, error)
}

// Interaction base weights per kind. A rating scales the base by rating/5.
var interactionWeights = map[string]float64{
	models.InteractionView:   0.1,
	models.InteractionClick:  0.3,
	models.InteractionSelect: 0.5,
	models.InteractionRate:   1.0,
}

// Pair-count thresholds at which the similarity table and popular list are
// rebuilt, on top of the every-50 cadence.
var rebuildThresholds = map[int]bool{
	5: true, 10: true, 20: true, 30: true,
	50: true, 100: true, 200: true, 500: true,
}

// userProfile is the engine's per-user ledger. Item scores only grow;
// eviction is the sole way a score disappears.
type userProfile struct {
	firstSeen    time.Time
	lastSeen     time.Time
	lastActivity time.Time
	items        map[string]float64
}

// Engine ranks the assessment catalogue for a request by combining rule
// matches, text similarity, collaborative filtering and feedback signals,
// and adapts its feature weights online from ratings.
//
// Locking: mu guards the user map, pair counter and maintenance triggers;
// fbMu guards the feedback log, feature weights and learning counters. When
// both are needed, mu is taken first. Derived tables are published through
// atomic pointers so readers never block on a rebuild.
type Engine struct {
	cfg      config.RecommenderConfig
	log      *logrus.Logger
	catalog  catalog.Catalog
	index    *TextIndex
	expander *Expander
	store    Persistence

	mu        sync.Mutex
	users     map[string]*userProfile
	pairCount int

	fbMu          sync.Mutex
	feedback      []models.FeedbackEvent
	weights       map[string]float64
	totalFeedback int64
	modelUpdates  int64
	avgRating     float64

	similar atomic.Pointer[SimilarityTable]
	popular atomic.Pointer[[]string]

	totalRecommendations atomic.Int64

	now func() time.Time
}

// New builds an engine over the catalogue, warms the feedback log from the
// persistence collaborator when one is configured, and publishes the
// initial popular-items list.
func New(cfg config.RecommenderConfig, cat catalog.Catalog, store Persistence, log *logrus.Logger) *Engine {
	e := &Engine{
		cfg:      cfg,
		log:      log,
		catalog:  cat,
		index:    NewTextIndex(cat, cfg.TFIDFMaxFeatures),
		expander: NewExpander(cfg.SynonymCacheSize),
		store:    store,
		users:    make(map[string]*userProfile),
		weights:  defaultFeatureWeights(),
		now:      time.Now,
	}

	if store != nil {
		fbs, err := store.LoadRecentFeedback(context.Background(), cfg.MaxFeedback)
		if err != nil {
			log.WithError(err).Error("Failed to load persisted feedback")
		} else {
			// Persistence returns newest first; the in-memory log is
			// insertion ordered, oldest first.
			for i, j := 0, len(fbs)-1; i < j; i, j = i+1, j-1 {
				fbs[i], fbs[j] = fbs[j], fbs[i]
			}
			e.feedback = fbs
			e.totalFeedback = int64(len(fbs))
			e.avgRating = meanRating(fbs)
			log.WithField("count", len(fbs)).Info("Loaded feedback from storage")
		}
	}

	popular := buildPopularList(nil, e.feedback, cat, cfg.PopularItems)
	e.popular.Store(&popular)

	log.WithFields(logrus.Fields{
		"items":      len(cat),
		"vocabulary": e.index.VocabularySize(),
	}).Info("Recommendation engine initialized")
	return e
}

// NewUser reports whether no profile exists yet for the id. Profiles are
// created by interactions, not by recommendation requests, so a user who
// has only browsed results is still new.
func (e *Engine) NewUser(userID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.users[userID]
	return !ok
}

// RecordInteraction applies a weighted interaction to the user's profile,
// routes any rating through the feedback pipeline, and runs inline
// maintenance when a counter threshold is crossed.
func (e *Engine) RecordInteraction(ctx context.Context, userID, assessmentID, kind string, rating int, fctx *models.FeatureContext) error {
	if userID == "" || assessmentID == "" {
		return errors.New("user_id and assessment_id are required")
	}
	if rating != 0 && (rating < 1 || rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	w, ok := interactionWeights[kind]
	if !ok {
		w = interactionWeights[models.InteractionView]
	}
	if rating != 0 {
		w *= float64(rating) / 5
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ts := e.now()
	prof, existed := e.users[userID]
	if !existed {
		prof = &userProfile{firstSeen: ts, items: make(map[string]float64)}
		e.users[userID] = prof
	}
	if _, seen := prof.items[assessmentID]; !seen {
		e.pairCount++
	}
	prof.items[assessmentID] += w
	prof.lastSeen = ts
	prof.lastActivity = ts

	if e.store != nil {
		if err := e.store.SaveInteraction(ctx, userID, assessmentID, w, ts); err != nil {
			e.log.WithError(err).Warn("Failed to persist interaction")
		}
	}

	var fbCount int64
	if rating != 0 {
		fbCount = e.recordFeedback(ctx, userID, assessmentID, rating, ts, fctx)
	}

	if rebuildThresholds[e.pairCount] || e.pairCount%50 == 0 {
		e.log.WithField("pairs", e.pairCount).Info("Rebuilding similarity and popularity tables")
		e.rebuildSimilaritiesLocked()
		e.rebuildPopularLocked()
	}
	if !existed && len(e.users)%50 == 0 {
		e.evictStaleLocked(ts)
	}
	if fbCount > 0 && fbCount%20 == 0 {
		e.rebuildPopularLocked()
	}
	return nil
}

// recordFeedback appends to the bounded feedback log, forwards to
// persistence, and runs the online learner when the rating carries a
// feature-context snapshot. Returns the running feedback count. Callers
// hold e.mu; the feedback lock is taken here.
func (e *Engine) recordFeedback(ctx context.Context, userID, assessmentID string, rating int, ts time.Time, fctx *models.FeatureContext) int64 {
	fb := models.FeedbackEvent{
		UserID:       userID,
		AssessmentID: assessmentID,
		Rating:       rating,
		Timestamp:    ts,
		Context:      fctx,
	}

	e.fbMu.Lock()
	defer e.fbMu.Unlock()

	e.feedback = append(e.feedback, fb)
	if len(e.feedback) > e.cfg.MaxFeedback {
		e.feedback = e.feedback[len(e.feedback)-e.cfg.MaxFeedback:]
	}

	if e.store != nil {
		if err := e.store.SaveFeedback(ctx, fb); err != nil {
			e.log.WithError(err).Warn("Failed to persist feedback")
		}
	}

	e.totalFeedback++
	e.avgRating = meanRating(e.feedback)

	if fctx != nil && len(fctx.Features) > 0 {
		learnFromFeedback(e.weights, *fctx, rating, e.maxAchievableLocked(), e.cfg.LearningRate)
		e.modelUpdates++
	}
	return e.totalFeedback
}

// GetRecommendations scores every catalogue item for the request and
// returns the topK, sorted by total score descending.
func (e *Engine) GetRecommendations(ctx context.Context, req models.RecommendationRequest, topK int) []models.Recommendation {
	e.totalRecommendations.Add(1)
	if topK <= 0 {
		topK = e.cfg.DefaultTopK
	}

	e.mu.Lock()
	prof := e.users[req.UserID]
	isNew := prof == nil
	var history map[string]float64
	if prof != nil {
		history = make(map[string]float64, len(prof.items))
		for id, s := range prof.items {
			history[id] = s
		}
	}
	e.mu.Unlock()

	q := req.Query
	if q == "" {
		q = strings.TrimSpace(fmt.Sprintf("%s %s %s %s", req.Role, req.Level, req.Industry, req.Goal))
	}
	sems := e.index.Similarities(e.expander.Expand(q))

	table := e.similar.Load()
	popular := make(map[string]bool)
	if p := e.popular.Load(); p != nil {
		for _, id := range *p {
			popular[id] = true
		}
	}

	e.fbMu.Lock()
	weights := make(map[string]float64, len(e.weights))
	for k, v := range e.weights {
		weights[k] = v
	}
	recent := e.feedback
	if len(recent) > e.cfg.FeedbackWindow {
		recent = recent[len(recent)-e.cfg.FeedbackWindow:]
	}
	boosts := feedbackBoosts(recent)
	e.fbMu.Unlock()

	maxAchievable := sumWeights(weights) + e.cfg.ColdStartBoost

	results := make([]models.Recommendation, 0, len(e.catalog))
	for i, a := range e.catalog {
		var collab float64
		if !isNew {
			collab = collaborativeScore(table, history, a.ID)
		}
		features := computeFeatures(req, a, sems[i], collab, boosts[a.ID])
		total := weightedTotal(features, weights)

		var popBoost float64
		if isNew && popular[a.ID] {
			popBoost = e.cfg.ColdStartBoost
			total += popBoost
		}

		results = append(results, models.Recommendation{
			Assessment:      a,
			TotalScore:      round2(total),
			MatchPercentage: matchPercentage(total, maxAchievable),
			Breakdown: models.ScoreBreakdown{
				Content: round2(weights[featRoleMatch]*features[featRoleMatch] +
					weights[featGoalMatch]*features[featGoalMatch] +
					weights[featLevelMatch]*features[featLevelMatch] +
					weights[featIndustryMatch]*features[featIndustryMatch] +
					weights[featSemantic]*features[featSemantic]),
				Collaborative: round2(weights[featCollaborative] * collab),
				Feedback:      round2(weights[featFeedback] * features[featFeedback]),
				Popularity:    popBoost,
			},
			Features:  features,
			IsNewUser: isNew,
		})
	}

	sortRecommendations(results)
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Recommend runs GetRecommendations and wraps the result set in a quality
// verdict with user-facing guidance.
func (e *Engine) Recommend(ctx context.Context, req models.RecommendationRequest, topK int) *models.ValidatedRecommendations {
	return assessQuality(e.GetRecommendations(ctx, req, topK))
}

// Insights returns a read-only snapshot of model state for observability.
func (e *Engine) Insights() models.Insights {
	e.mu.Lock()
	usersTracked := len(e.users)
	pairs := e.pairCount
	userIDs := make(map[string]bool, len(e.users))
	for id := range e.users {
		userIDs[id] = true
	}
	e.mu.Unlock()

	e.fbMu.Lock()
	weights := make(map[string]float64, len(e.weights))
	for k, v := range e.weights {
		weights[k] = round3(v)
	}
	for _, fb := range e.feedback {
		userIDs[fb.UserID] = true
	}
	totalFeedback := e.totalFeedback
	avgRating := round2(e.avgRating)
	modelUpdates := e.modelUpdates
	e.fbMu.Unlock()

	status := "warming_up"
	if usersTracked >= 1 {
		status = "active"
	}

	var popularCount int
	if p := e.popular.Load(); p != nil {
		popularCount = len(*p)
	}

	return models.Insights{
		FeatureWeights: weights,
		Metrics: models.InsightMetrics{
			TotalRecommendations: e.totalRecommendations.Load(),
			TotalInteractions:    pairs,
			UniqueUsers:          len(userIDs),
			TotalFeedback:        totalFeedback,
			AvgRating:            avgRating,
			ModelUpdates:         modelUpdates,
		},
		CollaborativeFiltering: models.CollaborativeStatus{
			UsersTracked:          usersTracked,
			ItemsWithSimilarities: e.similar.Load().Items(),
			Status:                status,
		},
		ModelInfo: models.ModelInfo{
			EmbeddingMethod: "TF-IDF",
			EmbeddingsCount: e.index.EmbeddingsCount(),
			PopularItems:    popularCount,
		},
	}
}

// ExpanderCacheHits exposes the query memo hit counter.
func (e *Engine) ExpanderCacheHits() int64 {
	return e.expander.CacheHits()
}

// PopularItems returns the current cold-start list.
func (e *Engine) PopularItems() []string {
	p := e.popular.Load()
	if p == nil {
		return nil
	}
	out := make([]string, len(*p))
	copy(out, *p)
	return out
}

// rebuildSimilaritiesLocked recomputes the item similarity table from the
// current interaction matrix. A panic inside the rebuild is contained so
// the previous table stays published. Callers hold e.mu.
func (e *Engine) rebuildSimilaritiesLocked() {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithField("panic", r).Error("Similarity rebuild failed, keeping previous table")
		}
	}()
	interactions := make(map[string]map[string]float64, len(e.users))
	for id, prof := range e.users {
		interactions[id] = prof.items
	}
	if table := buildSimilarityTable(interactions, e.cfg.TopSimilarItems); table != nil {
		e.similar.Store(table)
	}
}

// rebuildPopularLocked recomputes and swaps the popular list. Callers hold
// e.mu; the feedback lock is taken briefly for a snapshot.
func (e *Engine) rebuildPopularLocked() {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithField("panic", r).Error("Popularity rebuild failed, keeping previous list")
		}
	}()
	interactions := make(map[string]map[string]float64, len(e.users))
	for id, prof := range e.users {
		interactions[id] = prof.items
	}
	e.fbMu.Lock()
	fbs := make([]models.FeedbackEvent, len(e.feedback))
	copy(fbs, e.feedback)
	e.fbMu.Unlock()

	popular := buildPopularList(interactions, fbs, e.catalog, e.cfg.PopularItems)
	e.popular.Store(&popular)
}

// evictStaleLocked drops users idle past the retention window. Callers hold
// e.mu.
func (e *Engine) evictStaleLocked(now time.Time) {
	cutoff := now.Add(-e.cfg.UserTTL)
	var evicted int
	for id, prof := range e.users {
		if prof.lastActivity.Before(cutoff) {
			e.pairCount -= len(prof.items)
			delete(e.users, id)
			evicted++
		}
	}
	if evicted > 0 {
		e.log.WithField("evicted", evicted).Info("Evicted stale user profiles")
	}
}

// maxAchievableLocked is the theoretical score ceiling used to normalize
// predictions. Callers hold e.fbMu.
func (e *Engine) maxAchievableLocked() float64 {
	return sumWeights(e.weights) + e.cfg.ColdStartBoost
}

// feedbackBoosts maps item id to (mean rating - 3) * 0.3 over the recent
// feedback slice.
func feedbackBoosts(recent []models.FeedbackEvent) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, fb := range recent {
		sums[fb.AssessmentID] += float64(fb.Rating)
		counts[fb.AssessmentID]++
	}
	boosts := make(map[string]float64, len(sums))
	for id, sum := range sums {
		boosts[id] = (sum/float64(counts[id]) - 3) * 0.3
	}
	return boosts
}

func meanRating(fbs []models.FeedbackEvent) float64 {
	if len(fbs) == 0 {
		return 0
	}
	var sum float64
	for _, fb := range fbs {
		sum += float64(fb.Rating)
	}
	return sum / float64(len(fbs))
}

func sumWeights(weights map[string]float64) float64 {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return sum
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
