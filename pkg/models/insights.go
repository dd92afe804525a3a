package models

// InsightMetrics aggregates engine usage counters.
type InsightMetrics struct {
	TotalRecommendations int64   `json:"total_recommendations"`
	TotalInteractions    int     `json:"total_interactions"`
	UniqueUsers          int     `json:"unique_users"`
	TotalFeedback        int64   `json:"total_feedback"`
	AvgRating            float64 `json:"avg_rating"`
	ModelUpdates         int64   `json:"model_updates"`
}

// CollaborativeStatus reports the state of the item-item similarity model.
type CollaborativeStatus struct {
	UsersTracked          int    `json:"users_tracked"`
	ItemsWithSimilarities int    `json:"items_with_similarities"`
	Status                string `json:"status"` // active or warming_up
}

// ModelInfo describes the content model backing semantic similarity.
type ModelInfo struct {
	EmbeddingMethod string `json:"embedding_method"`
	EmbeddingsCount int    `json:"embeddings_count"`
	PopularItems    int    `json:"popular_items"`
}

// Insights is a read-only snapshot of engine internals for observability.
type Insights struct {
	FeatureWeights         map[string]float64  `json:"feature_weights"`
	Metrics                InsightMetrics      `json:"metrics"`
	CollaborativeFiltering CollaborativeStatus `json:"collaborative_filtering"`
	ModelInfo              ModelInfo           `json:"model_info"`
}
