package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// RecommendationRequest carries the criteria for a recommendation query.
// At least one criterion (role, level, industry, goal or free-text query)
// must be present; that rule is enforced by HasCriteria at the boundary.
type RecommendationRequest struct {
	UserID   string `json:"user_id,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=Developer Manager Analyst Sales Support Executive"`
	Level    string `json:"level,omitempty"`
	Industry string `json:"industry,omitempty"`
	Goal     string `json:"goal,omitempty"`
	Query    string `json:"query,omitempty"`
	TopK     int    `json:"top_k,omitempty" validate:"omitempty,min=1,max=50"`
}

// Validate checks field-level constraints (role whitelist, top_k range).
func (r *RecommendationRequest) Validate() error {
	return validate.Struct(r)
}

// HasCriteria reports whether at least one search criterion was supplied.
func (r *RecommendationRequest) HasCriteria() bool {
	return r.Role != "" || r.Level != "" || r.Industry != "" || r.Goal != "" || r.Query != ""
}

// ScoreBreakdown decomposes a recommendation's total score per signal group.
type ScoreBreakdown struct {
	Content       float64 `json:"content"`
	Collaborative float64 `json:"collaborative"`
	Feedback      float64 `json:"feedback"`
	Popularity    float64 `json:"popularity"`
}

// Recommendation is a single ranked result. Features carries the raw
// per-feature values so clients can echo them back as the feature context
// of a later rating.
type Recommendation struct {
	Assessment      Assessment         `json:"assessment"`
	TotalScore      float64            `json:"total_score"`
	MatchPercentage int                `json:"match_percentage"`
	Breakdown       ScoreBreakdown     `json:"score_breakdown"`
	Features        map[string]float64 `json:"features"`
	IsNewUser       bool               `json:"is_new_user"`
}

// ResultQuality grades a whole result set.
type ResultQuality string

const (
	QualityHigh    ResultQuality = "high"
	QualityMedium  ResultQuality = "medium"
	QualityLow     ResultQuality = "low"
	QualityNoMatch ResultQuality = "no_match"
)

// ResultMetadata summarises the score distribution of a result set.
type ResultMetadata struct {
	TopScore   int     `json:"top_score"`
	AvgScore   float64 `json:"avg_score"`
	TotalFound int     `json:"total_found"`
}

// ValidatedRecommendations is a ranked result set with a quality verdict
// and user-facing guidance derived from the score distribution.
type ValidatedRecommendations struct {
	Recommendations []Recommendation `json:"recommendations"`
	Quality         ResultQuality    `json:"quality"`
	Message         string           `json:"message"`
	Suggestions     []string         `json:"suggestions"`
	Metadata        ResultMetadata   `json:"metadata"`
}
