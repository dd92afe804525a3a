package models

import "time"

// Interaction kinds, each with a fixed base weight in the interaction store.
const (
	InteractionView   = "view"
	InteractionClick  = "click"
	InteractionSelect = "select"
	InteractionRate   = "rate"
)

// FeatureContext is the feature snapshot attached to a rating, used by the
// online learner to attribute prediction error back to scoring features.
type FeatureContext struct {
	Features       map[string]float64 `json:"features" validate:"required"`
	PredictedScore float64            `json:"predicted_score"`
}

// InteractionRequest records an implicit user action against an assessment.
type InteractionRequest struct {
	UserID          string `json:"user_id"`
	AssessmentID    string `json:"assessment_id" validate:"required"`
	InteractionType string `json:"interaction_type" validate:"omitempty,oneof=view click select rate"`
}

// Validate checks field-level constraints.
func (r *InteractionRequest) Validate() error {
	return validate.Struct(r)
}

// FeedbackRequest records an explicit rating, optionally with the feature
// context needed for online weight adaptation.
type FeedbackRequest struct {
	UserID       string          `json:"user_id"`
	AssessmentID string          `json:"assessment_id" validate:"required"`
	Rating       int             `json:"rating" validate:"required,min=1,max=5"`
	Context      *FeatureContext `json:"context,omitempty"`
}

// Validate checks field-level constraints.
func (r *FeedbackRequest) Validate() error {
	return validate.Struct(r)
}

// FeedbackEvent is a stored rating. Events live in a bounded in-memory log
// (oldest evicted first) and are mirrored to the persistence collaborator.
type FeedbackEvent struct {
	UserID       string          `json:"user_id"`
	AssessmentID string          `json:"assessment_id"`
	Rating       int             `json:"rating"`
	Timestamp    time.Time       `json:"timestamp"`
	Context      *FeatureContext `json:"context,omitempty"`
}
