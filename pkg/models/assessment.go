package models

// Suitability lists the audiences an assessment is designed for.
type Suitability struct {
	Roles      []string `json:"roles"`
	Levels     []string `json:"levels"`
	Industries []string `json:"industries"`
	Goals      []string `json:"goals"`
}

// AssessmentMetrics carries display metadata about an assessment.
type AssessmentMetrics struct {
	CompletionTime string `json:"completion_time"`
	Validity       string `json:"validity,omitempty"`
	Reliability    string `json:"reliability,omitempty"`
	Impact         string `json:"impact,omitempty"`
	MobileFriendly bool   `json:"mobile_friendly"`
}

// Assessment is a single catalogue item. Assessments are loaded once at
// startup and never mutated, so they are safe for concurrent reads.
type Assessment struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	Description  string            `json:"description"`
	DetailedInfo string            `json:"detailed_info"`
	UseCases     []string          `json:"use_cases"`
	Benefits     []string          `json:"benefits"`
	KeyFeatures  []string          `json:"key_features"`
	SuitableFor  Suitability       `json:"suitable_for"`
	Metrics      AssessmentMetrics `json:"metrics"`
	Link         string            `json:"link"`
}
