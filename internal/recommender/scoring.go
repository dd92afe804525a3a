package recommender

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/apteva/apteva/pkg/models"
)

// Feature names shared between the scoring engine, the feature-context
// snapshots sent back by clients, and the online learner.
const (
	featRoleMatch     = "role_match"
	featGoalMatch     = "goal_match"
	featLevelMatch    = "level_match"
	featIndustryMatch = "industry_match"
	featSemantic      = "semantic_similarity"
	featCollaborative = "collaborative_score"
	featFeedback      = "feedback_boost"
)

func defaultFeatureWeights() map[string]float64 {
	return map[string]float64{
		featRoleMatch:     3.0,
		featGoalMatch:     3.0,
		featLevelMatch:    2.0,
		featIndustryMatch: 2.0,
		featSemantic:      4.0,
		featCollaborative: 3.5,
		featFeedback:      2.0,
	}
}

// computeFeatures derives the per-item feature values for a request. Rule
// matches use case-insensitive substring containment so "Developer" matches
// "Software Developers"; levels require an exact entry.
func computeFeatures(req models.RecommendationRequest, a models.Assessment, semantic, collaborative, feedbackBoost float64) map[string]float64 {
	features := map[string]float64{
		featSemantic:      semantic,
		featCollaborative: collaborative,
		featFeedback:      feedbackBoost,
	}
	if req.Role != "" && containsFold(a.SuitableFor.Roles, req.Role) {
		features[featRoleMatch] = 2
	}
	if req.Goal != "" && containsFold(a.SuitableFor.Goals, req.Goal) {
		features[featGoalMatch] = 2
	}
	if req.Level != "" && containsExact(a.SuitableFor.Levels, req.Level) {
		features[featLevelMatch] = 1
	}
	if req.Industry != "" && containsFold(a.SuitableFor.Industries, req.Industry) {
		features[featIndustryMatch] = 1
	}
	return features
}

func containsFold(haystack []string, needle string) bool {
	n := strings.ToLower(needle)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), n) {
			return true
		}
	}
	return false
}

func containsExact(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

// weightedTotal applies the current feature weights; unknown features fall
// back to weight 1 so a stale client snapshot can never zero out a signal.
func weightedTotal(features, weights map[string]float64) float64 {
	var total float64
	for name, value := range features {
		w, ok := weights[name]
		if !ok {
			w = 1
		}
		total += w * value
	}
	return total
}

// matchPercentage maps a raw total onto [0,100] through a sigmoid centered
// at the midpoint of the achievable range, spreading mid-range scores and
// compressing the extremes.
func matchPercentage(total, maxAchievable float64) int {
	rawPct := total / maxAchievable * 100
	pct := int(100 / (1 + math.Exp(-0.05*(rawPct-50))))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

func sortRecommendations(results []models.Recommendation) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore > results[j].TotalScore
		}
		return results[i].Assessment.ID < results[j].Assessment.ID
	})
}

// assessQuality derives a result-set verdict from the score distribution,
// with user-facing guidance for weak matches. Poor result sets are truncated
// to three entries.
func assessQuality(recs []models.Recommendation) *models.ValidatedRecommendations {
	if len(recs) == 0 {
		return &models.ValidatedRecommendations{
			Recommendations: []models.Recommendation{},
			Quality:         models.QualityNoMatch,
			Message:         "No relevant assessments found for the selected criteria.",
			Suggestions: []string{
				"Try adjusting role, level, goal, or provide a clearer description.",
				"Use more general terms in your description",
			},
		}
	}

	topScore := recs[0].MatchPercentage
	n := len(recs)
	if n > 3 {
		n = 3
	}
	var sum int
	for _, r := range recs[:n] {
		sum += r.MatchPercentage
	}
	avgTop3 := float64(sum) / float64(n)

	out := &models.ValidatedRecommendations{
		Recommendations: recs,
		Suggestions:     []string{},
		Metadata: models.ResultMetadata{
			TopScore:   topScore,
			AvgScore:   avgTop3,
			TotalFound: len(recs),
		},
	}

	switch {
	case topScore >= 70 && avgTop3 >= 60:
		out.Quality = models.QualityHigh
		out.Message = fmt.Sprintf("Found %d excellent matches for your criteria!", len(recs))
	case topScore >= 50 && avgTop3 >= 40:
		out.Quality = models.QualityMedium
		out.Message = fmt.Sprintf("Found %d assessments.", len(recs))
	case topScore >= 30:
		out.Quality = models.QualityLow
		out.Message = "We found some assessments, but they may not be a perfect fit."
		out.Suggestions = []string{
			"Try different role or industry selections",
			"Use simpler, more common terms in your description",
			"Remove very specific requirements to see more options",
			"Consider browsing all assessments in a category",
		}
	default:
		out.Quality = models.QualityNoMatch
		out.Message = "No strong matches found for your current criteria."
		out.Suggestions = []string{
			"Try selecting different options from the dropdowns",
			"Use more general terms (e.g., \"leadership skills\" instead of specific job titles)",
			"Clear some filters to see broader results",
			"Check if your description contains typos or very specific jargon",
		}
		if len(out.Recommendations) > 3 {
			out.Recommendations = out.Recommendations[:3]
		}
		out.Metadata.TotalFound = len(out.Recommendations)
	}
	return out
}
