package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apteva/apteva/pkg/models"
)

func TestComputeFeatures(t *testing.T) {
	a := models.Assessment{
		ID: "test",
		SuitableFor: models.Suitability{
			Roles:      []string{"Software Developers", "Engineers"},
			Levels:     []string{"Mid", "Senior"},
			Industries: []string{"Technology", "Finance"},
			Goals:      []string{"Hiring", "Development"},
		},
	}

	t.Run("role match is substring and case insensitive", func(t *testing.T) {
		req := models.RecommendationRequest{Role: "developer"}
		f := computeFeatures(req, a, 0, 0, 0)
		assert.Equal(t, 2.0, f[featRoleMatch])
	})

	t.Run("level match is exact", func(t *testing.T) {
		f := computeFeatures(models.RecommendationRequest{Level: "Senior"}, a, 0, 0, 0)
		assert.Equal(t, 1.0, f[featLevelMatch])

		f = computeFeatures(models.RecommendationRequest{Level: "senior"}, a, 0, 0, 0)
		assert.Zero(t, f[featLevelMatch])
	})

	t.Run("empty criteria contribute nothing", func(t *testing.T) {
		f := computeFeatures(models.RecommendationRequest{}, a, 0.5, 0.2, 0.1)
		assert.Zero(t, f[featRoleMatch])
		assert.Zero(t, f[featGoalMatch])
		assert.Equal(t, 0.5, f[featSemantic])
		assert.Equal(t, 0.2, f[featCollaborative])
		assert.Equal(t, 0.1, f[featFeedback])
	})
}

func TestMatchPercentage(t *testing.T) {
	max := sumWeights(defaultFeatureWeights()) + 2

	t.Run("always within bounds", func(t *testing.T) {
		for _, total := range []float64{-100, -1, 0, 5, 10, max, max * 2, 1e6} {
			pct := matchPercentage(total, max)
			assert.GreaterOrEqual(t, pct, 0)
			assert.LessOrEqual(t, pct, 100)
		}
	})

	t.Run("higher total never lowers the percentage", func(t *testing.T) {
		prev := -1
		for total := 0.0; total <= max; total += 0.5 {
			pct := matchPercentage(total, max)
			assert.GreaterOrEqual(t, pct, prev)
			prev = pct
		}
	})

	t.Run("midpoint maps to fifty", func(t *testing.T) {
		assert.Equal(t, 50, matchPercentage(max/2, max))
	})
}

func TestAssessQuality(t *testing.T) {
	mk := func(pcts ...int) []models.Recommendation {
		recs := make([]models.Recommendation, len(pcts))
		for i, p := range pcts {
			recs[i] = models.Recommendation{MatchPercentage: p}
		}
		return recs
	}

	t.Run("empty set is no_match", func(t *testing.T) {
		out := assessQuality(nil)
		assert.Equal(t, models.QualityNoMatch, out.Quality)
		assert.NotEmpty(t, out.Suggestions)
	})

	t.Run("high quality", func(t *testing.T) {
		out := assessQuality(mk(80, 70, 60))
		assert.Equal(t, models.QualityHigh, out.Quality)
		assert.Empty(t, out.Suggestions)
		assert.Equal(t, 80, out.Metadata.TopScore)
	})

	t.Run("medium quality", func(t *testing.T) {
		out := assessQuality(mk(55, 45, 35))
		assert.Equal(t, models.QualityMedium, out.Quality)
	})

	t.Run("low quality carries suggestions", func(t *testing.T) {
		out := assessQuality(mk(35, 20, 10))
		assert.Equal(t, models.QualityLow, out.Quality)
		assert.NotEmpty(t, out.Suggestions)
	})

	t.Run("no_match truncates to three results", func(t *testing.T) {
		out := assessQuality(mk(20, 15, 10, 5, 5))
		require.Equal(t, models.QualityNoMatch, out.Quality)
		assert.Len(t, out.Recommendations, 3)
		assert.Equal(t, 3, out.Metadata.TotalFound)
	})
}

func TestLearnFromFeedback(t *testing.T) {
	t.Run("positive error raises active weights", func(t *testing.T) {
		weights := defaultFeatureWeights()
		before := weights[featSemantic]
		ctx := models.FeatureContext{
			Features:       map[string]float64{featSemantic: 1.0},
			PredictedScore: 2.0,
		}
		learnFromFeedback(weights, ctx, 5, 21.5, 0.01)
		assert.Greater(t, weights[featSemantic], before)
	})

	t.Run("inactive features untouched", func(t *testing.T) {
		weights := defaultFeatureWeights()
		before := weights[featRoleMatch]
		ctx := models.FeatureContext{
			Features:       map[string]float64{featRoleMatch: 0, featSemantic: 1},
			PredictedScore: 2.0,
		}
		learnFromFeedback(weights, ctx, 5, 21.5, 0.01)
		assert.Equal(t, before, weights[featRoleMatch])
	})

	t.Run("weights stay clamped under extreme error", func(t *testing.T) {
		weights := defaultFeatureWeights()
		ctx := models.FeatureContext{
			Features:       map[string]float64{featSemantic: 1e9},
			PredictedScore: -1e9,
		}
		learnFromFeedback(weights, ctx, 5, 21.5, 0.01)
		assert.Equal(t, weightCeiling, weights[featSemantic])

		ctx.PredictedScore = 1e12
		ctx.Features = map[string]float64{featCollaborative: 1e9}
		learnFromFeedback(weights, ctx, 1, 21.5, 0.01)
		assert.Equal(t, weightFloor, weights[featCollaborative])

		for name, w := range weights {
			assert.GreaterOrEqual(t, w, weightFloor, name)
			assert.LessOrEqual(t, w, weightCeiling, name)
		}
	})
}
