package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apteva/apteva/internal/catalog"
)

func TestTextIndex_Similarities(t *testing.T) {
	cat := catalog.Default()
	idx := NewTextIndex(cat, 500)

	t.Run("one score per catalogue item", func(t *testing.T) {
		scores := idx.Similarities("coding programming developer")
		require.Len(t, scores, len(cat))
		for _, s := range scores {
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	})

	t.Run("best match normalizes to one", func(t *testing.T) {
		scores := idx.Similarities("coding simulations")
		var max float64
		for _, s := range scores {
			if s > max {
				max = s
			}
		}
		assert.InDelta(t, 1.0, max, 1e-6)
	})

	t.Run("coding query favors technical assessments", func(t *testing.T) {
		scores := idx.Similarities("coding programming software")
		byID := make(map[string]float64, len(cat))
		for i, a := range cat {
			byID[a.ID] = scores[i]
		}
		assert.Greater(t, byID["coding-simulations"], byID["assessment-centers"])
	})

	t.Run("empty query yields all zeros", func(t *testing.T) {
		for _, s := range idx.Similarities("") {
			assert.Zero(t, s)
		}
	})

	t.Run("vocabulary capped to max features", func(t *testing.T) {
		small := NewTextIndex(cat, 50)
		assert.Equal(t, 50, small.VocabularySize())
	})
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("the quick brown fox and a dog")
	assert.Equal(t, []string{"quick", "brown", "fox", "dog"}, tokens)
}

func TestNgrams(t *testing.T) {
	out := ngrams([]string{"alpha", "beta", "gamma"})
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "alpha beta")
	assert.Contains(t, out, "alpha beta gamma")
	assert.Contains(t, out, "beta gamma")
	assert.Len(t, out, 6)
}
