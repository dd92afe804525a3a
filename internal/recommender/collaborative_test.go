package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSimilarityTable(t *testing.T) {
	t.Run("needs at least two users", func(t *testing.T) {
		interactions := map[string]map[string]float64{
			"u1": {"a": 1, "b": 1},
		}
		assert.Nil(t, buildSimilarityTable(interactions, 20))
	})

	t.Run("needs at least two items", func(t *testing.T) {
		interactions := map[string]map[string]float64{
			"u1": {"a": 1},
			"u2": {"a": 0.5},
		}
		assert.Nil(t, buildSimilarityTable(interactions, 20))
	})

	t.Run("co-interacted items are similar", func(t *testing.T) {
		// a and b always appear together; c never overlaps with them.
		interactions := map[string]map[string]float64{
			"u1": {"a": 1.0, "b": 0.9},
			"u2": {"a": 0.8, "b": 1.0},
			"u3": {"c": 1.0},
		}
		table := buildSimilarityTable(interactions, 20)
		require.NotNil(t, table)
		assert.Equal(t, 3, table.Items())

		sims := table.Similar("a")
		require.NotNil(t, sims)
		assert.Greater(t, sims["b"], sims["c"])
		assert.InDelta(t, 1.0, sims["b"], 0.05)
	})

	t.Run("neighbors capped at topK", func(t *testing.T) {
		interactions := map[string]map[string]float64{
			"u1": {"a": 1, "b": 1, "c": 1, "d": 1},
			"u2": {"a": 1, "b": 1, "c": 1, "d": 1},
		}
		table := buildSimilarityTable(interactions, 2)
		require.NotNil(t, table)
		assert.Len(t, table.Similar("a"), 2)
	})
}

func TestCollaborativeScore(t *testing.T) {
	table := &SimilarityTable{neighbors: map[string]map[string]float64{
		"a": {"b": 0.9, "c": 0.1},
		"b": {"a": 0.9},
	}}

	t.Run("weighted average over history", func(t *testing.T) {
		history := map[string]float64{"a": 2.0}
		got := collaborativeScore(table, history, "b")
		// score = 0.9*2.0, totalSim = 0.9
		assert.InDelta(t, 2.0, got, 1e-9)
	})

	t.Run("zero for empty history", func(t *testing.T) {
		assert.Zero(t, collaborativeScore(table, nil, "b"))
	})

	t.Run("zero without similarity overlap", func(t *testing.T) {
		history := map[string]float64{"z": 5.0}
		assert.Zero(t, collaborativeScore(table, history, "b"))
	})

	t.Run("zero for nil table", func(t *testing.T) {
		assert.Zero(t, collaborativeScore(nil, map[string]float64{"a": 1}, "b"))
	})
}
