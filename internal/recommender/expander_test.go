package recommender

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpander_Expand(t *testing.T) {
	e := NewExpander(10)

	t.Run("appends up to two synonyms per word", func(t *testing.T) {
		out := e.Expand("developer assessment")
		words := strings.Fields(out)
		assert.Equal(t, []string{"developer", "assessment", "engineer", "programmer"}, words)
	})

	t.Run("original words keep their order", func(t *testing.T) {
		out := e.Expand("senior manager hiring")
		words := strings.Fields(out)
		assert.Equal(t, "senior", words[0])
		assert.Equal(t, "manager", words[1])
		assert.Equal(t, "hiring", words[2])
	})

	t.Run("synonyms are deduplicated", func(t *testing.T) {
		out := e.Expand("developer engineer")
		words := strings.Fields(out)
		seen := make(map[string]int)
		for _, w := range words {
			seen[w]++
		}
		for w, n := range seen {
			assert.Equal(t, 1, n, "duplicate word %q", w)
		}
	})

	t.Run("empty query passes through", func(t *testing.T) {
		assert.Equal(t, "", e.Expand(""))
	})

	t.Run("unknown words pass through unchanged", func(t *testing.T) {
		assert.Equal(t, "quantum blockchain", e.Expand("Quantum Blockchain"))
	})
}

func TestExpander_Memoization(t *testing.T) {
	e := NewExpander(2)

	first := e.Expand("developer")
	assert.Equal(t, int64(0), e.CacheHits())

	second := e.Expand("developer")
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), e.CacheHits())

	// Fill past capacity; the oldest unused entry is evicted.
	e.Expand("manager")
	e.Expand("analyst")

	e.Expand("developer")
	assert.Equal(t, int64(1), e.CacheHits(), "evicted entry must be recomputed")
}
