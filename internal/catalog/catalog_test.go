package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	require.Len(t, cat, 12)

	t.Run("ids are unique and stable", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, a := range cat {
			assert.NotEmpty(t, a.ID)
			assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
			seen[a.ID] = true
		}
	})

	t.Run("every item carries suitability attributes", func(t *testing.T) {
		for _, a := range cat {
			assert.NotEmpty(t, a.Name, a.ID)
			assert.NotEmpty(t, a.Description, a.ID)
			assert.NotEmpty(t, a.SuitableFor.Roles, a.ID)
			assert.NotEmpty(t, a.SuitableFor.Levels, a.ID)
			assert.NotEmpty(t, a.SuitableFor.Goals, a.ID)
		}
	})

	t.Run("ByID round trip", func(t *testing.T) {
		a := cat.ByID("coding-simulations")
		require.NotNil(t, a)
		assert.Equal(t, "coding-simulations", a.ID)

		assert.Nil(t, cat.ByID("nope"))
	})

	t.Run("IDs preserve catalogue order", func(t *testing.T) {
		ids := cat.IDs()
		require.Len(t, ids, len(cat))
		for i, a := range cat {
			assert.Equal(t, a.ID, ids[i])
		}
	})
}

func TestDocument(t *testing.T) {
	cat := Default()
	a := cat.ByID("coding-simulations")
	require.NotNil(t, a)

	doc := Document(*a)
	assert.Equal(t, strings.ToLower(doc), doc, "documents are lowercased")
	// Name terms are repeated so they dominate the term weighting.
	assert.GreaterOrEqual(t, strings.Count(doc, strings.ToLower(a.Name)), 3)
	assert.Contains(t, doc, strings.ToLower(a.Category))
}
