package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apteva/apteva/internal/catalog"
	"github.com/apteva/apteva/pkg/models"
)

func TestBuildPopularList(t *testing.T) {
	cat := catalog.Default()

	t.Run("falls back to catalogue order when empty", func(t *testing.T) {
		got := buildPopularList(nil, nil, cat, 10)
		assert.Equal(t, cat.IDs()[:10], got)
	})

	t.Run("orders by aggregate interaction score", func(t *testing.T) {
		interactions := map[string]map[string]float64{
			"u1": {"opq": 0.5, "sjt": 2.0},
			"u2": {"sjt": 1.0},
		}
		got := buildPopularList(interactions, nil, cat, 10)
		assert.Equal(t, "sjt", got[0])
		assert.Equal(t, "opq", got[1])
	})

	t.Run("feedback ratings contribute normalized score", func(t *testing.T) {
		feedback := []models.FeedbackEvent{
			{AssessmentID: "mq", Rating: 5},
			{AssessmentID: "mq", Rating: 5},
			{AssessmentID: "opq", Rating: 1},
		}
		got := buildPopularList(nil, feedback, cat, 2)
		assert.Equal(t, []string{"mq", "opq"}, got)
	})

	t.Run("respects size cap", func(t *testing.T) {
		interactions := map[string]map[string]float64{
			"u1": {"opq": 1, "sjt": 2, "mq": 3, "rjp": 4},
		}
		got := buildPopularList(interactions, nil, cat, 2)
		assert.Len(t, got, 2)
		assert.Equal(t, []string{"rjp", "mq"}, got)
	})
}
