package recommender

import (
	"sort"

	"github.com/apteva/apteva/internal/catalog"
	"github.com/apteva/apteva/pkg/models"
)

// buildPopularList ranks items by accumulated interaction score plus
// normalized ratings and returns the top n ids. With no activity yet it
// falls back to the first n catalogue items so cold-start users always get
// a non-empty list.
func buildPopularList(interactions map[string]map[string]float64, feedback []models.FeedbackEvent, cat catalog.Catalog, n int) []string {
	scores := make(map[string]float64)
	for _, items := range interactions {
		for id, s := range items {
			scores[id] += s
		}
	}
	for _, fb := range feedback {
		scores[fb.AssessmentID] += float64(fb.Rating) / 5
	}

	if len(scores) == 0 {
		ids := cat.IDs()
		if len(ids) > n {
			ids = ids[:n]
		}
		return ids
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > n {
		ids = ids[:n]
	}
	return ids
}
