package recommender

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// SimilarityTable holds, for each item with interaction history, its most
// similar items by user co-interaction. Tables are immutable once built and
// swapped in atomically by the engine.
type SimilarityTable struct {
	neighbors map[string]map[string]float64
}

// Similar returns the neighbor scores for an item, or nil when the item has
// no entry.
func (t *SimilarityTable) Similar(itemID string) map[string]float64 {
	if t == nil {
		return nil
	}
	return t.neighbors[itemID]
}

// Items reports how many items have similarity entries.
func (t *SimilarityTable) Items() int {
	if t == nil {
		return 0
	}
	return len(t.neighbors)
}

// buildSimilarityTable computes item-item cosine similarity from the
// user-item interaction scores and keeps the topK neighbors per item.
// Returns nil when there is not enough signal (fewer than two users or two
// items), in which case the caller keeps the previous table.
func buildSimilarityTable(interactions map[string]map[string]float64, topK int) *SimilarityTable {
	if len(interactions) < 2 {
		return nil
	}

	itemSet := make(map[string]bool)
	for _, items := range interactions {
		for id := range items {
			itemSet[id] = true
		}
	}
	if len(itemSet) < 2 {
		return nil
	}

	users := make([]string, 0, len(interactions))
	for u := range interactions {
		users = append(users, u)
	}
	sort.Strings(users)
	items := make([]string, 0, len(itemSet))
	for id := range itemSet {
		items = append(items, id)
	}
	sort.Strings(items)

	col := make(map[string]int, len(items))
	for i, id := range items {
		col[id] = i
	}

	// Small epsilon keeps zero columns out of degenerate 0/0 cosines.
	m := mat.NewDense(len(users), len(items), nil)
	for r, u := range users {
		scores := interactions[u]
		for c := range items {
			m.Set(r, c, normEpsilon)
		}
		for id, s := range scores {
			m.Set(r, col[id], s+normEpsilon)
		}
	}

	vecs := make([][]float64, len(items))
	norms := make([]float64, len(items))
	for c := range items {
		v := mat.Col(nil, c, m)
		vecs[c] = v
		norms[c] = mat.Norm(mat.NewVecDense(len(v), v), 2)
	}

	neighbors := make(map[string]map[string]float64, len(items))
	for i, id := range items {
		type scored struct {
			id  string
			sim float64
		}
		sims := make([]scored, 0, len(items)-1)
		for j, other := range items {
			if i == j {
				continue
			}
			var dot float64
			for k := range vecs[i] {
				dot += vecs[i][k] * vecs[j][k]
			}
			sim := dot / (norms[i] * norms[j])
			if math.IsNaN(sim) {
				sim = 0
			}
			sims = append(sims, scored{id: other, sim: sim})
		}
		sort.Slice(sims, func(a, b int) bool {
			if sims[a].sim != sims[b].sim {
				return sims[a].sim > sims[b].sim
			}
			return sims[a].id < sims[b].id
		})
		if len(sims) > topK {
			sims = sims[:topK]
		}
		entry := make(map[string]float64, len(sims))
		for _, s := range sims {
			entry[s.id] = s.sim
		}
		neighbors[id] = entry
	}
	return &SimilarityTable{neighbors: neighbors}
}

// collaborativeScore predicts a score for candidateID from the user's past
// interactions, weighting each past item's score by its similarity to the
// candidate and normalizing by total similarity mass.
func collaborativeScore(table *SimilarityTable, history map[string]float64, candidateID string) float64 {
	if table == nil || len(history) == 0 {
		return 0
	}
	var score, totalSim float64
	for pastID, pastScore := range history {
		sims := table.Similar(pastID)
		if sims == nil {
			continue
		}
		sim := sims[candidateID]
		score += sim * pastScore
		totalSim += math.Abs(sim)
	}
	if totalSim > 0 {
		return score / totalSim
	}
	return 0
}
