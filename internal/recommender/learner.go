package recommender

import "github.com/apteva/apteva/pkg/models"

const (
	weightFloor   = 0.1
	weightCeiling = 10.0
)

// learnFromFeedback nudges the feature weights toward reducing the gap
// between the user's rating and the score the engine predicted when it made
// the recommendation. Both sides are normalized to [0,1] before the error
// is computed. One rating is one noisy gradient sample; the clamp keeps an
// outlier from blowing up a weight. Callers must hold the feedback lock.
func learnFromFeedback(weights map[string]float64, ctx models.FeatureContext, rating int, maxAchievable, learningRate float64) {
	err := float64(rating)/5 - ctx.PredictedScore/maxAchievable
	for name, value := range ctx.Features {
		if value == 0 {
			continue
		}
		w, ok := weights[name]
		if !ok {
			continue
		}
		w += learningRate * err * value
		if w < weightFloor {
			w = weightFloor
		}
		if w > weightCeiling {
			w = weightCeiling
		}
		weights[name] = w
	}
}
