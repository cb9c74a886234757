package allocator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/three60abr/abrsim/sim"
)

// OnlineLearning maintains a single scalar trust level, raising it when the
// last segment's predicted distribution matched what was actually viewed
// and lowering it otherwise, then delegates the allocation itself to the
// same trust-blended water-filling Hybrid uses.
type OnlineLearning struct {
	trustLevel    float64
	learnRate     float64
	lastPredicted []float64
}

func NewOnlineLearning(initialTrustLevel, learnRate float64) *OnlineLearning {
	if initialTrustLevel < 0 {
		initialTrustLevel = 0
	}
	if initialTrustLevel > 1 {
		initialTrustLevel = 1
	}
	if learnRate <= 0 {
		learnRate = 0.1
	}
	return &OnlineLearning{trustLevel: initialTrustLevel, learnRate: learnRate}
}

func (o *OnlineLearning) GetBitrateIDs(ctx sim.BitrateAllocatorContext) []int {
	if o.lastPredicted != nil && ctx.PreviousActualDistribution != nil {
		match := floats.Dot(o.lastPredicted, ctx.PreviousActualDistribution)
		if match >= matchThreshold(o.lastPredicted) {
			o.trustLevel += o.learnRate
		} else {
			o.trustLevel -= o.learnRate
		}
		if o.trustLevel < 0 {
			o.trustLevel = 0
		}
		if o.trustLevel > 1 {
			o.trustLevel = 1
		}
	}
	o.lastPredicted = append([]float64(nil), ctx.PredictedDistribution...)

	return allocateHybrid(ctx.Config.Ladder, ctx.Config.TileCount(), ctx.BudgetMbps, ctx.PredictedDistribution, o.trustLevel)
}

// matchThreshold is half the dot-product value a self-match (predicted
// dotted with itself) would produce, used as the bar a predicted/actual pair
// must clear to count as a good prediction.
func matchThreshold(predicted []float64) float64 {
	return floats.Dot(predicted, predicted) * 0.5
}
