package allocator

import "github.com/three60abr/abrsim/sim"

// Hybrid blends two water-filling extremes by trust level: at TrustLevel=0
// every tile is allocated uniformly with no regard for the predicted
// viewport; at TrustLevel=1 the budget is spent greedily on the tiles most
// likely to be viewed. Intermediate trust levels interpolate the resolved
// bitrate of each extreme, floor-snap to the ladder, then spend whatever
// budget remains with one more priority-ordered top-up pass.
type Hybrid struct {
	trustLevel float64
}

func NewHybrid(trustLevel float64) *Hybrid {
	if trustLevel < 0 {
		trustLevel = 0
	}
	if trustLevel > 1 {
		trustLevel = 1
	}
	return &Hybrid{trustLevel: trustLevel}
}

func (h *Hybrid) GetBitrateIDs(ctx sim.BitrateAllocatorContext) []int {
	return allocateHybrid(ctx.Config.Ladder, ctx.Config.TileCount(), ctx.BudgetMbps, ctx.PredictedDistribution, h.trustLevel)
}

// allocateHybrid implements the trust-blended allocation described on
// Hybrid, shared with Flare (which runs it over a dilated distribution) and
// OnlineLearning (which runs it with its adapted trust level).
func allocateHybrid(ladder []float64, tiles int, budget float64, distribution []float64, trust float64) []int {
	uniformLevels := uniformAllocation(ladder, tiles, budget)
	if trust <= 0 {
		return uniformLevels
	}

	weightedLevels := weightedAllocation(ladder, tiles, budget, distribution)
	if trust >= 1 {
		return weightedLevels
	}

	interpolated := make([]int, tiles)
	spent := 0.0
	for i := 0; i < tiles; i++ {
		r0 := ladder[uniformLevels[i]]
		r1 := ladder[weightedLevels[i]]
		blendedRate := r0 + trust*(r1-r0)
		interpolated[i] = floorSnapIndex(ladder, blendedRate)
		spent += ladder[interpolated[i]]
	}

	leftover := budget - spent
	if leftover < 0 {
		leftover = 0
	}
	order := probabilityOrder(distribution, false)
	maxOutSequential(interpolated, order, ladder, leftover)
	return interpolated
}

// uniformAllocation is the TrustLevel=0 extreme: every tile starts at the
// largest ladder level the full tile count can afford, then leftover budget
// raises tiles one at a time in ascending index order.
func uniformAllocation(ladder []float64, tiles int, budget float64) []int {
	floor := floorUniformIndex(ladder, tiles, budget)
	levels := make([]int, tiles)
	for i := range levels {
		levels[i] = floor
	}
	leftover := budget - float64(tiles)*ladder[floor]
	order := make([]int, tiles)
	for i := range order {
		order[i] = i
	}
	maxOutSequential(levels, order, ladder, leftover)
	return levels
}

// weightedAllocation is the TrustLevel=1 extreme: every tile starts at the
// ladder floor, then leftover budget raises only tiles with positive
// predicted viewport probability, most-probable first.
func weightedAllocation(ladder []float64, tiles int, budget float64, distribution []float64) []int {
	levels := make([]int, tiles)
	leftover := budget - float64(tiles)*ladder[0]
	order := probabilityOrder(distribution, true)
	maxOutSequential(levels, order, ladder, leftover)
	return levels
}
