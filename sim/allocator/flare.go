package allocator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/three60abr/abrsim/sim"
)

// Flare tracks how well the viewport predictor has been performing and
// dilates the predicted distribution toward uniform when it hasn't: a
// scalar accuracy estimate, updated from the cosine similarity between
// successive predicted and actual distributions, controls how much the
// allocation trusts the latest prediction.
type Flare struct {
	accuracy float64
	lastPredicted []float64
}

func NewFlare(initialAccuracy float64) *Flare {
	if initialAccuracy < 0 {
		initialAccuracy = 0
	}
	if initialAccuracy > 1 {
		initialAccuracy = 1
	}
	return &Flare{accuracy: initialAccuracy}
}

func (f *Flare) GetBitrateIDs(ctx sim.BitrateAllocatorContext) []int {
	if f.lastPredicted != nil && ctx.PreviousActualDistribution != nil {
		f.accuracy = cosineSimilarity(f.lastPredicted, ctx.PreviousActualDistribution)
	}
	f.lastPredicted = append([]float64(nil), ctx.PredictedDistribution...)

	alpha := 1 - f.accuracy
	dilated := dilate(ctx.PredictedDistribution, alpha)
	return allocateHybrid(ctx.Config.Ladder, ctx.Config.TileCount(), ctx.BudgetMbps, dilated, 1.0)
}

// dilate blends a distribution toward uniform by weight alpha.
func dilate(distribution []float64, alpha float64) []float64 {
	n := len(distribution)
	if n == 0 {
		return distribution
	}
	uniform := 1.0 / float64(n)
	out := make([]float64, n)
	for i, p := range distribution {
		out[i] = (1-alpha)*p + alpha*uniform
	}
	return out
}

// cosineSimilarity returns the cosine similarity of two equal-length
// vectors, clamped to [0, 1] since both inputs here are non-negative
// distributions.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	dot := floats.Dot(a, b)
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	cosine := dot / (normA * normB)
	if cosine < 0 {
		cosine = 0
	}
	if cosine > 1 {
		cosine = 1
	}
	return cosine
}
