package controller

import "github.com/three60abr/abrsim/sim"

// ThroughputBased returns the predicted throughput scaled by SafetyFactor,
// clamped to the aggregate bitrate range the ladder can support.
type ThroughputBased struct {
	safetyFactor float64
}

func NewThroughputBased(safetyFactor float64) *ThroughputBased {
	if safetyFactor <= 0 {
		safetyFactor = 1.0
	}
	return &ThroughputBased{safetyFactor: safetyFactor}
}

func (t *ThroughputBased) GetAggregateBitrateMbps(ctx sim.AggregateControllerContext) float64 {
	tiles := float64(ctx.Config.TileCount())
	minB := tiles * ctx.Config.MinRate()
	maxB := tiles * ctx.Config.MaxRate()

	b := t.safetyFactor * ctx.PredictedThroughput
	if b < minB {
		b = minB
	}
	if b > maxB {
		b = maxB
	}
	return b
}
