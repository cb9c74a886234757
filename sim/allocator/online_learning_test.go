package allocator

import (
	"testing"

	"github.com/three60abr/abrsim/sim"
)

func TestOnlineLearning_TrustRisesOnGoodPrediction(t *testing.T) {
	ol := NewOnlineLearning(0.5, 0.1)
	cfg := sim.StreamingConfig{SegmentSeconds: 1, Ladder: []float64{1, 2, 4, 8}, TilingCount: 1}

	ol.GetBitrateIDs(sim.BitrateAllocatorContext{
		Config:                cfg,
		BudgetMbps:            20,
		PredictedDistribution: []float64{1, 0, 0, 0, 0, 0},
	})
	ol.GetBitrateIDs(sim.BitrateAllocatorContext{
		Config:                     cfg,
		BudgetMbps:                 20,
		PredictedDistribution:      []float64{1, 0, 0, 0, 0, 0},
		PreviousActualDistribution: []float64{1, 0, 0, 0, 0, 0},
	})

	if ol.trustLevel <= 0.5 {
		t.Errorf("expected trust to rise above 0.5 after a perfect prediction match, got %v", ol.trustLevel)
	}
}

func TestOnlineLearning_TrustFallsOnBadPrediction(t *testing.T) {
	ol := NewOnlineLearning(0.5, 0.1)
	cfg := sim.StreamingConfig{SegmentSeconds: 1, Ladder: []float64{1, 2, 4, 8}, TilingCount: 1}

	ol.GetBitrateIDs(sim.BitrateAllocatorContext{
		Config:                cfg,
		BudgetMbps:            20,
		PredictedDistribution: []float64{1, 0, 0, 0, 0, 0},
	})
	ol.GetBitrateIDs(sim.BitrateAllocatorContext{
		Config:                     cfg,
		BudgetMbps:                 20,
		PredictedDistribution:      []float64{1, 0, 0, 0, 0, 0},
		PreviousActualDistribution: []float64{0, 0, 0, 0, 0, 1},
	})

	if ol.trustLevel >= 0.5 {
		t.Errorf("expected trust to fall below 0.5 after a total miss, got %v", ol.trustLevel)
	}
}

func TestOnlineLearning_TrustLevelClampedToUnitRange(t *testing.T) {
	if got := NewOnlineLearning(-1, 0.1).trustLevel; got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := NewOnlineLearning(2, 0.1).trustLevel; got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestOnlineLearning_NonPositiveLearnRateDefaults(t *testing.T) {
	if got := NewOnlineLearning(0.5, 0).learnRate; got != 0.1 {
		t.Errorf("got %v, want default 0.1", got)
	}
}
