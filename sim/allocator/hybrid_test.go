package allocator

import (
	"testing"

	"github.com/three60abr/abrsim/sim"
	"github.com/three60abr/abrsim/sim/internal/testutil"
)

func TestHybrid_TrustSweepMatchesGolden(t *testing.T) {
	golden := testutil.LoadGoldenScenarios(t)
	var scenario *testutil.GoldenScenario
	for i, s := range golden.Scenarios {
		if s.Name == "hybrid_trust_sweep" {
			scenario = &golden.Scenarios[i]
		}
	}
	if scenario == nil {
		t.Fatal("hybrid_trust_sweep scenario not found")
	}

	cfg := sim.StreamingConfig{
		SegmentSeconds: 1,
		Ladder:         scenario.Ladder,
		TilingCount:    scenario.TilingCount,
	}

	for step, trust := range scenario.TrustLevels {
		hybrid := NewHybrid(trust)
		got := hybrid.GetBitrateIDs(sim.BitrateAllocatorContext{
			Config:                cfg,
			BudgetMbps:            scenario.BudgetMbps,
			PredictedDistribution: scenario.Distribution,
		})
		want := scenario.ExpectedBitrateID[step]
		if len(got) != len(want) {
			t.Fatalf("trust %v: got %d tiles, want %d", trust, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("trust %v tile %d: got level %d, want %d", trust, i, got[i], want[i])
			}
		}
	}
}

func TestHybrid_TrustLevelClampedToUnitRange(t *testing.T) {
	tooLow := NewHybrid(-1)
	if tooLow.trustLevel != 0 {
		t.Errorf("expected trust clamped to 0, got %v", tooLow.trustLevel)
	}
	tooHigh := NewHybrid(2)
	if tooHigh.trustLevel != 1 {
		t.Errorf("expected trust clamped to 1, got %v", tooHigh.trustLevel)
	}
}

func TestHybrid_NeverExceedsBudget(t *testing.T) {
	cfg := sim.StreamingConfig{SegmentSeconds: 1, Ladder: []float64{1, 2, 4, 8}, TilingCount: 1}
	distribution := []float64{0.4, 0.3, 0.2, 0.1, 0, 0}
	for _, trust := range []float64{0, 0.25, 0.5, 0.75, 1} {
		hybrid := NewHybrid(trust)
		levels := hybrid.GetBitrateIDs(sim.BitrateAllocatorContext{
			Config:                cfg,
			BudgetMbps:            10,
			PredictedDistribution: distribution,
		})
		var spent float64
		for i := 0; i < 6; i++ {
			spent += cfg.Ladder[levels[i]]
		}
		if spent > 10+1e-9 {
			t.Errorf("trust %v: spent %v exceeds budget 10", trust, spent)
		}
	}
}
