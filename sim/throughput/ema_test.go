package throughput

import "testing"

func TestEMA_FirstSampleSeedsState(t *testing.T) {
	ema := NewEMA(0.5)
	ema.Update(10)
	if got := ema.Predict(); got != 10 {
		t.Errorf("got %v, want 10", got)
	}
}

func TestEMA_SubsequentSamplesBlend(t *testing.T) {
	ema := NewEMA(0.5)
	ema.Update(10)
	ema.Update(20)
	want := 0.5*20 + 0.5*10
	if got := ema.Predict(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEMA_AlphaOneTracksLatestSampleExactly(t *testing.T) {
	ema := NewEMA(1)
	ema.Update(5)
	ema.Update(9)
	if got := ema.Predict(); got != 9 {
		t.Errorf("got %v, want 9", got)
	}
}

func TestEMA_OutOfRangeAlphaClampsToOne(t *testing.T) {
	for _, alpha := range []float64{0, -1, 1.5} {
		ema := NewEMA(alpha)
		if ema.alpha != 1 {
			t.Errorf("alpha=%v: got clamped alpha %v, want 1", alpha, ema.alpha)
		}
	}
}
