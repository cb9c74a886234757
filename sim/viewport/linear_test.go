package viewport

import (
	"testing"

	"github.com/three60abr/abrsim/sim"
	"github.com/three60abr/abrsim/sim/internal/testutil"
)

func TestLinear_ExtrapolatesAConstantVelocityTrajectory(t *testing.T) {
	l := NewLinear(4)
	l.Update([]sim.SphericalPosition{
		{LatitudeDeg: 0, LongitudeDeg: 0},
		{LatitudeDeg: 10, LongitudeDeg: 5},
		{LatitudeDeg: 20, LongitudeDeg: 10},
		{LatitudeDeg: 30, LongitudeDeg: 15},
	})

	got := l.PredictPositions(1, 1, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(got))
	}
	testutil.AssertFloat64Equal(t, "prediction 0 latitude", 40, got[0].LatitudeDeg, 1e-6)
	testutil.AssertFloat64Equal(t, "prediction 0 longitude", 20, got[0].LongitudeDeg, 1e-6)
	testutil.AssertFloat64Equal(t, "prediction 1 latitude", 50, got[1].LatitudeDeg, 1e-6)
	testutil.AssertFloat64Equal(t, "prediction 1 longitude", 25, got[1].LongitudeDeg, 1e-6)
}

func TestLinear_UnwrapsLongitudeAcrossTheSeam(t *testing.T) {
	l := NewLinear(4)
	// Drifting steadily eastward past the +/-180 seam at 9 deg/tick: 170,
	// 179, 188 (wraps to -172), 197 (wraps to -163).
	l.Update([]sim.SphericalPosition{
		{LatitudeDeg: 0, LongitudeDeg: 170},
		{LatitudeDeg: 0, LongitudeDeg: 179},
		{LatitudeDeg: 0, LongitudeDeg: -172},
		{LatitudeDeg: 0, LongitudeDeg: -163},
	})

	got := l.PredictPositions(1, 1, 1)
	// The unwrapped series is 170,179,188,197 (slope 9/tick); one tick of
	// offset past the last observed tick (3) lands at tick 4: 170 + 9*4 = 206,
	// wrapped.
	testutil.AssertFloat64Equal(t, "wrapped longitude", sim.NormalizeLongitude(206), got[0].LongitudeDeg, 1e-6)
}

func TestLinear_FewerThanTwoSamplesRepeatsLastOrZero(t *testing.T) {
	l := NewLinear(4)
	none := l.PredictPositions(1, 1, 2)
	for i, p := range none {
		if p != (sim.SphericalPosition{}) {
			t.Errorf("prediction %d with no samples: got %+v, want zero value", i, p)
		}
	}

	l.Update([]sim.SphericalPosition{{LatitudeDeg: 7, LongitudeDeg: 8}})
	one := l.PredictPositions(1, 1, 2)
	want := sim.SphericalPosition{LatitudeDeg: 7, LongitudeDeg: 8}
	for i, p := range one {
		if p != want {
			t.Errorf("prediction %d with one sample: got %+v, want %+v", i, p, want)
		}
	}
}

func TestLinear_LatitudeClampedToPoles(t *testing.T) {
	l := NewLinear(4)
	l.Update([]sim.SphericalPosition{
		{LatitudeDeg: 0, LongitudeDeg: 0},
		{LatitudeDeg: 50, LongitudeDeg: 0},
		{LatitudeDeg: 100, LongitudeDeg: 0},
	})
	got := l.PredictPositions(1, 1, 1)
	if got[0].LatitudeDeg != 90 {
		t.Errorf("got %v, want clamped to 90", got[0].LatitudeDeg)
	}
}

func TestLinear_TrimDropsSamplesOlderThanHistoryWindow(t *testing.T) {
	l := NewLinear(2)
	l.Update([]sim.SphericalPosition{
		{LatitudeDeg: 100, LongitudeDeg: 0}, // tick 0, should be trimmed
		{LatitudeDeg: 0, LongitudeDeg: 0},   // tick 1
		{LatitudeDeg: 10, LongitudeDeg: 0},  // tick 2
		{LatitudeDeg: 20, LongitudeDeg: 0},  // tick 3, cutoff = 3-2 = 1, keeps ticks > 1
	})
	if len(l.ticks) != 2 {
		t.Fatalf("expected 2 remaining samples after trim, got %d: ticks=%v", len(l.ticks), l.ticks)
	}
	if l.lats[0] != 10 || l.lats[1] != 20 {
		t.Errorf("expected the trimmed window to keep the latest two samples, got %v", l.lats)
	}
}
