package throughput

import "testing"

func TestMovingAverage_MeansTheWindow(t *testing.T) {
	ma := NewMovingAverage(3)
	ma.Update(3)
	ma.Update(6)
	ma.Update(9)
	if got := ma.Predict(); got != 6 {
		t.Errorf("got %v, want 6", got)
	}
}

func TestMovingAverage_DropsOldestSampleOnceWindowFull(t *testing.T) {
	ma := NewMovingAverage(2)
	ma.Update(10)
	ma.Update(20)
	ma.Update(30)
	want := 25.0
	if got := ma.Predict(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMovingAverage_ShorterHistoryThanWindowAveragesWhatExists(t *testing.T) {
	ma := NewMovingAverage(5)
	ma.Update(4)
	ma.Update(8)
	if got := ma.Predict(); got != 6 {
		t.Errorf("got %v, want 6", got)
	}
}

func TestMovingAverage_EmptyHistoryPredictsZero(t *testing.T) {
	ma := NewMovingAverage(3)
	if got := ma.Predict(); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestMovingAverage_NonPositiveWindowDefaultsToOne(t *testing.T) {
	if got := NewMovingAverage(0).window; got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := NewMovingAverage(-3).window; got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}
