package allocator

import "testing"

func TestFloorUniformIndex_PicksHighestAffordableLevel(t *testing.T) {
	ladder := []float64{1, 2, 4, 8}
	if got := floorUniformIndex(ladder, 3, 12); got != 2 {
		t.Errorf("3 tiles at budget 12: got index %d, want 2 (3*4=12 fits exactly)", got)
	}
	if got := floorUniformIndex(ladder, 3, 30); got != 3 {
		t.Errorf("3 tiles at budget 30: got index %d, want 3 (3*8=24 fits)", got)
	}
}

func TestFloorUniformIndex_FallsBackToZeroWhenFloorDoesNotFit(t *testing.T) {
	ladder := []float64{1, 2, 4, 8}
	if got := floorUniformIndex(ladder, 10, 1); got != 0 {
		t.Errorf("got index %d, want 0", got)
	}
}

func TestMaxOutSequential_SpendsFullyOnEachTileBeforeMovingOn(t *testing.T) {
	ladder := []float64{1, 2, 4, 8}
	levels := []int{0, 0}
	order := []int{0, 1}
	leftover := maxOutSequential(levels, order, ladder, 10)
	if levels[0] != 3 {
		t.Errorf("tile 0 should be maxed to the top level, got %d", levels[0])
	}
	if levels[1] != 2 {
		t.Errorf("tile 1 should spend the remaining budget (3), got level %d", levels[1])
	}
	if leftover != 0 {
		t.Errorf("expected no leftover, got %v", leftover)
	}
}

func TestProbabilityOrder_DescendingWithAscendingIndexTiebreak(t *testing.T) {
	order := probabilityOrder([]float64{0.2, 0.5, 0.5, 0}, false)
	want := []int{1, 2, 0, 3}
	for i, idx := range want {
		if order[i] != idx {
			t.Errorf("position %d: got tile %d, want %d (order=%v)", i, order[i], idx, order)
			break
		}
	}
}

func TestProbabilityOrder_PositiveOnlyOmitsZeroProbabilityTiles(t *testing.T) {
	order := probabilityOrder([]float64{0.2, 0, 0.5, 0}, true)
	if len(order) != 2 {
		t.Fatalf("expected 2 tiles, got %d: %v", len(order), order)
	}
	if order[0] != 2 || order[1] != 0 {
		t.Errorf("got %v, want [2 0]", order)
	}
}

func TestFloorSnapIndex_PicksLargestAffordableRate(t *testing.T) {
	ladder := []float64{1, 2, 4, 8}
	if got := floorSnapIndex(ladder, 3.9); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := floorSnapIndex(ladder, 8); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if got := floorSnapIndex(ladder, 0.5); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}
