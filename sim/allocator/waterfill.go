package allocator

import "sort"

// floorUniformIndex returns the largest ladder index such that giving every
// one of `tiles` tiles that rate stays within budget. Falls back to index 0
// if even the floor rate can't fit (a configuration that violates the
// budget; callers let the simulator's invariant checks surface that).
func floorUniformIndex(ladder []float64, tiles int, budget float64) int {
	for idx := len(ladder) - 1; idx >= 0; idx-- {
		if float64(tiles)*ladder[idx] <= budget {
			return idx
		}
	}
	return 0
}

// maxOutSequential spends leftover budget raising tiles in priority order,
// one ladder level at a time, fully maxing out each tile (until its next
// step would exceed the remaining leftover, or it hits the ladder's top)
// before moving on to the next tile in the order. levels is mutated in
// place; the unspent remainder is returned.
func maxOutSequential(levels []int, order []int, ladder []float64, leftover float64) float64 {
	for _, tile := range order {
		for levels[tile] < len(ladder)-1 {
			delta := ladder[levels[tile]+1] - ladder[levels[tile]]
			if delta > leftover {
				break
			}
			levels[tile]++
			leftover -= delta
		}
	}
	return leftover
}

// probabilityOrder returns tile indices sorted by descending probability,
// ties broken by ascending tile index. If positiveOnly is true, tiles with
// zero probability are omitted entirely.
func probabilityOrder(distribution []float64, positiveOnly bool) []int {
	order := make([]int, 0, len(distribution))
	for i, p := range distribution {
		if positiveOnly && p <= 0 {
			continue
		}
		order = append(order, i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := distribution[order[a]], distribution[order[b]]
		if pa != pb {
			return pa > pb
		}
		return order[a] < order[b]
	})
	return order
}

// floorSnapIndex returns the largest ladder index whose rate does not
// exceed value.
func floorSnapIndex(ladder []float64, value float64) int {
	idx := 0
	for i, r := range ladder {
		if r <= value {
			idx = i
		}
	}
	return idx
}
