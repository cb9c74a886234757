package allocator

import (
	"sort"

	"github.com/three60abr/abrsim/sim"
)

// Dragonfly groups tiles into saliency regions and water-fills at region
// granularity: every tile in a region gets the same ladder level, chosen by
// the region's summed predicted probability mass. Regions are formed by
// grouping RegionSize-sized contiguous runs of the distribution-sorted tile
// order (most-likely tiles grouped together first).
type Dragonfly struct {
	regionSize int
}

func NewDragonfly(regionSize int) *Dragonfly {
	return &Dragonfly{regionSize: regionSize}
}

func (d *Dragonfly) GetBitrateIDs(ctx sim.BitrateAllocatorContext) []int {
	ladder := ctx.Config.Ladder
	tiles := ctx.Config.TileCount()
	distribution := ctx.PredictedDistribution

	regionSize := d.regionSize
	if regionSize <= 0 {
		regionSize = ctx.Config.TilingCount
	}
	if regionSize <= 0 {
		regionSize = 1
	}

	order := probabilityOrder(distribution, false)
	var regions [][]int
	for i := 0; i < len(order); i += regionSize {
		end := i + regionSize
		if end > len(order) {
			end = len(order)
		}
		regions = append(regions, order[i:end])
	}

	regionMass := make([]float64, len(regions))
	for ri, region := range regions {
		for _, tile := range region {
			if tile < len(distribution) {
				regionMass[ri] += distribution[tile]
			}
		}
	}

	regionOrder := make([]int, len(regions))
	for i := range regionOrder {
		regionOrder[i] = i
	}
	sort.SliceStable(regionOrder, func(a, b int) bool {
		ma, mb := regionMass[regionOrder[a]], regionMass[regionOrder[b]]
		if ma != mb {
			return ma > mb
		}
		return regionOrder[a] < regionOrder[b]
	})

	regionLevels := make([]int, len(regions))
	leftover := ctx.BudgetMbps - float64(tiles)*ladder[0]
	if leftover < 0 {
		leftover = 0
	}
	maxOutRegions(regionLevels, regionOrder, regions, ladder, leftover)

	levels := make([]int, tiles)
	for ri, region := range regions {
		for _, tile := range region {
			levels[tile] = regionLevels[ri]
		}
	}
	return levels
}

// maxOutRegions spends leftover budget raising whole regions one ladder
// level at a time, weighting each region's cost by its tile count, in the
// given priority order, maxing out each region before moving to the next.
func maxOutRegions(levels []int, order []int, regions [][]int, ladder []float64, leftover float64) float64 {
	for _, ri := range order {
		size := float64(len(regions[ri]))
		for levels[ri] < len(ladder)-1 {
			delta := size * (ladder[levels[ri]+1] - ladder[levels[ri]])
			if delta > leftover {
				break
			}
			levels[ri]++
			leftover -= delta
		}
	}
	return leftover
}
