package sim

// ThroughputPredictor tracks observed network throughput and predicts the
// value for the upcoming segment. Implementations live in sim/throughput.
type ThroughputPredictor interface {
	Update(sampleMbps float64)
	Predict() float64
}

// ViewportPredictor tracks observed head poses and predicts a window of
// future poses at segment boundaries. Implementations live in sim/viewport.
type ViewportPredictor interface {
	Update(observed []SphericalPosition)
	// PredictPositions returns `count` poses at segment boundaries, starting
	// at fromOffsetSeconds and spaced stepSeconds apart.
	PredictPositions(fromOffsetSeconds, stepSeconds float64, count int) []SphericalPosition
}

// AggregateControllerContext is the read-only view an AggregateController
// consults to choose the next segment's aggregate bitrate budget.
type AggregateControllerContext struct {
	Config               StreamingConfig
	BufferSeconds        float64
	PredictedThroughput  float64
	SegmentIndex         int
}

// AggregateController chooses the total bitrate budget (Mbps, summed across
// all tiles) for the next segment. Implementations live in sim/controller.
type AggregateController interface {
	GetAggregateBitrateMbps(ctx AggregateControllerContext) float64
}

// BitrateAllocatorContext is the read-only view a BitrateAllocator consults
// to distribute an aggregate budget across tiles.
type BitrateAllocatorContext struct {
	Config                 StreamingConfig
	BudgetMbps             float64
	PredictedDistribution  []float64 // length Config.TileCount(), sums to 1
	PreviousActualDistribution []float64 // may be nil on the first segment
	BufferSeconds          float64
}

// BitrateAllocator distributes an aggregate bitrate budget across tiles,
// returning an index into Config.Ladder for every tile. Implementations live
// in sim/allocator.
type BitrateAllocator interface {
	GetBitrateIDs(ctx BitrateAllocatorContext) []int
}

// Factory function variables, set by the init() functions of the strategy
// sub-packages. A session is built from a tagged-union option value (see
// options.go); these hooks are how sim dispatches to a concrete
// implementation without importing the sub-packages directly, which would
// create an import cycle since the sub-packages import sim for the
// interfaces above.
var (
	NewThroughputPredictorFunc func(options ThroughputPredictorOptions) (ThroughputPredictor, error)
	NewViewportPredictorFunc   func(options ViewportPredictorOptions) (ViewportPredictor, error)
	NewAggregateControllerFunc func(options AggregateControllerOptions) (AggregateController, error)
	NewBitrateAllocatorFunc    func(options BitrateAllocatorOptions) (BitrateAllocator, error)
)
