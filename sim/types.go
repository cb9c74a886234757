package sim

// SimulationSeries is the recorded output of one ABR session.
type SimulationSeries struct {
	RebufferingSeconds float64
	// BitratesMbps is [segments][tiles]: the actual chosen per-tile bitrate.
	BitratesMbps [][]float64
	// ActualDistributions is [segments][tiles]: the ground-truth viewport
	// distribution observed during that segment.
	ActualDistributions [][]float64
	// PredictedDistributions is [segments-1][tiles]: the distribution
	// predicted going into each segment after the first.
	PredictedDistributions [][]float64
}

// sessionComponents bundles the strategy instances one session's loop
// drives; constructing these from their option structs happens once per
// session before the loop begins.
type sessionComponents struct {
	config      StreamingConfig
	throughput  ThroughputPredictor
	viewport    ViewportPredictor
	controller  AggregateController
	allocator   BitrateAllocator
}

func newSessionComponents(
	cfg StreamingConfig,
	throughputOpts ThroughputPredictorOptions,
	viewportOpts ViewportPredictorOptions,
	controllerOpts AggregateControllerOptions,
	allocatorOpts BitrateAllocatorOptions,
) (*sessionComponents, error) {
	if NewThroughputPredictorFunc == nil || NewViewportPredictorFunc == nil ||
		NewAggregateControllerFunc == nil || NewBitrateAllocatorFunc == nil {
		return nil, newConfigError("no strategy implementations registered: import sim/throughput, sim/viewport, sim/controller, and sim/allocator for their init() registration side effects")
	}

	tp, err := NewThroughputPredictorFunc(throughputOpts)
	if err != nil {
		return nil, newConfigError(err.Error())
	}
	vp, err := NewViewportPredictorFunc(viewportOpts)
	if err != nil {
		return nil, newConfigError(err.Error())
	}
	ac, err := NewAggregateControllerFunc(controllerOpts)
	if err != nil {
		return nil, newConfigError(err.Error())
	}
	ba, err := NewBitrateAllocatorFunc(allocatorOpts)
	if err != nil {
		return nil, newConfigError(err.Error())
	}

	return &sessionComponents{config: cfg, throughput: tp, viewport: vp, controller: ac, allocator: ba}, nil
}
