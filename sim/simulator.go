package sim

import "math"

// runSession drives one ABR session to completion, following the segment
// loop: observe, predict, distribute, set aggregate budget, allocate,
// download, advance buffer, record, remember.
func runSession(
	sessionIndex int,
	cfg StreamingConfig,
	components *sessionComponents,
	network NetworkTrace,
	viewport ViewportTrace,
) (SimulationSeries, error) {
	delta := cfg.SegmentSeconds
	duration := math.Min(network.DurationSeconds(), viewport.DurationSeconds())
	segments := int(duration/delta + 1e-9)

	series := SimulationSeries{
		BitratesMbps:        make([][]float64, 0, segments),
		ActualDistributions: make([][]float64, 0, segments),
	}

	var previousActual []float64
	var lastObservedPoses []SphericalPosition
	buffer := 0.0

	for k := 0; k < segments; k++ {
		segmentStart := float64(k) * delta

		for _, sample := range network.SamplesInWindow(segmentStart, delta) {
			components.throughput.Update(sample)
		}
		observedPoses := viewport.PosesInWindow(segmentStart, delta)
		components.viewport.Update(observedPoses)

		// A segment window can fall entirely between two viewport samples
		// when the sampling interval doesn't divide the segment duration;
		// carry the last non-empty observation forward so every segment
		// still distributes a normalized actual distribution.
		distributionPoses := observedPoses
		if len(distributionPoses) == 0 {
			distributionPoses = lastObservedPoses
		} else {
			lastObservedPoses = distributionPoses
		}

		predictedThroughput := components.throughput.Predict()
		predictedPoses := components.viewport.PredictPositions(delta, delta, 1)
		predictedDistribution := ToDistribution(cfg, predictedPoses)

		budget := components.controller.GetAggregateBitrateMbps(AggregateControllerContext{
			Config:              cfg,
			BufferSeconds:       buffer,
			PredictedThroughput: predictedThroughput,
			SegmentIndex:        k,
		})

		ids := components.allocator.GetBitrateIDs(BitrateAllocatorContext{
			Config:                      cfg,
			BudgetMbps:                  budget,
			PredictedDistribution:      predictedDistribution,
			PreviousActualDistribution: previousActual,
			BufferSeconds:              buffer,
		})

		rates := make([]float64, len(ids))
		var totalMbps float64
		for i, id := range ids {
			if id < 0 || id >= len(cfg.Ladder) {
				return series, newSessionError(ErrKindNumeric, sessionIndex, k, "allocator returned an out-of-range ladder index", nil)
			}
			rates[i] = cfg.Ladder[id]
			totalMbps += rates[i]
		}

		actualThroughput := network.ThroughputAt(segmentStart, delta)
		var downloadSeconds float64
		if actualThroughput > 0 {
			downloadSeconds = totalMbps * delta / actualThroughput
		} else {
			downloadSeconds = math.Inf(1)
		}

		if downloadSeconds <= buffer {
			buffer = buffer - downloadSeconds + delta
		} else {
			series.RebufferingSeconds += downloadSeconds - buffer
			buffer = delta
		}
		if buffer > cfg.MaxBufferSeconds {
			buffer = cfg.MaxBufferSeconds
		}

		actualDistribution := ToDistribution(cfg, distributionPoses)

		series.BitratesMbps = append(series.BitratesMbps, rates)
		series.ActualDistributions = append(series.ActualDistributions, actualDistribution)
		if k > 0 {
			series.PredictedDistributions = append(series.PredictedDistributions, predictedDistribution)
		}

		previousActual = actualDistribution
	}

	return series, nil
}

// SimulateABR runs one ABR session per (network trace, viewport trace) pair,
// in parallel across a worker pool (see pool.go), and returns each session's
// recorded series in session-index order.
func SimulateABR(
	cfg StreamingConfig,
	controllerOpts AggregateControllerOptions,
	allocatorOpts BitrateAllocatorOptions,
	throughputOpts ThroughputPredictorOptions,
	viewportOpts ViewportPredictorOptions,
	networkTraces []NetworkTrace,
	viewportTraces []ViewportTrace,
	poolSize int,
) ([]SimulationSeries, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(networkTraces) != len(viewportTraces) {
		return nil, &SimError{Kind: ErrKindInputShape, SessionIndex: -1, SegmentIndex: -1,
			Message: "network and viewport trace session counts must match"}
	}

	sessions := len(networkTraces)
	results := make([]SimulationSeries, sessions)
	errs := make([]error, sessions)

	runOne := func(i int) error {
		components, err := newSessionComponents(cfg, throughputOpts, viewportOpts, controllerOpts, allocatorOpts)
		if err != nil {
			return err
		}
		series, err := runSession(i, cfg, components, networkTraces[i], viewportTraces[i])
		if err != nil {
			return err
		}
		results[i] = series
		return nil
	}

	runPool(sessions, poolSize, func(i int) {
		errs[i] = runOne(i)
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
