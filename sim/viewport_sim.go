package sim

// SimulateViewportPrediction runs the standalone viewport-prediction sweep
// described in the design notes: for every sliding position t = 0, Δ, 2Δ, …
// it feeds the predictor the prefix observed up to t and records the next W
// predicted poses. The number of sliding positions is the trace duration
// minus one window's worth of time (W·Δ), divided by Δ, so the window never
// runs past the end of the trace. The result is one []SphericalPosition slice per (session,
// sliding position), each of length windowLength.
func SimulateViewportPrediction(
	windowLength int,
	segmentSeconds float64,
	viewportOpts ViewportPredictorOptions,
	viewportTraces []ViewportTrace,
	poolSize int,
) ([][][]SphericalPosition, error) {
	if windowLength <= 0 {
		return nil, newConfigError("windowLength must be > 0")
	}
	if segmentSeconds <= 0 {
		return nil, newConfigError("segmentSeconds must be > 0")
	}
	if NewViewportPredictorFunc == nil {
		return nil, newConfigError("no viewport predictor implementations registered: import sim/viewport for its init() registration side effects")
	}

	sessions := len(viewportTraces)
	results := make([][][]SphericalPosition, sessions)
	errs := make([]error, sessions)

	runOne := func(s int) error {
		predictor, err := NewViewportPredictorFunc(viewportOpts)
		if err != nil {
			return newConfigError(err.Error())
		}
		trace := viewportTraces[s]
		duration := trace.DurationSeconds()
		horizon := float64(windowLength) * segmentSeconds

		numWindows := int((duration-horizon)/segmentSeconds + 1e-9)
		if numWindows < 0 {
			numWindows = 0
		}

		var observedSoFar int
		series := make([][]SphericalPosition, 0, numWindows)
		for w := 0; w < numWindows; w++ {
			t := float64(w) * segmentSeconds
			endIdx := int(t/trace.IntervalSeconds + 1e-9)
			if endIdx > observedSoFar {
				predictor.Update(trace.Samples[observedSoFar:endIdx])
				observedSoFar = endIdx
			}
			predicted := predictor.PredictPositions(segmentSeconds, segmentSeconds, windowLength)
			series = append(series, predicted)
		}
		results[s] = series
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
