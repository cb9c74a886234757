package sim

// Option structs are tagged unions over the strategy families: each family
// has a marker interface implemented only by its recognized variants, so an
// unrecognized payload is a compile error rather than a runtime string
// comparison. Sub-package init() functions type-switch on these.

// ThroughputPredictorOptions discriminates the throughput predictor family.
type ThroughputPredictorOptions interface{ isThroughputPredictorOptions() }

// EMAOptions selects the exponential-moving-average throughput predictor.
type EMAOptions struct {
	Alpha float64 `yaml:"alpha"` // smoothing factor in (0, 1]
}

func (EMAOptions) isThroughputPredictorOptions() {}

// MovingAverageOptions selects the simple moving-average throughput predictor.
type MovingAverageOptions struct {
	WindowCount int `yaml:"windowCount"` // number of trailing samples averaged, >= 1
}

func (MovingAverageOptions) isThroughputPredictorOptions() {}

// ViewportPredictorOptions discriminates the viewport predictor family.
type ViewportPredictorOptions interface{ isViewportPredictorOptions() }

// StaticOptions selects the static (repeat-last-pose) viewport predictor.
type StaticOptions struct{}

func (StaticOptions) isViewportPredictorOptions() {}

// LinearOptions selects the linear-extrapolation viewport predictor.
type LinearOptions struct {
	HistorySeconds float64 `yaml:"historySeconds"` // trailing window fit the line over
}

func (LinearOptions) isViewportPredictorOptions() {}

// GravitationalOptions selects the decay-kernel viewport predictor.
type GravitationalOptions struct {
	DecayHalfLifeSeconds float64           `yaml:"decayHalfLifeSeconds"` // kernel half-life for weighting past samples
	Attractor            SphericalPosition `yaml:"attractor"`           // pose the prediction is pulled toward
	AttractorWeight      float64           `yaml:"attractorWeight"`     // blend weight toward the attractor, in [0, 1]
}

func (GravitationalOptions) isViewportPredictorOptions() {}

// NavGraphOptions selects the trajectory-matching viewport predictor.
type NavGraphOptions struct {
	Trajectories [][]SphericalPosition `yaml:"trajectories"` // canonical future trajectories, keyed by closest recent motion
}

func (NavGraphOptions) isViewportPredictorOptions() {}

// OfflineOptions selects the oracle-lookup viewport predictor.
type OfflineOptions struct {
	GroundTruth []SphericalPosition `yaml:"groundTruth"` // the session's full recorded trajectory
}

func (OfflineOptions) isViewportPredictorOptions() {}

// AggregateControllerOptions discriminates the aggregate controller family.
type AggregateControllerOptions interface{ isAggregateControllerOptions() }

// ThroughputBasedOptions selects the throughput-based aggregate controller.
type ThroughputBasedOptions struct {
	SafetyFactor float64 `yaml:"safetyFactor"` // scales predicted throughput down before clamping; default 1.0
}

func (ThroughputBasedOptions) isAggregateControllerOptions() {}

// ModelPredictiveOptions selects the model-predictive (MPC) aggregate controller.
type ModelPredictiveOptions struct {
	LookaheadSegments int     `yaml:"lookaheadSegments"` // segments of lookahead considered; reference behavior uses 1
	Lambda            float64 `yaml:"lambda"`            // risk-aversion multiplier; 0 reproduces the unscaled reference curve
}

func (ModelPredictiveOptions) isAggregateControllerOptions() {}

// BitrateAllocatorOptions discriminates the bitrate allocator family.
type BitrateAllocatorOptions interface{ isBitrateAllocatorOptions() }

// HybridOptions selects the trust-blended water-filling allocator.
type HybridOptions struct {
	TrustLevel float64 `yaml:"trustLevel"` // blend factor in [0, 1] between uniform and viewport-weighted allocation
}

func (HybridOptions) isBitrateAllocatorOptions() {}

// BOLAOptions selects the buffer-occupancy Lyapunov allocator.
type BOLAOptions struct {
	V     float64 `yaml:"v"`     // utility weight; 0 uses the calibrated default
	Gamma float64 `yaml:"gamma"` // buffer weight; 0 uses the calibrated default
}

func (BOLAOptions) isBitrateAllocatorOptions() {}

// FlareOptions selects the accuracy-tracking dilated-distribution allocator.
type FlareOptions struct {
	InitialAccuracy float64 `yaml:"initialAccuracy"` // starting prediction-accuracy estimate, in [0, 1]
}

func (FlareOptions) isBitrateAllocatorOptions() {}

// DragonflyOptions selects the region-grouped water-filling allocator.
type DragonflyOptions struct {
	RegionSize int `yaml:"regionSize"` // tiles per region in distribution-sorted order; 0 uses TilingCount
}

func (DragonflyOptions) isBitrateAllocatorOptions() {}

// OnlineLearningOptions selects the trust-adapting allocator.
type OnlineLearningOptions struct {
	InitialTrustLevel float64 `yaml:"initialTrustLevel"` // starting trust level, in [0, 1]
	LearnRate         float64 `yaml:"learnRate"`         // per-segment trust adjustment step
}

func (OnlineLearningOptions) isBitrateAllocatorOptions() {}
