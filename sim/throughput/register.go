// Package throughput implements the throughput predictor strategies:
// moving-average and exponential-moving-average estimators over observed
// per-segment network samples.
package throughput

import (
	"fmt"

	"github.com/three60abr/abrsim/sim"
)

func init() {
	sim.NewThroughputPredictorFunc = func(options sim.ThroughputPredictorOptions) (sim.ThroughputPredictor, error) {
		switch opt := options.(type) {
		case sim.EMAOptions:
			return NewEMA(opt.Alpha), nil
		case sim.MovingAverageOptions:
			return NewMovingAverage(opt.WindowCount), nil
		default:
			return nil, fmt.Errorf("throughput: unrecognized predictor option type %T", options)
		}
	}
}
