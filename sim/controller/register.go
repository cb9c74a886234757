// Package controller implements the aggregate bitrate controller
// strategies: a simple throughput-following clamp and a closed-form
// model-predictive (MPC) controller that trades quality against predicted
// rebuffering risk.
package controller

import (
	"fmt"

	"github.com/three60abr/abrsim/sim"
)

func init() {
	sim.NewAggregateControllerFunc = func(options sim.AggregateControllerOptions) (sim.AggregateController, error) {
		switch opt := options.(type) {
		case sim.ThroughputBasedOptions:
			return NewThroughputBased(opt.SafetyFactor), nil
		case sim.ModelPredictiveOptions:
			return NewModelPredictive(opt.Lambda), nil
		default:
			return nil, fmt.Errorf("controller: unrecognized controller option type %T", options)
		}
	}
}
