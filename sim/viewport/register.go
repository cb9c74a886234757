// Package viewport implements the viewport (head-pose) predictor
// strategies: static repetition, linear extrapolation, a gravitational
// decay-kernel blend, navigation-graph trajectory matching, and offline
// oracle lookup.
package viewport

import (
	"fmt"

	"github.com/three60abr/abrsim/sim"
)

func init() {
	sim.NewViewportPredictorFunc = func(options sim.ViewportPredictorOptions) (sim.ViewportPredictor, error) {
		switch opt := options.(type) {
		case sim.StaticOptions:
			return NewStatic(), nil
		case sim.LinearOptions:
			return NewLinear(opt.HistorySeconds), nil
		case sim.GravitationalOptions:
			return NewGravitational(opt.DecayHalfLifeSeconds, opt.Attractor, opt.AttractorWeight), nil
		case sim.NavGraphOptions:
			return NewNavGraph(opt.Trajectories), nil
		case sim.OfflineOptions:
			return NewOffline(opt.GroundTruth), nil
		default:
			return nil, fmt.Errorf("viewport: unrecognized predictor option type %T", options)
		}
	}
}
