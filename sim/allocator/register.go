// Package allocator implements the per-tile bitrate allocator strategies:
// trust-blended hybrid water-filling, the BOLA buffer-occupancy Lyapunov
// allocator, Flare's prediction-accuracy dilation, Dragonfly's
// region-grouped water-filling, and an online trust-adapting allocator.
package allocator

import (
	"fmt"

	"github.com/three60abr/abrsim/sim"
)

func init() {
	sim.NewBitrateAllocatorFunc = func(options sim.BitrateAllocatorOptions) (sim.BitrateAllocator, error) {
		switch opt := options.(type) {
		case sim.HybridOptions:
			return NewHybrid(opt.TrustLevel), nil
		case sim.BOLAOptions:
			return NewBOLA(opt.V, opt.Gamma), nil
		case sim.FlareOptions:
			return NewFlare(opt.InitialAccuracy), nil
		case sim.DragonflyOptions:
			return NewDragonfly(opt.RegionSize), nil
		case sim.OnlineLearningOptions:
			return NewOnlineLearning(opt.InitialTrustLevel, opt.LearnRate), nil
		default:
			return nil, fmt.Errorf("allocator: unrecognized allocator option type %T", options)
		}
	}
}
