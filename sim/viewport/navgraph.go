package viewport

import (
	"math"

	"github.com/three60abr/abrsim/sim"
)

// NavGraph predicts future poses by matching the most recent observed
// motion against a library of canonical trajectories and replaying the
// matched trajectory's continuation. Each trajectory is a sequence of poses;
// the match point is the trajectory index whose pose is closest (by
// angular distance, approximated via latitude/longitude delta) to the last
// observed pose, and the prediction continues from just past that index.
type NavGraph struct {
	trajectories [][]sim.SphericalPosition
	observed     []sim.SphericalPosition
}

func NewNavGraph(trajectories [][]sim.SphericalPosition) *NavGraph {
	return &NavGraph{trajectories: trajectories}
}

func (n *NavGraph) Update(observed []sim.SphericalPosition) {
	n.observed = append(n.observed, observed...)
}

func (n *NavGraph) PredictPositions(fromOffsetSeconds, stepSeconds float64, count int) []sim.SphericalPosition {
	out := make([]sim.SphericalPosition, count)
	if len(n.observed) == 0 || len(n.trajectories) == 0 {
		return out
	}
	last := n.observed[len(n.observed)-1]

	bestTraj, bestIdx := 0, 0
	bestDist := math.Inf(1)
	for ti, traj := range n.trajectories {
		for pi, pose := range traj {
			d := angularDistance(last, pose)
			if d < bestDist {
				bestDist = d
				bestTraj = ti
				bestIdx = pi
			}
		}
	}

	traj := n.trajectories[bestTraj]
	for i := 0; i < count; i++ {
		idx := bestIdx + 1 + i
		if idx >= len(traj) {
			out[i] = traj[len(traj)-1]
			continue
		}
		out[i] = traj[idx]
	}
	return out
}

func angularDistance(a, b sim.SphericalPosition) float64 {
	dLat := a.LatitudeDeg - b.LatitudeDeg
	dLon := sim.ShortestArcDelta(a.LongitudeDeg, b.LongitudeDeg)
	return math.Hypot(dLat, dLon)
}
