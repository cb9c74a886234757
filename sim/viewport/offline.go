package viewport

import "github.com/three60abr/abrsim/sim"

// Offline is the oracle predictor: it is handed the session's full ground
// truth trajectory up front and "predicts" by looking ahead into it,
// indexed by how many poses have been observed so far. It exists to
// establish an upper bound on predictor accuracy for comparison against the
// online strategies.
type Offline struct {
	groundTruth []sim.SphericalPosition
	seen        int
}

func NewOffline(groundTruth []sim.SphericalPosition) *Offline {
	return &Offline{groundTruth: groundTruth}
}

func (o *Offline) Update(observed []sim.SphericalPosition) {
	o.seen += len(observed)
}

func (o *Offline) PredictPositions(fromOffsetSeconds, stepSeconds float64, count int) []sim.SphericalPosition {
	out := make([]sim.SphericalPosition, count)
	for i := 0; i < count; i++ {
		idx := o.seen + i
		if idx >= len(o.groundTruth) {
			if len(o.groundTruth) > 0 {
				out[i] = o.groundTruth[len(o.groundTruth)-1]
			}
			continue
		}
		out[i] = o.groundTruth[idx]
	}
	return out
}
