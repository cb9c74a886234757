package viewport

import "github.com/three60abr/abrsim/sim"

// Static repeats the last observed pose for every future prediction.
type Static struct {
	last sim.SphericalPosition
}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Update(observed []sim.SphericalPosition) {
	if len(observed) == 0 {
		return
	}
	s.last = observed[len(observed)-1]
}

func (s *Static) PredictPositions(fromOffsetSeconds, stepSeconds float64, count int) []sim.SphericalPosition {
	out := make([]sim.SphericalPosition, count)
	for i := range out {
		out[i] = s.last
	}
	return out
}
