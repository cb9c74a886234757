package viewport

import (
	"math"

	"github.com/three60abr/abrsim/sim"
)

// Gravitational blends a decay-weighted average of past poses with a fixed
// attractor pose, modeling the tendency of viewers to drift back toward a
// salient point (e.g. the screen center, or a detected region of interest)
// between deliberate head movements.
type Gravitational struct {
	halfLife        float64
	attractor       sim.SphericalPosition
	attractorWeight float64

	observed []sim.SphericalPosition
}

func NewGravitational(halfLifeSeconds float64, attractor sim.SphericalPosition, attractorWeight float64) *Gravitational {
	if halfLifeSeconds <= 0 {
		halfLifeSeconds = 1
	}
	if attractorWeight < 0 {
		attractorWeight = 0
	}
	if attractorWeight > 1 {
		attractorWeight = 1
	}
	return &Gravitational{halfLife: halfLifeSeconds, attractor: attractor, attractorWeight: attractorWeight}
}

func (g *Gravitational) Update(observed []sim.SphericalPosition) {
	g.observed = append(g.observed, observed...)
	maxKeep := int(8 * g.halfLife)
	if maxKeep < 8 {
		maxKeep = 8
	}
	if len(g.observed) > maxKeep {
		g.observed = g.observed[len(g.observed)-maxKeep:]
	}
}

// weightedPose returns the decay-weighted average of the trailing observed
// poses, most recent sample first, weight halving every halfLife samples.
func (g *Gravitational) weightedPose() (sim.SphericalPosition, bool) {
	if len(g.observed) == 0 {
		return sim.SphericalPosition{}, false
	}
	var sumW, sumLat, sumLonX, sumLonY float64
	last := g.observed[len(g.observed)-1]
	for i := len(g.observed) - 1; i >= 0; i-- {
		age := float64(len(g.observed) - 1 - i)
		w := math.Pow(0.5, age/g.halfLife)
		sumW += w
		sumLat += w * g.observed[i].LatitudeDeg
		delta := sim.ShortestArcDelta(last.LongitudeDeg, g.observed[i].LongitudeDeg)
		lonRad := delta * math.Pi / 180
		sumLonX += w * math.Cos(lonRad)
		sumLonY += w * math.Sin(lonRad)
	}
	meanLat := sumLat / sumW
	meanLonDelta := math.Atan2(sumLonY, sumLonX) * 180 / math.Pi
	return sim.SphericalPosition{LatitudeDeg: meanLat, LongitudeDeg: sim.NormalizeLongitude(last.LongitudeDeg + meanLonDelta)}, true
}

func (g *Gravitational) PredictPositions(fromOffsetSeconds, stepSeconds float64, count int) []sim.SphericalPosition {
	out := make([]sim.SphericalPosition, count)
	base, ok := g.weightedPose()
	if !ok {
		base = g.attractor
	}
	blended := blendPoses(base, g.attractor, g.attractorWeight)
	for i := range out {
		out[i] = blended
	}
	return out
}

// blendPoses linearly blends latitude and shortest-arc longitude between two
// poses by weight w toward b.
func blendPoses(a, b sim.SphericalPosition, w float64) sim.SphericalPosition {
	lat := a.LatitudeDeg + w*(b.LatitudeDeg-a.LatitudeDeg)
	lon := sim.NormalizeLongitude(a.LongitudeDeg + w*sim.ShortestArcDelta(a.LongitudeDeg, b.LongitudeDeg))
	return sim.SphericalPosition{LatitudeDeg: lat, LongitudeDeg: lon}
}
