package viewport

import (
	"gonum.org/v1/gonum/stat"

	"github.com/three60abr/abrsim/sim"
)

// Linear fits a least-squares line over the trailing HistorySeconds of
// observed samples (one tick per observed pose, one tick = one second of
// sample spacing) and extrapolates at future segment boundaries. Longitude
// is tracked unwrapped (accumulated shortest-arc deltas) so the regression
// domain stays continuous across the +/-180 seam, then re-wrapped on output.
type Linear struct {
	historySeconds float64

	ticks         []float64
	lats          []float64
	lonsUnwrapped []float64

	tick       float64
	haveLastRaw bool
	lastRawLon float64
}

func NewLinear(historySeconds float64) *Linear {
	if historySeconds <= 0 {
		historySeconds = 1
	}
	return &Linear{historySeconds: historySeconds}
}

func (l *Linear) Update(observed []sim.SphericalPosition) {
	for _, p := range observed {
		unwrapped := p.LongitudeDeg
		if l.haveLastRaw {
			delta := sim.ShortestArcDelta(l.lastRawLon, p.LongitudeDeg)
			unwrapped = l.lonsUnwrapped[len(l.lonsUnwrapped)-1] + delta
		}
		l.lastRawLon = p.LongitudeDeg
		l.haveLastRaw = true

		l.ticks = append(l.ticks, l.tick)
		l.lats = append(l.lats, p.LatitudeDeg)
		l.lonsUnwrapped = append(l.lonsUnwrapped, unwrapped)
		l.tick++
	}
	l.trim()
}

// trim drops samples older than the trailing HistorySeconds window.
func (l *Linear) trim() {
	if len(l.ticks) == 0 {
		return
	}
	cutoff := l.ticks[len(l.ticks)-1] - l.historySeconds
	i := 0
	for i < len(l.ticks) && l.ticks[i] <= cutoff {
		i++
	}
	l.ticks = l.ticks[i:]
	l.lats = l.lats[i:]
	l.lonsUnwrapped = l.lonsUnwrapped[i:]
}

func (l *Linear) PredictPositions(fromOffsetSeconds, stepSeconds float64, count int) []sim.SphericalPosition {
	out := make([]sim.SphericalPosition, count)
	if len(l.ticks) < 2 {
		var last sim.SphericalPosition
		if len(l.ticks) == 1 {
			last = sim.SphericalPosition{LatitudeDeg: l.lats[0], LongitudeDeg: sim.NormalizeLongitude(l.lonsUnwrapped[0])}
		}
		for i := range out {
			out[i] = last
		}
		return out
	}

	latAlpha, latBeta := stat.LinearRegression(l.ticks, l.lats, nil, false)
	lonAlpha, lonBeta := stat.LinearRegression(l.ticks, l.lonsUnwrapped, nil, false)

	lastTick := l.ticks[len(l.ticks)-1]
	for i := 0; i < count; i++ {
		t := lastTick + fromOffsetSeconds + float64(i)*stepSeconds
		lat := latAlpha + latBeta*t
		if lat > 90 {
			lat = 90
		}
		if lat < -90 {
			lat = -90
		}
		lon := sim.NormalizeLongitude(lonAlpha + lonBeta*t)
		out[i] = sim.SphericalPosition{LatitudeDeg: lat, LongitudeDeg: lon}
	}
	return out
}
