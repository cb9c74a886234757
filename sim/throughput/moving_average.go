package throughput

import "gonum.org/v1/gonum/stat"

// MovingAverage predicts the next segment's throughput as the arithmetic
// mean of the last WindowCount observed samples (fewer if history is
// shorter).
type MovingAverage struct {
	window  int
	history []float64
}

// NewMovingAverage builds a moving-average predictor over the given window
// size. A non-positive window is treated as 1.
func NewMovingAverage(window int) *MovingAverage {
	if window < 1 {
		window = 1
	}
	return &MovingAverage{window: window}
}

func (m *MovingAverage) Update(sampleMbps float64) {
	m.history = append(m.history, sampleMbps)
	if len(m.history) > m.window {
		m.history = m.history[len(m.history)-m.window:]
	}
}

func (m *MovingAverage) Predict() float64 {
	if len(m.history) == 0 {
		return 0
	}
	return stat.Mean(m.history, nil)
}
