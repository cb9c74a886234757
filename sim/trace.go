package sim

import "math"

// NetworkTrace is a regularly sampled sequence of observed throughputs.
type NetworkTrace struct {
	SamplesMbps     []float64 `yaml:"samplesMbps"`
	IntervalSeconds float64   `yaml:"intervalSeconds"`
}

// DurationSeconds returns the trace's total recorded duration.
func (t NetworkTrace) DurationSeconds() float64 {
	return float64(len(t.SamplesMbps)) * t.IntervalSeconds
}

// ThroughputAt returns the time-weighted average observed throughput over
// [startSeconds, startSeconds+durationSeconds), clamping non-finite samples
// to 0 per the failure semantics of the simulation loop.
func (t NetworkTrace) ThroughputAt(startSeconds, durationSeconds float64) float64 {
	if len(t.SamplesMbps) == 0 || t.IntervalSeconds <= 0 || durationSeconds <= 0 {
		return 0
	}
	end := startSeconds + durationSeconds
	var weightedSum, weight float64
	for i, sample := range t.SamplesMbps {
		sampleStart := float64(i) * t.IntervalSeconds
		sampleEnd := sampleStart + t.IntervalSeconds
		overlap := math.Min(end, sampleEnd) - math.Max(startSeconds, sampleStart)
		if overlap <= 0 {
			continue
		}
		v := sample
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			v = 0
		}
		weightedSum += v * overlap
		weight += overlap
	}
	if weight == 0 {
		return 0
	}
	return weightedSum / weight
}

// SamplesInWindow returns the raw throughput samples falling inside
// [startSeconds, startSeconds+durationSeconds), clamped per the failure
// semantics of the simulation loop.
func (t NetworkTrace) SamplesInWindow(startSeconds, durationSeconds float64) []float64 {
	if len(t.SamplesMbps) == 0 || t.IntervalSeconds <= 0 {
		return nil
	}
	end := startSeconds + durationSeconds
	firstIdx := int(math.Ceil(startSeconds/t.IntervalSeconds - 1e-9))
	if firstIdx < 0 {
		firstIdx = 0
	}
	var out []float64
	for i := firstIdx; i < len(t.SamplesMbps); i++ {
		sampleTime := float64(i) * t.IntervalSeconds
		if sampleTime >= end {
			break
		}
		v := t.SamplesMbps[i]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// ViewportTrace is a regularly sampled sequence of observed head poses.
type ViewportTrace struct {
	Samples         []SphericalPosition `yaml:"samples"`
	IntervalSeconds float64             `yaml:"intervalSeconds"`
}

// DurationSeconds returns the trace's total recorded duration.
func (t ViewportTrace) DurationSeconds() float64 {
	return float64(len(t.Samples)) * t.IntervalSeconds
}

// PosesInWindow returns the observed poses falling inside
// [startSeconds, startSeconds+durationSeconds), clamping non-finite values
// to the last valid pose per the failure semantics of the simulation loop.
func (t ViewportTrace) PosesInWindow(startSeconds, durationSeconds float64) []SphericalPosition {
	if len(t.Samples) == 0 || t.IntervalSeconds <= 0 {
		return nil
	}
	end := startSeconds + durationSeconds
	firstIdx := int(math.Ceil(startSeconds/t.IntervalSeconds - 1e-9))
	if firstIdx < 0 {
		firstIdx = 0
	}
	var out []SphericalPosition
	var lastValid SphericalPosition
	haveValid := false
	for i := firstIdx; i < len(t.Samples); i++ {
		sampleTime := float64(i) * t.IntervalSeconds
		if sampleTime >= end {
			break
		}
		p := t.Samples[i]
		if math.IsNaN(p.LatitudeDeg) || math.IsInf(p.LatitudeDeg, 0) ||
			math.IsNaN(p.LongitudeDeg) || math.IsInf(p.LongitudeDeg, 0) {
			if haveValid {
				p = lastValid
			} else {
				p = SphericalPosition{}
			}
		} else {
			lastValid = p
			haveValid = true
		}
		out = append(out, p)
	}
	return out
}
