package sim

// gridSamplesPerAxis controls the resolution of the field-of-view sampling
// grid used to rasterize a pose into a tile distribution. It is scaled with
// the tiling count (4 samples per tile edge, i.e. 4x4 per tile) so finer tilings
// still resolve boundary splits cleanly, and clamped to a sane range.
func gridSamplesPerAxis(t int) int {
	n := 4 * t
	if n < 8 {
		n = 8
	}
	if n > 64 {
		n = 64
	}
	return n
}

// ToDistribution rasterizes one or more head poses into a probability
// distribution over tiles. For a single pose it samples a grid of points
// inside the default field of view and tallies which tile each lands in; for
// several poses it averages their individual distributions uniformly.
func ToDistribution(cfg StreamingConfig, poses []SphericalPosition) []float64 {
	dist := make([]float64, cfg.TileCount())
	if len(poses) == 0 {
		return dist
	}
	for _, p := range poses {
		addSingleDistribution(cfg, p, dist, 1.0/float64(len(poses)))
	}
	return dist
}

// addSingleDistribution rasterizes one pose's field of view and accumulates
// its per-tile weight (scaled by weight) into dist.
func addSingleDistribution(cfg StreamingConfig, pose SphericalPosition, dist []float64, weight float64) {
	n := gridSamplesPerAxis(cfg.TilingCount)
	counts := make([]int, cfg.TileCount())
	total := 0

	halfW := cfg.DefaultFoVWidth / 2
	halfH := cfg.DefaultFoVHeight / 2

	for i := 0; i < n; i++ {
		latFrac := (float64(i) + 0.5) / float64(n)
		latOffset := -halfH + latFrac*cfg.DefaultFoVHeight
		lat := pose.LatitudeDeg + latOffset
		if lat > 90 {
			lat = 90
		}
		if lat < -90 {
			lat = -90
		}
		for j := 0; j < n; j++ {
			lonFrac := (float64(j) + 0.5) / float64(n)
			lonOffset := -halfW + lonFrac*cfg.DefaultFoVWidth
			lon := NormalizeLongitude(pose.LongitudeDeg + lonOffset)

			tile := TileOfPosition(cfg, SphericalPosition{LatitudeDeg: lat, LongitudeDeg: lon})
			counts[tile]++
			total++
		}
	}

	if total == 0 {
		return
	}
	for i, c := range counts {
		dist[i] += weight * float64(c) / float64(total)
	}
}
