package sim

import "math"

// CubeFace indexes the six faces of the cube-map projection, in the fixed
// order every tile index and distribution vector is laid out in.
type CubeFace int

const (
	FaceLeft CubeFace = iota
	FaceRight
	FaceUp
	FaceDown
	FaceBack
	FaceFront
	numFaces = 6
)

// StreamingConfig is the immutable per-session configuration shared by every
// component a session constructs: predictors, controller, allocator, and the
// simulator loop itself.
type StreamingConfig struct {
	SegmentSeconds   float64   `yaml:"segmentSeconds"`   // duration of one segment, > 0
	Ladder           []float64 `yaml:"ladder"`           // per-tile bitrate levels in Mbps, strictly increasing, >= 1 entry
	TilingCount      int       `yaml:"tilingCount"`       // T: each face is subdivided into T x T tiles, >= 1
	DefaultFoVWidth  float64   `yaml:"defaultFoVWidth"`  // default viewport field-of-view width, degrees
	DefaultFoVHeight float64   `yaml:"defaultFoVHeight"` // default viewport field-of-view height, degrees
	MaxBufferSeconds float64   `yaml:"maxBufferSeconds"` // maximum buffer occupancy, > 0
}

// TileCount returns the number of tiles per segment: 6*T^2.
func (c StreamingConfig) TileCount() int {
	return numFaces * c.TilingCount * c.TilingCount
}

// MinRate and MaxRate return the floor and ceiling of the bitrate ladder.
func (c StreamingConfig) MinRate() float64 { return c.Ladder[0] }
func (c StreamingConfig) MaxRate() float64 { return c.Ladder[len(c.Ladder)-1] }

// Validate aggregates every configuration problem found rather than failing
// on the first one, consistent with this codebase's validation style.
func (c StreamingConfig) Validate() error {
	var problems []string
	if c.SegmentSeconds <= 0 || math.IsNaN(c.SegmentSeconds) || math.IsInf(c.SegmentSeconds, 0) {
		problems = append(problems, "SegmentSeconds must be > 0")
	}
	if len(c.Ladder) == 0 {
		problems = append(problems, "Ladder must have at least one entry")
	} else {
		for i := 1; i < len(c.Ladder); i++ {
			if c.Ladder[i] <= c.Ladder[i-1] {
				problems = append(problems, "Ladder must be strictly increasing")
				break
			}
		}
		if c.Ladder[0] <= 0 {
			problems = append(problems, "Ladder entries must be positive")
		}
	}
	if c.TilingCount <= 0 {
		problems = append(problems, "TilingCount must be > 0")
	}
	if c.MaxBufferSeconds <= 0 || math.IsNaN(c.MaxBufferSeconds) || math.IsInf(c.MaxBufferSeconds, 0) {
		problems = append(problems, "MaxBufferSeconds must be > 0")
	}
	if c.DefaultFoVWidth <= 0 || c.DefaultFoVWidth > 360 || math.IsNaN(c.DefaultFoVWidth) {
		problems = append(problems, "DefaultFoVWidth must be in (0, 360]")
	}
	if c.DefaultFoVHeight <= 0 || c.DefaultFoVHeight > 180 || math.IsNaN(c.DefaultFoVHeight) {
		problems = append(problems, "DefaultFoVHeight must be in (0, 180]")
	}
	return joinProblems(problems)
}

// DefaultStreamingConfig returns a small but valid configuration, useful as a
// base for tests and CLI defaults.
func DefaultStreamingConfig() StreamingConfig {
	return StreamingConfig{
		SegmentSeconds:   1,
		Ladder:           []float64{1, 2, 4, 8},
		TilingCount:      1,
		DefaultFoVWidth:  90,
		DefaultFoVHeight: 90,
		MaxBufferSeconds: 5,
	}
}

// SphericalPosition is a head pose on the unit sphere. Latitude is in
// [-90, 90]; longitude is in (-180, 180] but is not normalized on
// construction, only on arithmetic that needs it (see NormalizeLongitude).
type SphericalPosition struct {
	LatitudeDeg  float64 `yaml:"latitudeDeg"`
	LongitudeDeg float64 `yaml:"longitudeDeg"`
}

// NormalizeLongitude wraps a longitude value into (-180, 180].
func NormalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon <= 0 {
		lon += 360
	}
	return lon - 180
}

// ShortestArcDelta returns the signed shortest-arc angular delta from `from`
// to `to`, in degrees, wrapping at +/-180.
func ShortestArcDelta(from, to float64) float64 {
	return NormalizeLongitude(to - from)
}
