package sim

import "testing"

func referenceConfig(t int) StreamingConfig {
	cfg := DefaultStreamingConfig()
	cfg.TilingCount = t
	return cfg
}

func TestTileOfPosition_FrontFaceCenter(t *testing.T) {
	// GIVEN a T=1 config (one tile per face)
	cfg := referenceConfig(1)

	// WHEN a pose sits at the front face's center
	tile := TileOfPosition(cfg, SphericalPosition{LatitudeDeg: 0, LongitudeDeg: 0})

	// THEN it lands on the front face's single tile
	want := TileIndex(cfg, FaceFront, 0, 0)
	if tile != want {
		t.Errorf("got tile %d, want %d", tile, want)
	}
}

func TestTileOfPosition_LeftFaceCenter(t *testing.T) {
	cfg := referenceConfig(1)
	tile := TileOfPosition(cfg, SphericalPosition{LatitudeDeg: 0, LongitudeDeg: -90})
	want := TileIndex(cfg, FaceLeft, 0, 0)
	if tile != want {
		t.Errorf("got tile %d, want %d", tile, want)
	}
}

func TestTileIndex_ColumnMajorWithinFace(t *testing.T) {
	// GIVEN T=2 (four tiles per face)
	cfg := referenceConfig(2)

	// WHEN two tiles share a column but differ by row
	a := TileIndex(cfg, FaceLeft, 0, 0)
	b := TileIndex(cfg, FaceLeft, 1, 0)

	// THEN they are adjacent indices (row varies fastest within a column)
	if b-a != 1 {
		t.Errorf("expected adjacent row-major-within-column indices, got %d and %d", a, b)
	}

	// AND a tile in the next column is offset by T, not by 1
	c := TileIndex(cfg, FaceLeft, 0, 1)
	if c-a != cfg.TilingCount {
		t.Errorf("expected column stride of %d, got %d", cfg.TilingCount, c-a)
	}
}

func TestNormalizeLongitude_WrapsIntoRange(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{181, -179},
		{-180, 180},
		{-181, 179},
		{360, 0},
		{540, 180},
	}
	for _, c := range cases {
		got := NormalizeLongitude(c.in)
		if got != c.want {
			t.Errorf("NormalizeLongitude(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestShortestArcDelta_PicksShorterDirection(t *testing.T) {
	// GIVEN a pair of longitudes straddling the +/-180 seam
	got := ShortestArcDelta(170, -170)

	// THEN the delta goes the short way (+20), not the long way (-340)
	if got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}
