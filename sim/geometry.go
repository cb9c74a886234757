package sim

import "math"

// faceCenters gives the (longitude, latitude) center, in degrees, of each
// cube face in the fixed FaceLeft..FaceFront order.
var faceCenters = [numFaces][2]float64{
	FaceLeft:  {-90, 0},
	FaceRight: {90, 0},
	FaceUp:    {0, 90},
	FaceDown:  {0, -90},
	FaceBack:  {180, 0},
	FaceFront: {0, 0},
}

// unitVector converts a spherical position to a unit vector in a
// right-handed frame where longitude 0 / latitude 0 is +X, longitude 90 is
// +Y, and latitude 90 is +Z.
func unitVector(p SphericalPosition) (x, y, z float64) {
	latRad := p.LatitudeDeg * math.Pi / 180
	lonRad := p.LongitudeDeg * math.Pi / 180
	cosLat := math.Cos(latRad)
	return cosLat * math.Cos(lonRad), cosLat * math.Sin(lonRad), math.Sin(latRad)
}

// faceNormal returns the outward unit normal of a face, derived from its
// center so faceNormal and faceCenters can never drift apart.
func faceNormal(f CubeFace) (x, y, z float64) {
	center := faceCenters[f]
	return unitVector(SphericalPosition{LatitudeDeg: center[1], LongitudeDeg: center[0]})
}

// faceOfVector returns which cube face a direction vector gnomonically
// projects onto: the face whose outward normal has the largest dot product
// with the vector.
func faceOfVector(x, y, z float64) CubeFace {
	best := FaceFront
	bestDot := math.Inf(-1)
	for f := CubeFace(0); f < numFaces; f++ {
		nx, ny, nz := faceNormal(f)
		dot := x*nx + y*ny + z*nz
		if dot > bestDot {
			bestDot = dot
			best = f
		}
	}
	return best
}

// faceLocalUV projects a direction vector onto a face's local (u, v) plane,
// both nominally in [-1, 1] via gnomonic (tangent-plane) projection. u is the
// longitude-like axis (the tile column axis) and v is the latitude-like axis
// (the tile row axis); signs are chosen per face so that u increases away
// from the Back face and v increases toward the pole, keeping the mapping
// continuous within each face.
func faceLocalUV(f CubeFace, x, y, z float64) (u, v float64) {
	switch f {
	case FaceLeft:
		dot := -y
		return x / dot, z / dot
	case FaceRight:
		dot := y
		return x / dot, z / dot
	case FaceFront:
		dot := x
		return y / dot, z / dot
	case FaceBack:
		dot := -x
		return -y / dot, z / dot
	case FaceUp:
		dot := z
		return x / dot, y / dot
	default: // FaceDown
		dot := -z
		return x / dot, -y / dot
	}
}

// TileIndex returns the global tile index for a face/row/col. Within a face,
// tiles are laid out column-major (index = col*T + row, row 0 at the
// face-local top): the column axis tracks longitude and the row axis tracks
// latitude, and this is the layout that reproduces the rasterizer's
// published reference distributions exactly at face boundaries.
func TileIndex(cfg StreamingConfig, f CubeFace, row, col int) int {
	t := cfg.TilingCount
	return int(f)*t*t + col*t + row
}

// TileOfPosition returns the global tile index a single pose falls into.
func TileOfPosition(cfg StreamingConfig, p SphericalPosition) int {
	x, y, z := unitVector(p)
	f := faceOfVector(x, y, z)
	u, v := faceLocalUV(f, x, y, z)
	t := cfg.TilingCount

	col := tileCoord(u, t)
	row := tileCoord(-v, t) // row 0 at top => larger v maps to smaller row
	return TileIndex(cfg, f, row, col)
}

// tileCoord maps a local coordinate to a tile index in [0, t), clamping
// outside [-1, 1] (which occurs only for off-center grid samples straddling
// a face edge during rasterization).
func tileCoord(coord float64, t int) int {
	frac := (coord + 1) / 2 // [0, 1]
	idx := int(frac * float64(t))
	if idx < 0 {
		idx = 0
	}
	if idx >= t {
		idx = t - 1
	}
	return idx
}
