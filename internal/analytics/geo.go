package analytics

import (
	"github.com/twpayne/go-geom"
)

const (
	squareHalfLat = 0.01
	squareHalfLng = 0.02
)

// AreaSquare builds a closed rectangular ring around the centroid, good
// enough for a demo choropleth. Coordinates are lng/lat.
func AreaSquare(lat, lng float64) *geom.Polygon {
	flat := []float64{
		lng - squareHalfLng, lat - squareHalfLat,
		lng + squareHalfLng, lat - squareHalfLat,
		lng + squareHalfLng, lat + squareHalfLat,
		lng - squareHalfLng, lat + squareHalfLat,
		lng - squareHalfLng, lat - squareHalfLat,
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}).SetSRID(4326)
}
