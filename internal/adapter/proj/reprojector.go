// Package proj converts British National Grid coordinates to WGS84 using
// the EPSG definitions from wroge/wgs84.
package proj

import (
	"fmt"
	"math"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
	"github.com/wroge/wgs84"
)

// Official extent of EPSG 27700. The transverse Mercator inverse is not
// reliable outside it.
const (
	minEasting  = 0.0
	maxEasting  = 700000.0
	minNorthing = 0.0
	maxNorthing = 1300000.0
)

// BNG implements domain.Reprojector for EPSG 27700 → EPSG 4326.
type BNG struct {
	transform wgs84.Func
}

// NewBNG builds the reprojector from the EPSG registry.
func NewBNG() *BNG {
	epsg := wgs84.EPSG()
	return &BNG{
		transform: wgs84.Transform(
			epsg.Code(domain.EPSGBritishNationalGrid),
			epsg.Code(domain.EPSGWGS84),
		),
	}
}

// Reproject converts a planar easting/northing pair into latitude and
// longitude. Errors mean the input lies outside the grid's extent or the
// transform did not converge.
func (b *BNG) Reproject(easting, northing float64) (float64, float64, error) {
	if easting < minEasting || easting > maxEasting || northing < minNorthing || northing > maxNorthing {
		return 0, 0, fmt.Errorf("planar coordinate (%.1f, %.1f) outside the national grid extent", easting, northing)
	}

	// Geographic CRS axis order in wgs84 is lon, lat.
	lon, lat, _ := b.transform(easting, northing, 0)
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return 0, 0, fmt.Errorf("reprojection of (%.1f, %.1f) did not converge", easting, northing)
	}
	return lat, lon, nil
}
