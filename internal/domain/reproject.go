package domain

// EPSG codes for the two coordinate reference systems this dataset uses.
const (
	EPSGBritishNationalGrid = 27700
	EPSGWGS84               = 4326
)

// Reprojector converts a planar British National Grid coordinate into a
// WGS84 geographic coordinate. Implementations are pure; an error means the
// input is outside the source system's domain.
type Reprojector interface {
	Reproject(easting, northing float64) (lat, lon float64, err error)
}
