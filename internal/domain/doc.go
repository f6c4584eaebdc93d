// Package domain models the London Fire Brigade (LFB) animal rescue dataset
// and the table abstraction the cleaning pipeline operates on.
//
// # Data Source
//
// Animal rescue incident records are published by the LFB on the London
// Datastore as a spreadsheet with one row per special-service callout
// (cat stuck in tree, horse trapped in mud, and so on). Rows carry a mix of
// free-text, categorical, monetary, and location fields.
//
// # Location Conventions
//
// Rows locate an incident in up to two coordinate systems:
//
//	easting_rounded / northing_rounded — British National Grid (EPSG 27700)
//	  planar coordinates, rounded to 50 m for anonymisation. Zero or empty
//	  means unreported. easting_m / northing_m hold the unrounded metre
//	  values where available.
//	latitude / longitude — WGS84 (EPSG 4326) geographic coordinates. Many
//	  older rows carry only the grid reference, so latitude is resolved by
//	  reprojection during cleaning. A row that already has a latitude keeps
//	  it; the grid reference is never allowed to overwrite it.
//
// All planar columns are removed after resolution since they carry no
// information independent of the derived geographic coordinate.
//
// # Time Conventions
//
// date_time_of_call is a string in day-first "02/01/2006 15:04" layout,
// e.g. "31/05/2022 18:38". The dataset is format-consistent; a row that
// does not parse indicates upstream corruption and fails the whole run.
//
// # Ordered Categorical Domains
//
// Derived month and weekday labels are ordered categoricals: the twelve
// month names January through December and the seven weekday names Monday
// through Sunday, ordered by calendar position rather than lexically, so
// grouping and sorting downstream follow the calendar. See [Month] and
// [Weekday].
//
// # Record IDs
//
// Cleaned rows published to the sink are keyed by a deterministic SHA-256
// hash of the row's cells. Replaying the same input produces the same IDs,
// which keeps downstream upserts idempotent. See [RecordID].
package domain
