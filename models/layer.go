package models

// Layer describes one entry of the static geospatial catalog: a table or view
// exposed for read-only retrieval as a GeoJSON FeatureCollection.
//
// The catalog is defined in code and never derived from the database schema.
// Table is the only value ever interpolated into layer SQL, which keeps the
// query free of caller-controlled identifiers.
type Layer struct {
	// ID is the small integer identifier used in /api/layers/{id}.
	ID int `json:"id"`

	// Name is the human-readable display name shown in the layer panel.
	Name string `json:"name"`

	// GeometryType is the GeoJSON geometry type of the layer's features.
	GeometryType string `json:"type"`

	// Table is the backing table or view name in the public schema.
	// Never exposed to clients.
	Table string `json:"-"`
}
