package models

import "time"

// Record is a user-submitted labeled point location ("registro").
// Records are immutable after insertion and always queried filtered by owner.
type Record struct {
	// ID is the unique identifier assigned by the database.
	ID int64 `json:"id"`

	// UserID is the owning user. Enforced by a foreign key on insert.
	UserID int64 `json:"-"`

	// Username is the owner's handle, joined in on listing.
	Username string `json:"username"`

	// Lng and Lat are the WGS84 coordinates of the point.
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`

	// Texto is the optional free-text search label.
	Texto *string `json:"texto_busqueda"`

	// Tipo is the optional category tag.
	Tipo *string `json:"tipo"`

	// CreadoEn is the creation timestamp assigned by the database.
	CreadoEn time.Time `json:"creado_en"`
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "registros"
}
