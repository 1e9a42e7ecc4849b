package store

import "time"

// Settings holds one user's preferences document as stored. The document
// itself is opaque JSON; the settings service owns its shape.
type Settings struct {
	UserID    string
	Document  []byte
	UpdatedAt time.Time
}
