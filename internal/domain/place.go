package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrNameRequired is returned when a place is created without a name.
// Checked before any repository call so an empty submission never
// reaches the database.
var ErrNameRequired = errors.New("name is required")

// Place is a single place to visit.
type Place struct {
	ID          string
	Name        string
	Location    string
	Description string
	Visited     bool
	CreatedAt   time.Time
}

// Validate checks the user-supplied fields. Name must be non-empty
// after trimming; Location and Description are free-form.
func (p *Place) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// DisplayID returns a short identifier for display and prefix lookup.
func (p *Place) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
