package testutil

import (
	"sync/atomic"
	"time"

	"github.com/mariusbk/wander/internal/domain"
	"github.com/google/uuid"
)

// testClockOffset spaces fixture creation times apart so list ordering
// (created_at DESC) is deterministic even within a single test run.
var testClockOffset atomic.Int64

// PlaceOption customizes a fixture place.
type PlaceOption func(*domain.Place)

func WithLocation(loc string) PlaceOption {
	return func(p *domain.Place) {
		p.Location = loc
	}
}

func WithDescription(desc string) PlaceOption {
	return func(p *domain.Place) {
		p.Description = desc
	}
}

func WithVisited(v bool) PlaceOption {
	return func(p *domain.Place) {
		p.Visited = v
	}
}

func WithCreatedAt(t time.Time) PlaceOption {
	return func(p *domain.Place) {
		p.CreatedAt = t
	}
}

// NewTestPlace builds a valid place with a unique ID and a creation time
// strictly later than any fixture built before it.
func NewTestPlace(name string, opts ...PlaceOption) *domain.Place {
	n := testClockOffset.Add(1)
	p := &domain.Place{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Add(time.Duration(n) * time.Millisecond),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
