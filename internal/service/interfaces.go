package service

import (
	"context"

	"github.com/mariusbk/wander/internal/domain"
)

type PlaceService interface {
	Create(ctx context.Context, p *domain.Place) error
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	List(ctx context.Context) ([]*domain.Place, error)
	SetVisited(ctx context.Context, id string, visited bool) error
	Delete(ctx context.Context, id string) error
}
