package service

import (
	"context"
	"strings"
	"time"

	"github.com/mariusbk/wander/internal/domain"
	"github.com/mariusbk/wander/internal/repository"
	"github.com/google/uuid"
)

type placeService struct {
	places   repository.PlaceRepo
	observer UseCaseObserver
}

// NewPlaceService creates the place service. An optional observer
// receives telemetry for mutating use cases.
func NewPlaceService(places repository.PlaceRepo, observers ...UseCaseObserver) PlaceService {
	return &placeService{
		places:   places,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *placeService) Create(ctx context.Context, p *domain.Place) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		// Validation failures never reach the repository.
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	start := time.Now()
	err := s.places.Create(ctx, p)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "place_create",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"place_id": p.ID},
		StartedAt: start,
	})
	return err
}

func (s *placeService) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	return s.places.GetByID(ctx, id)
}

func (s *placeService) List(ctx context.Context) ([]*domain.Place, error) {
	return s.places.List(ctx)
}

func (s *placeService) SetVisited(ctx context.Context, id string, visited bool) error {
	start := time.Now()
	err := s.places.SetVisited(ctx, id, visited)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "place_set_visited",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"place_id": id, "visited": visited},
		StartedAt: start,
	})
	return err
}

func (s *placeService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.places.Delete(ctx, id)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "place_delete",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"place_id": id},
		StartedAt: start,
	})
	return err
}
