package ports

import (
	"context"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type CityRepo interface {
	Create(ctx context.Context, c *domain.City) error
	GetByID(ctx context.Context, id string) (*domain.City, error)
	// GetByShowing resolves the city owning the showing's screen's cinema,
	// which is where the showing's prices live.
	GetByShowing(ctx context.Context, showingID string) (*domain.City, error)
	List(ctx context.Context) ([]*domain.City, error)
	UpdatePrices(ctx context.Context, id string, prices domain.CityPrices) error
}
