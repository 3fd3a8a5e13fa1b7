package ports

import (
	"context"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type CinemaRepo interface {
	Create(ctx context.Context, c *domain.Cinema) error
	GetByID(ctx context.Context, id string) (*domain.Cinema, error)
	List(ctx context.Context) ([]*domain.Cinema, error)
}
