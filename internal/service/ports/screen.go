package ports

import (
	"context"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type ScreenRepo interface {
	Create(ctx context.Context, s *domain.Screen) error
	GetByID(ctx context.Context, id string) (*domain.Screen, error)
	ListByCinema(ctx context.Context, cinemaID string) ([]*domain.Screen, error)
}
