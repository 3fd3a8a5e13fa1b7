package ports

import (
	"context"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type FilmRepo interface {
	Create(ctx context.Context, f *domain.Film) error
	GetByID(ctx context.Context, id string) (*domain.Film, error)
	List(ctx context.Context) ([]*domain.Film, error)
	Delete(ctx context.Context, id string) error
}
