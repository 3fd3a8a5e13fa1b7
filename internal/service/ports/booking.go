package ports

import (
	"context"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByShowing(ctx context.Context, showingID string) ([]*domain.Booking, error)
}
