package ports

import (
	"context"
	"time"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type ShowingRepo interface {
	Create(ctx context.Context, s *domain.Showing) error
	Update(ctx context.Context, s *domain.Showing) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Showing, error)
	ListByScreenAndDay(ctx context.Context, screenID string, dayStart, dayEnd time.Time) ([]*domain.ScreenShowing, error)
	List(ctx context.Context, filter domain.ShowingFilter) ([]*domain.ShowingDetails, error)
}
