package ports

import (
	"context"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, notice *domain.BookingNotice)
	NotifyBookingCancelled(ctx context.Context, notice *domain.BookingNotice)
}
