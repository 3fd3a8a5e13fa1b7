package ports

import (
	"context"
	"time"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type ReportRepo interface {
	// ListBookingRows returns one wide row per booking, joined with film,
	// venue, employee and city prices. Nil bounds mean unbounded; bounds
	// apply to the showing's start time. Rows come back ordered by booking
	// id so downstream aggregation is deterministic.
	ListBookingRows(ctx context.Context, from, to *time.Time) ([]*domain.BookingRow, error)
}
