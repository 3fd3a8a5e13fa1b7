package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	showingRepo ports.ShowingRepo
	filmRepo    ports.FilmRepo
	cityRepo    ports.CityRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	showingRepo ports.ShowingRepo,
	filmRepo ports.FilmRepo,
	cityRepo ports.CityRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		showingRepo: showingRepo,
		filmRepo:    filmRepo,
		cityRepo:    cityRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.ShowingID == "" {
		return nil, fmt.Errorf("%w: showing is required", domain.ErrValidation)
	}
	if input.LowerBooked < 0 || input.UpperBooked < 0 || input.VIPBooked < 0 {
		return nil, fmt.Errorf("%w: seat counts cannot be negative", domain.ErrValidation)
	}
	if input.LowerBooked+input.UpperBooked+input.VIPBooked == 0 {
		return nil, fmt.Errorf("%w: at least one seat must be booked", domain.ErrValidation)
	}
	if input.Name == "" || input.Phone == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: name, phone and email are required", domain.ErrValidation)
	}

	showing, err := s.showingRepo.GetByID(ctx, input.ShowingID)
	if err != nil {
		return nil, fmt.Errorf("get showing: %w", err)
	}

	film, err := s.filmRepo.GetByID(ctx, showing.FilmID)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		ShowingID:   showing.ID,
		EmployeeID:  input.EmployeeID,
		LowerBooked: input.LowerBooked,
		UpperBooked: input.UpperBooked,
		VIPBooked:   input.VIPBooked,
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		CreatedAt:   time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("showing_id", showing.ID),
		logger.Int("seats", booking.Seats()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), &domain.BookingNotice{
		CustomerName: booking.Name,
		FilmTitle:    film.Title,
		ShowTime:     showing.ShowTime,
		Seats:        booking.Seats(),
	})

	return booking, nil
}

// Cancel deletes the booking outright; bookings are immutable once made.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.String("showing_id", booking.ShowingID),
	)

	// The notice is best-effort: the showing may have been deleted already.
	showing, err := s.showingRepo.GetByID(ctx, booking.ShowingID)
	if err != nil {
		s.logger.Error("failed to get showing for cancel notification",
			logger.String("showing_id", booking.ShowingID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	film, err := s.filmRepo.GetByID(ctx, showing.FilmID)
	if err != nil {
		s.logger.Error("failed to get film for cancel notification",
			logger.String("film_id", showing.FilmID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), &domain.BookingNotice{
		CustomerName: booking.Name,
		FilmTitle:    film.Title,
		ShowTime:     showing.ShowTime,
		Seats:        booking.Seats(),
	})

	return nil
}

// ListByShowing returns a showing's bookings with live prices. The price is
// recomputed from the owning city's current tier prices on every read.
func (s *BookingService) ListByShowing(ctx context.Context, showingID string) ([]*domain.PricedBooking, error) {
	showing, err := s.showingRepo.GetByID(ctx, showingID)
	if err != nil {
		return nil, fmt.Errorf("get showing: %w", err)
	}

	city, err := s.cityRepo.GetByShowing(ctx, showingID)
	if err != nil {
		return nil, fmt.Errorf("get city for showing: %w", err)
	}

	bookings, err := s.bookingRepo.ListByShowing(ctx, showingID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	priced := make([]*domain.PricedBooking, 0, len(bookings))
	for _, b := range bookings {
		price, err := domain.BookingPrice(city, showing.ShowTime, b.LowerBooked, b.UpperBooked, b.VIPBooked)
		if err != nil {
			return nil, fmt.Errorf("price booking %s: %w", b.ID, err)
		}
		priced = append(priced, &domain.PricedBooking{Booking: *b, Price: price})
	}

	return priced, nil
}
