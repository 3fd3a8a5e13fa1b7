package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/service/ports/mocks"
)

var bristol = domain.City{ID: "city1", Name: "Bristol", MorningPrice: 6, AfternoonPrice: 7, EveningPrice: 8}

func reportRow(bookingID, filmID, title string, showTime time.Time, lower, upper, vip int) *domain.BookingRow {
	return &domain.BookingRow{
		BookingID:   bookingID,
		FilmID:      filmID,
		FilmTitle:   title,
		CinemaID:    "cin1",
		CinemaName:  "Bristol Odeon",
		ShowTime:    showTime,
		City:        bristol,
		LowerBooked: lower,
		UpperBooked: upper,
		VIPBooked:   vip,
	}
}

func TestReportService_BookingsPerFilm(t *testing.T) {
	reportRepo := mocks.NewMockReportRepo(t)
	cinemaRepo := mocks.NewMockCinemaRepo(t)

	svc := NewReportService(reportRepo, cinemaRepo)

	evening := time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC)
	rows := []*domain.BookingRow{
		reportRow("b1", "f1", "Alien", evening, 2, 0, 0),
		reportRow("b2", "f2", "Jaws", evening, 5, 1, 0),
		reportRow("b3", "f1", "Alien", evening, 1, 1, 1),
	}
	reportRepo.EXPECT().ListBookingRows(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	res, err := svc.BookingsPerFilm(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Jaws", res[0].FilmTitle)
	assert.Equal(t, 6, res[0].Total)
	assert.Equal(t, "Alien", res[1].FilmTitle)
	assert.Equal(t, 3, res[1].LowerBooked)
	assert.Equal(t, 1, res[1].UpperBooked)
	assert.Equal(t, 1, res[1].VIPBooked)
	assert.Equal(t, 5, res[1].Total)
}

func TestReportService_BookingsPerFilm_Idempotent(t *testing.T) {
	reportRepo := mocks.NewMockReportRepo(t)
	cinemaRepo := mocks.NewMockCinemaRepo(t)

	svc := NewReportService(reportRepo, cinemaRepo)

	evening := time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC)
	rows := []*domain.BookingRow{
		reportRow("b1", "f1", "Alien", evening, 2, 0, 0),
		reportRow("b2", "f2", "Jaws", evening, 2, 0, 0),
	}
	reportRepo.EXPECT().ListBookingRows(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil).Times(2)

	first, err := svc.BookingsPerFilm(context.Background())
	require.NoError(t, err)
	second, err := svc.BookingsPerFilm(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReportService_MonthlyRevenueByCinema(t *testing.T) {
	reportRepo := mocks.NewMockReportRepo(t)
	cinemaRepo := mocks.NewMockCinemaRepo(t)

	svc := NewReportService(reportRepo, cinemaRepo)

	morning := time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC)
	rows := []*domain.BookingRow{
		// Morning base 6.00, two lower seats.
		reportRow("b1", "f1", "Alien", morning, 2, 0, 0),
	}
	reportRepo.EXPECT().ListBookingRows(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, from *time.Time, to *time.Time) {
			require.NotNil(t, from)
			require.NotNil(t, to)
			assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), *from)
			assert.Equal(t, time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC), *to)
		}).
		Return(rows, nil)
	cinemaRepo.EXPECT().List(mock.Anything).Return([]*domain.Cinema{
		{ID: "cin1", Name: "Bristol Odeon"},
		{ID: "cin2", Name: "Bath Picturehouse"},
	}, nil)

	res, err := svc.MonthlyRevenueByCinema(context.Background(), 2024, time.June)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Bristol Odeon", res[0].CinemaName)
	assert.InDelta(t, 12.00, res[0].Revenue, 1e-9)
	// Idle cinemas still get a row, at zero.
	assert.Equal(t, "Bath Picturehouse", res[1].CinemaName)
	assert.InDelta(t, 0.00, res[1].Revenue, 1e-9)
}

func TestReportService_TopRevenueFilm(t *testing.T) {
	reportRepo := mocks.NewMockReportRepo(t)
	cinemaRepo := mocks.NewMockCinemaRepo(t)

	svc := NewReportService(reportRepo, cinemaRepo)

	evening := time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC)
	morning := time.Date(2024, time.June, 14, 10, 0, 0, 0, time.UTC)
	rows := []*domain.BookingRow{
		reportRow("b1", "f1", "Alien", morning, 1, 0, 0),
		reportRow("b2", "f2", "Jaws", evening, 3, 0, 0),
	}
	reportRepo.EXPECT().ListBookingRows(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	top, err := svc.TopRevenueFilm(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Jaws", top.FilmTitle)
	assert.InDelta(t, 24.00, top.Revenue, 1e-9)
}

func TestReportService_TopRevenueFilm_TieGoesToFirstBooked(t *testing.T) {
	reportRepo := mocks.NewMockReportRepo(t)
	cinemaRepo := mocks.NewMockCinemaRepo(t)

	svc := NewReportService(reportRepo, cinemaRepo)

	evening := time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC)
	rows := []*domain.BookingRow{
		reportRow("b1", "f1", "Alien", evening, 2, 0, 0),
		reportRow("b2", "f2", "Jaws", evening, 2, 0, 0),
	}
	reportRepo.EXPECT().ListBookingRows(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	top, err := svc.TopRevenueFilm(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Alien", top.FilmTitle)
}

func TestReportService_TopRevenueFilm_NoBookings(t *testing.T) {
	reportRepo := mocks.NewMockReportRepo(t)
	cinemaRepo := mocks.NewMockCinemaRepo(t)

	svc := NewReportService(reportRepo, cinemaRepo)

	reportRepo.EXPECT().ListBookingRows(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.TopRevenueFilm(context.Background())
	assert.ErrorIs(t, err, domain.ErrFilmNotFound)
}

func TestReportService_EmployeeBookingsPerMonth(t *testing.T) {
	reportRepo := mocks.NewMockReportRepo(t)
	cinemaRepo := mocks.NewMockCinemaRepo(t)

	svc := NewReportService(reportRepo, cinemaRepo)

	evening := time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC)
	alice, bob := "u1", "u2"

	walkIn := reportRow("b1", "f1", "Alien", evening, 1, 0, 0)
	row2 := reportRow("b2", "f1", "Alien", evening, 1, 0, 0)
	row2.EmployeeID, row2.Username = &alice, "alice"
	row3 := reportRow("b3", "f2", "Jaws", evening, 1, 0, 0)
	row3.EmployeeID, row3.Username = &bob, "bob"
	row4 := reportRow("b4", "f2", "Jaws", evening, 1, 0, 0)
	row4.EmployeeID, row4.Username = &bob, "bob"

	reportRepo.EXPECT().ListBookingRows(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.BookingRow{walkIn, row2, row3, row4}, nil)

	res, err := svc.EmployeeBookingsPerMonth(context.Background(), 2024, time.June)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "bob", res[0].Username)
	assert.Equal(t, 2, res[0].Bookings)
	assert.Equal(t, "alice", res[1].Username)
	assert.Equal(t, 1, res[1].Bookings)
}
