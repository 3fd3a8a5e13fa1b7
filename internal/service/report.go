package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/service/ports"
)

// ReportService computes the four staff reports in-process from one wide
// booking row set, pricing each booking with the same function bookings
// are priced with everywhere else. All four are pure reads.
type ReportService struct {
	reportRepo ports.ReportRepo
	cinemaRepo ports.CinemaRepo
}

func NewReportService(reportRepo ports.ReportRepo, cinemaRepo ports.CinemaRepo) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		cinemaRepo: cinemaRepo,
	}
}

// BookingsPerFilm sums booked seats per film across all time, most booked
// first. Films with no bookings never produce a row.
func (s *ReportService) BookingsPerFilm(ctx context.Context) ([]*domain.FilmBookings, error) {
	rows, err := s.reportRepo.ListBookingRows(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list booking rows: %w", err)
	}

	byFilm := make(map[string]*domain.FilmBookings)
	var order []string
	for _, row := range rows {
		fb, ok := byFilm[row.FilmID]
		if !ok {
			fb = &domain.FilmBookings{
				FilmID:        row.FilmID,
				FilmTitle:     row.FilmTitle,
				YearPublished: row.YearPublished,
			}
			byFilm[row.FilmID] = fb
			order = append(order, row.FilmID)
		}
		fb.LowerBooked += row.LowerBooked
		fb.UpperBooked += row.UpperBooked
		fb.VIPBooked += row.VIPBooked
		fb.Total += row.LowerBooked + row.UpperBooked + row.VIPBooked
	}

	res := make([]*domain.FilmBookings, 0, len(order))
	for _, id := range order {
		res = append(res, byFilm[id])
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Total > res[j].Total })

	return res, nil
}

// MonthlyRevenueByCinema totals booking prices per cinema for the month.
// Every cinema appears, idle ones at 0.00; totals are rounded after
// summing the already-rounded booking prices.
func (s *ReportService) MonthlyRevenueByCinema(ctx context.Context, year int, month time.Month) ([]*domain.CinemaRevenue, error) {
	monthStart, monthEnd := domain.MonthBounds(year, month)

	rows, err := s.reportRepo.ListBookingRows(ctx, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("list booking rows: %w", err)
	}

	totals := make(map[string]float64)
	for _, row := range rows {
		price, err := domain.BookingPrice(&row.City, row.ShowTime, row.LowerBooked, row.UpperBooked, row.VIPBooked)
		if err != nil {
			return nil, fmt.Errorf("price booking %s: %w", row.BookingID, err)
		}
		totals[row.CinemaID] += price
	}

	cinemas, err := s.cinemaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}

	res := make([]*domain.CinemaRevenue, 0, len(cinemas))
	for _, c := range cinemas {
		res = append(res, &domain.CinemaRevenue{
			CinemaID:   c.ID,
			CinemaName: c.Name,
			Revenue:    domain.RoundPrice(totals[c.ID]),
		})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Revenue > res[j].Revenue })

	return res, nil
}

// TopRevenueFilm returns the film with the highest all-time revenue. Ties
// go to the film encountered first in booking order, which keeps the
// result deterministic.
func (s *ReportService) TopRevenueFilm(ctx context.Context) (*domain.FilmRevenue, error) {
	rows, err := s.reportRepo.ListBookingRows(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list booking rows: %w", err)
	}

	byFilm := make(map[string]*domain.FilmRevenue)
	var order []string
	for _, row := range rows {
		fr, ok := byFilm[row.FilmID]
		if !ok {
			fr = &domain.FilmRevenue{
				FilmID:        row.FilmID,
				FilmTitle:     row.FilmTitle,
				YearPublished: row.YearPublished,
			}
			byFilm[row.FilmID] = fr
			order = append(order, row.FilmID)
		}
		price, err := domain.BookingPrice(&row.City, row.ShowTime, row.LowerBooked, row.UpperBooked, row.VIPBooked)
		if err != nil {
			return nil, fmt.Errorf("price booking %s: %w", row.BookingID, err)
		}
		fr.Revenue += price
	}

	var top *domain.FilmRevenue
	for _, id := range order {
		fr := byFilm[id]
		fr.Revenue = domain.RoundPrice(fr.Revenue)
		if top == nil || fr.Revenue > top.Revenue {
			top = fr
		}
	}
	if top == nil {
		return nil, fmt.Errorf("%w: no bookings recorded", domain.ErrFilmNotFound)
	}

	return top, nil
}

// EmployeeBookingsPerMonth counts bookings taken by each employee whose
// showing falls in the month, busiest first. Bookings made without an
// employee, and employees with none, are omitted.
func (s *ReportService) EmployeeBookingsPerMonth(ctx context.Context, year int, month time.Month) ([]*domain.EmployeeBookings, error) {
	monthStart, monthEnd := domain.MonthBounds(year, month)

	rows, err := s.reportRepo.ListBookingRows(ctx, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("list booking rows: %w", err)
	}

	byEmployee := make(map[string]*domain.EmployeeBookings)
	var order []string
	for _, row := range rows {
		if row.EmployeeID == nil {
			continue
		}
		eb, ok := byEmployee[*row.EmployeeID]
		if !ok {
			eb = &domain.EmployeeBookings{
				EmployeeID: *row.EmployeeID,
				Username:   row.Username,
			}
			byEmployee[*row.EmployeeID] = eb
			order = append(order, *row.EmployeeID)
		}
		eb.Bookings++
	}

	res := make([]*domain.EmployeeBookings, 0, len(order))
	for _, id := range order {
		res = append(res, byEmployee[id])
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Bookings > res[j].Bookings })

	return res, nil
}
