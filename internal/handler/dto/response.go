package dto

import (
	"time"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type CityResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MorningPrice   float64 `json:"morning_price"`
	AfternoonPrice float64 `json:"afternoon_price"`
	EveningPrice   float64 `json:"evening_price"`
}

type CinemaResponse struct {
	ID     string `json:"id"`
	CityID string `json:"city_id"`
	Name   string `json:"name"`
}

type ScreenResponse struct {
	ID            string `json:"id"`
	CinemaID      string `json:"cinema_id"`
	Name          string `json:"name"`
	LowerCapacity int    `json:"lower_capacity"`
	UpperCapacity int    `json:"upper_capacity"`
	VIPCapacity   int    `json:"vip_capacity"`
}

type FilmResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	YearPublished   int     `json:"year_published"`
	Rating          float64 `json:"rating"`
	AgeRating       string  `json:"age_rating"`
	DurationMinutes int     `json:"duration_minutes"`
	Synopsis        string  `json:"synopsis"`
	Cast            string  `json:"cast"`
}

type ShowingResponse struct {
	ID       string `json:"id"`
	ScreenID string `json:"screen_id"`
	FilmID   string `json:"film_id"`
	ShowTime string `json:"show_time"`
}

type ShowingDetailsResponse struct {
	ID            string `json:"id"`
	FilmID        string `json:"film_id"`
	FilmTitle     string `json:"film_title"`
	YearPublished int    `json:"year_published"`
	CinemaName    string `json:"cinema_name"`
	ScreenName    string `json:"screen_name"`
	ShowTime      string `json:"show_time"`
	ShowEnd       string `json:"show_end"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	ShowingID   string  `json:"showing_id"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	LowerBooked int     `json:"lower_booked"`
	UpperBooked int     `json:"upper_booked"`
	VIPBooked   int     `json:"vip_booked"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	CreatedAt   string  `json:"created_at"`
}

type PricedBookingResponse struct {
	BookingResponse
	Price float64 `json:"price"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCityResponse(c *domain.City) CityResponse {
	return CityResponse{
		ID:             c.ID,
		Name:           c.Name,
		MorningPrice:   c.MorningPrice,
		AfternoonPrice: c.AfternoonPrice,
		EveningPrice:   c.EveningPrice,
	}
}

func ToCinemaResponse(c *domain.Cinema) CinemaResponse {
	return CinemaResponse{ID: c.ID, CityID: c.CityID, Name: c.Name}
}

func ToScreenResponse(s *domain.Screen) ScreenResponse {
	return ScreenResponse{
		ID:            s.ID,
		CinemaID:      s.CinemaID,
		Name:          s.Name,
		LowerCapacity: s.LowerCapacity,
		UpperCapacity: s.UpperCapacity,
		VIPCapacity:   s.VIPCapacity,
	}
}

func ToFilmResponse(f *domain.Film) FilmResponse {
	return FilmResponse{
		ID:              f.ID,
		Title:           f.Title,
		YearPublished:   f.YearPublished,
		Rating:          f.Rating,
		AgeRating:       string(f.AgeRating),
		DurationMinutes: int(f.Duration / time.Minute),
		Synopsis:        f.Synopsis,
		Cast:            f.Cast,
	}
}

func ToShowingResponse(s *domain.Showing) ShowingResponse {
	return ShowingResponse{
		ID:       s.ID,
		ScreenID: s.ScreenID,
		FilmID:   s.FilmID,
		ShowTime: s.ShowTime.Format(time.RFC3339),
	}
}

func ToShowingDetailsResponse(d *domain.ShowingDetails) ShowingDetailsResponse {
	return ShowingDetailsResponse{
		ID:            d.ID,
		FilmID:        d.FilmID,
		FilmTitle:     d.FilmTitle,
		YearPublished: d.YearPublished,
		CinemaName:    d.CinemaName,
		ScreenName:    d.ScreenName,
		ShowTime:      d.ShowTime.Format(time.RFC3339),
		ShowEnd:       d.ShowEnd.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ShowingID:   b.ShowingID,
		EmployeeID:  b.EmployeeID,
		LowerBooked: b.LowerBooked,
		UpperBooked: b.UpperBooked,
		VIPBooked:   b.VIPBooked,
		Name:        b.Name,
		Phone:       b.Phone,
		Email:       b.Email,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToPricedBookingResponse(b *domain.PricedBooking) PricedBookingResponse {
	return PricedBookingResponse{
		BookingResponse: ToBookingResponse(&b.Booking),
		Price:           b.Price,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
