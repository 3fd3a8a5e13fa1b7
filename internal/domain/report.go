package domain

import "time"

// BookingRow is one booking joined with everything the report aggregates
// need: the film, the cinema, the employee who took it, the show time and
// the owning city's tier prices. Reports group and sum these in-process so
// the aggregation logic is shared with (and priced by) the pricing engine.
type BookingRow struct {
	BookingID     string
	FilmID        string
	FilmTitle     string
	YearPublished int
	CinemaID      string
	CinemaName    string
	EmployeeID    *string
	Username      string
	ShowTime      time.Time
	City          City
	LowerBooked   int
	UpperBooked   int
	VIPBooked     int
}

type FilmBookings struct {
	FilmID        string `json:"film_id"`
	FilmTitle     string `json:"film_title"`
	YearPublished int    `json:"year_published"`
	LowerBooked   int    `json:"lower_booked"`
	UpperBooked   int    `json:"upper_booked"`
	VIPBooked     int    `json:"vip_booked"`
	Total         int    `json:"total"`
}

type CinemaRevenue struct {
	CinemaID   string  `json:"cinema_id"`
	CinemaName string  `json:"cinema_name"`
	Revenue    float64 `json:"revenue"`
}

type FilmRevenue struct {
	FilmID        string  `json:"film_id"`
	FilmTitle     string  `json:"film_title"`
	YearPublished int     `json:"year_published"`
	Revenue       float64 `json:"revenue"`
}

type EmployeeBookings struct {
	EmployeeID string `json:"employee_id"`
	Username   string `json:"username"`
	Bookings   int    `json:"bookings"`
}
