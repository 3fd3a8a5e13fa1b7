package domain

import "time"

// Booking reserves aggregate seat counts per tier against a showing, not
// individual seats. Card details are never stored; they go straight to the
// payment handler. The price is not stored either: it is recomputed from
// current city prices whenever the booking is read.
type Booking struct {
	ID          string    `json:"id"`
	ShowingID   string    `json:"showing_id"`
	EmployeeID  *string   `json:"employee_id,omitempty"`
	LowerBooked int       `json:"lower_booked"`
	UpperBooked int       `json:"upper_booked"`
	VIPBooked   int       `json:"vip_booked"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b *Booking) Seats() int {
	return b.LowerBooked + b.UpperBooked + b.VIPBooked
}

type CreateBookingInput struct {
	ShowingID   string
	EmployeeID  *string
	LowerBooked int
	UpperBooked int
	VIPBooked   int
	Name        string
	Phone       string
	Email       string
}

// PricedBooking is a booking with its live price attached.
type PricedBooking struct {
	Booking
	Price float64 `json:"price"`
}

// BookingNotice is what the notifier needs to describe a booking event.
type BookingNotice struct {
	CustomerName string
	FilmTitle    string
	ShowTime     time.Time
	Seats        int
}
