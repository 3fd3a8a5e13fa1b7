package dto

type CreateCityRequest struct {
	Name           string  `json:"name" binding:"required"`
	MorningPrice   float64 `json:"morning_price" binding:"gte=0"`
	AfternoonPrice float64 `json:"afternoon_price" binding:"gte=0"`
	EveningPrice   float64 `json:"evening_price" binding:"gte=0"`
}

type UpdateCityPricesRequest struct {
	MorningPrice   float64 `json:"morning_price" binding:"gte=0"`
	AfternoonPrice float64 `json:"afternoon_price" binding:"gte=0"`
	EveningPrice   float64 `json:"evening_price" binding:"gte=0"`
}

type CreateCinemaRequest struct {
	CityID string `json:"city_id" binding:"required,uuid"`
	Name   string `json:"name" binding:"required"`
}

type CreateScreenRequest struct {
	Name          string `json:"name" binding:"required"`
	LowerCapacity int    `json:"lower_capacity" binding:"gte=0"`
	UpperCapacity int    `json:"upper_capacity" binding:"gte=0"`
	VIPCapacity   int    `json:"vip_capacity" binding:"gte=0"`
}

type CreateFilmRequest struct {
	Title           string  `json:"title" binding:"required"`
	YearPublished   int     `json:"year_published" binding:"required"`
	Rating          float64 `json:"rating"`
	AgeRating       string  `json:"age_rating" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Synopsis        string  `json:"synopsis"`
	Cast            string  `json:"cast"`
}

type ScheduleShowingRequest struct {
	FilmID   string `json:"film_id" binding:"required,uuid"`
	CinemaID string `json:"cinema_id" binding:"required,uuid"`
	ScreenID string `json:"screen_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"`
	Hour     int    `json:"hour" binding:"gte=0,lte=23"`
	Minute   int    `json:"minute" binding:"gte=0,lte=59"`
}

type CreateBookingRequest struct {
	EmployeeID  *string `json:"employee_id" binding:"omitempty,uuid"`
	LowerBooked int     `json:"lower_booked" binding:"gte=0"`
	UpperBooked int     `json:"upper_booked" binding:"gte=0"`
	VIPBooked   int     `json:"vip_booked" binding:"gte=0"`
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
