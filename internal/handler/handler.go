package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/handler/dto"
)

type CatalogSvc interface {
	CreateCity(ctx context.Context, input domain.CreateCityInput) (*domain.City, error)
	ListCities(ctx context.Context) ([]*domain.City, error)
	UpdateCityPrices(ctx context.Context, id string, prices domain.CityPrices) error
	CreateCinema(ctx context.Context, input domain.CreateCinemaInput) (*domain.Cinema, error)
	ListCinemas(ctx context.Context) ([]*domain.Cinema, error)
	CreateScreen(ctx context.Context, input domain.CreateScreenInput) (*domain.Screen, error)
	ListScreens(ctx context.Context, cinemaID string) ([]*domain.Screen, error)
	CreateFilm(ctx context.Context, input domain.CreateFilmInput) (*domain.Film, error)
	ListFilms(ctx context.Context) ([]*domain.Film, error)
	DeleteFilm(ctx context.Context, id string) error
}

type ScheduleSvc interface {
	CreateShowing(ctx context.Context, input domain.ScheduleShowingInput) (*domain.Showing, error)
	UpdateShowing(ctx context.Context, id string, input domain.ScheduleShowingInput) (*domain.Showing, error)
	DeleteShowing(ctx context.Context, id string) error
	ListShowings(ctx context.Context, filter domain.ShowingFilter) ([]*domain.ShowingDetails, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
	ListByShowing(ctx context.Context, showingID string) ([]*domain.PricedBooking, error)
}

type ReportSvc interface {
	BookingsPerFilm(ctx context.Context) ([]*domain.FilmBookings, error)
	MonthlyRevenueByCinema(ctx context.Context, year int, month time.Month) ([]*domain.CinemaRevenue, error)
	TopRevenueFilm(ctx context.Context) (*domain.FilmRevenue, error)
	EmployeeBookingsPerMonth(ctx context.Context, year int, month time.Month) ([]*domain.EmployeeBookings, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	catalogService  CatalogSvc
	scheduleService ScheduleSvc
	bookingService  BookingSvc
	reportService   ReportSvc
	userService     UserSvc
}

func NewHandler(
	catalogService CatalogSvc,
	scheduleService ScheduleSvc,
	bookingService BookingSvc,
	reportService ReportSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		catalogService:  catalogService,
		scheduleService: scheduleService,
		bookingService:  bookingService,
		reportService:   reportService,
		userService:     userService,
	}
}

// Cities

func (h *Handler) CreateCity(c *ginext.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	city, err := h.catalogService.CreateCity(c.Request.Context(), domain.CreateCityInput{
		Name:           req.Name,
		MorningPrice:   req.MorningPrice,
		AfternoonPrice: req.AfternoonPrice,
		EveningPrice:   req.EveningPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCityResponse(city))
}

func (h *Handler) ListCities(c *ginext.Context) {
	cities, err := h.catalogService.ListCities(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CityResponse, 0, len(cities))
	for _, city := range cities {
		resp = append(resp, dto.ToCityResponse(city))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateCityPrices(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid city id"})
		return
	}

	var req dto.UpdateCityPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.catalogService.UpdateCityPrices(c.Request.Context(), id, domain.CityPrices{
		Morning:   req.MorningPrice,
		Afternoon: req.AfternoonPrice,
		Evening:   req.EveningPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

// Cinemas and screens

func (h *Handler) CreateCinema(c *ginext.Context) {
	var req dto.CreateCinemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cinema, err := h.catalogService.CreateCinema(c.Request.Context(), domain.CreateCinemaInput{
		CityID: req.CityID,
		Name:   req.Name,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCinemaResponse(cinema))
}

func (h *Handler) ListCinemas(c *ginext.Context) {
	cinemas, err := h.catalogService.ListCinemas(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CinemaResponse, 0, len(cinemas))
	for _, cinema := range cinemas {
		resp = append(resp, dto.ToCinemaResponse(cinema))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateScreen(c *ginext.Context) {
	cinemaID := c.Param("id")
	if _, err := uuid.Parse(cinemaID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cinema id"})
		return
	}

	var req dto.CreateScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	screen, err := h.catalogService.CreateScreen(c.Request.Context(), domain.CreateScreenInput{
		CinemaID:      cinemaID,
		Name:          req.Name,
		LowerCapacity: req.LowerCapacity,
		UpperCapacity: req.UpperCapacity,
		VIPCapacity:   req.VIPCapacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScreenResponse(screen))
}

func (h *Handler) ListScreens(c *ginext.Context) {
	cinemaID := c.Param("id")
	if _, err := uuid.Parse(cinemaID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cinema id"})
		return
	}

	screens, err := h.catalogService.ListScreens(c.Request.Context(), cinemaID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ScreenResponse, 0, len(screens))
	for _, s := range screens {
		resp = append(resp, dto.ToScreenResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Films

func (h *Handler) CreateFilm(c *ginext.Context) {
	var req dto.CreateFilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	film, err := h.catalogService.CreateFilm(c.Request.Context(), domain.CreateFilmInput{
		Title:         req.Title,
		YearPublished: req.YearPublished,
		Rating:        req.Rating,
		AgeRating:     domain.AgeRating(req.AgeRating),
		Duration:      time.Duration(req.DurationMinutes) * time.Minute,
		Synopsis:      req.Synopsis,
		Cast:          req.Cast,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFilmResponse(film))
}

func (h *Handler) ListFilms(c *ginext.Context) {
	films, err := h.catalogService.ListFilms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FilmResponse, 0, len(films))
	for _, f := range films {
		resp = append(resp, dto.ToFilmResponse(f))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteFilm(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid film id"})
		return
	}

	if err := h.catalogService.DeleteFilm(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Showings

func (h *Handler) CreateShowing(c *ginext.Context) {
	input, ok := h.bindShowing(c)
	if !ok {
		return
	}

	showing, err := h.scheduleService.CreateShowing(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShowingResponse(showing))
}

func (h *Handler) UpdateShowing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid showing id"})
		return
	}

	input, ok := h.bindShowing(c)
	if !ok {
		return
	}

	showing, err := h.scheduleService.UpdateShowing(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShowingResponse(showing))
}

func (h *Handler) bindShowing(c *ginext.Context) (domain.ScheduleShowingInput, bool) {
	var req dto.ScheduleShowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.ScheduleShowingInput{}, false
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return domain.ScheduleShowingInput{}, false
	}

	return domain.ScheduleShowingInput{
		FilmID:   req.FilmID,
		CinemaID: req.CinemaID,
		ScreenID: req.ScreenID,
		Date:     date,
		Hour:     req.Hour,
		Minute:   req.Minute,
	}, true
}

func (h *Handler) DeleteShowing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid showing id"})
		return
	}

	if err := h.scheduleService.DeleteShowing(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListShowings(c *ginext.Context) {
	filter := domain.ShowingFilter{
		FilmID:   c.Query("film_id"),
		CinemaID: c.Query("cinema_id"),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		filter.Date = &date
	}

	showings, err := h.scheduleService.ListShowings(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ShowingDetailsResponse, 0, len(showings))
	for _, s := range showings {
		resp = append(resp, dto.ToShowingDetailsResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	showingID := c.Param("id")
	if _, err := uuid.Parse(showingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid showing id"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		ShowingID:   showingID,
		EmployeeID:  req.EmployeeID,
		LowerBooked: req.LowerBooked,
		UpperBooked: req.UpperBooked,
		VIPBooked:   req.VIPBooked,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListShowingBookings(c *ginext.Context) {
	showingID := c.Param("id")
	if _, err := uuid.Parse(showingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid showing id"})
		return
	}

	bookings, err := h.bookingService.ListByShowing(c.Request.Context(), showingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PricedBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToPricedBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Reports

func (h *Handler) ReportBookingsPerFilm(c *ginext.Context) {
	report, err := h.reportService.BookingsPerFilm(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) ReportMonthlyRevenue(c *ginext.Context) {
	year, month, ok := h.bindMonth(c)
	if !ok {
		return
	}

	report, err := h.reportService.MonthlyRevenueByCinema(c.Request.Context(), year, month)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) ReportTopRevenueFilm(c *ginext.Context) {
	report, err := h.reportService.TopRevenueFilm(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) ReportEmployeeBookings(c *ginext.Context) {
	year, month, ok := h.bindMonth(c)
	if !ok {
		return
	}

	report, err := h.reportService.EmployeeBookingsPerMonth(c.Request.Context(), year, month)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) bindMonth(c *ginext.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid year"})
		return 0, 0, false
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid month, expected 1-12"})
		return 0, 0, false
	}

	return year, time.Month(month), true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCityNotFound),
		errors.Is(err, domain.ErrCinemaNotFound),
		errors.Is(err, domain.ErrScreenNotFound),
		errors.Is(err, domain.ErrFilmNotFound),
		errors.Is(err, domain.ErrShowingNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrShowingConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrOutOfHours),
		errors.Is(err, domain.ErrNoPriceTier),
		errors.Is(err, domain.ErrCityExists),
		errors.Is(err, domain.ErrCinemaExists),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
