package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/handler/dto"
	hmocks "github.com/GeorgeWhittington/cinema-booking-app/internal/handler/mocks"
)

type testMocks struct {
	catalog  *hmocks.MockCatalogSvc
	schedule *hmocks.MockScheduleSvc
	booking  *hmocks.MockBookingSvc
	report   *hmocks.MockReportSvc
	user     *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		catalog:  hmocks.NewMockCatalogSvc(t),
		schedule: hmocks.NewMockScheduleSvc(t),
		booking:  hmocks.NewMockBookingSvc(t),
		report:   hmocks.NewMockReportSvc(t),
		user:     hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.catalog, m.schedule, m.booking, m.report, m.user)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/cities", h.CreateCity)
		api.GET("/cities", h.ListCities)
		api.PUT("/cities/:id/prices", h.UpdateCityPrices)
		api.POST("/cinemas", h.CreateCinema)
		api.POST("/cinemas/:id/screens", h.CreateScreen)
		api.POST("/films", h.CreateFilm)
		api.DELETE("/films/:id", h.DeleteFilm)
		api.POST("/showings", h.CreateShowing)
		api.PUT("/showings/:id", h.UpdateShowing)
		api.DELETE("/showings/:id", h.DeleteShowing)
		api.GET("/showings", h.ListShowings)
		api.POST("/showings/:id/bookings", h.CreateBooking)
		api.GET("/showings/:id/bookings", h.ListShowingBookings)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id", h.GetUser)
		api.GET("/reports/monthly-revenue", h.ReportMonthlyRevenue)
		api.GET("/reports/top-film", h.ReportTopRevenueFilm)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Cities ---

func TestHandler_CreateCity_Success(t *testing.T) {
	m, r := setupRouter(t)

	city := &domain.City{
		ID:             uuid.New().String(),
		Name:           "Bristol",
		MorningPrice:   6,
		AfternoonPrice: 7,
		EveningPrice:   8,
	}
	m.catalog.EXPECT().CreateCity(mock.Anything, mock.Anything).Return(city, nil)

	w := doJSON(t, r, http.MethodPost, "/api/cities", dto.CreateCityRequest{
		Name:           "Bristol",
		MorningPrice:   6,
		AfternoonPrice: 7,
		EveningPrice:   8,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bristol", resp.Name)
	assert.Equal(t, 8.0, resp.EveningPrice)
}

func TestHandler_CreateCity_MissingName(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cities", ginext.H{"morning_price": 6})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateCity_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	m.catalog.EXPECT().CreateCity(mock.Anything, mock.Anything).Return(nil, domain.ErrCityExists)

	w := doJSON(t, r, http.MethodPost, "/api/cities", dto.CreateCityRequest{Name: "Bristol"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateCityPrices_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/cities/not-a-uuid/prices", dto.UpdateCityPricesRequest{
		MorningPrice: 5, AfternoonPrice: 6, EveningPrice: 7,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateCityPrices_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.catalog.EXPECT().
		UpdateCityPrices(mock.Anything, id, domain.CityPrices{Morning: 5, Afternoon: 6, Evening: 7}).
		Return(domain.ErrCityNotFound)

	w := doJSON(t, r, http.MethodPut, "/api/cities/"+id+"/prices", dto.UpdateCityPricesRequest{
		MorningPrice: 5, AfternoonPrice: 6, EveningPrice: 7,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Screens and films ---

func TestHandler_CreateScreen_Success(t *testing.T) {
	m, r := setupRouter(t)

	cinemaID := uuid.New().String()
	screen := &domain.Screen{
		ID:            uuid.New().String(),
		CinemaID:      cinemaID,
		Name:          "Screen 1",
		LowerCapacity: 60,
		UpperCapacity: 30,
		VIPCapacity:   10,
	}
	m.catalog.EXPECT().CreateScreen(mock.Anything, mock.Anything).Return(screen, nil)

	w := doJSON(t, r, http.MethodPost, "/api/cinemas/"+cinemaID+"/screens", dto.CreateScreenRequest{
		Name: "Screen 1", LowerCapacity: 60, UpperCapacity: 30, VIPCapacity: 10,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ScreenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 60, resp.LowerCapacity)
}

func TestHandler_CreateFilm_Success(t *testing.T) {
	m, r := setupRouter(t)

	film := &domain.Film{
		ID:            uuid.New().String(),
		Title:         "Alien",
		YearPublished: 1979,
		Rating:        0.93,
		AgeRating:     domain.AgeRatingEighteen,
		Duration:      117 * time.Minute,
	}
	m.catalog.EXPECT().CreateFilm(mock.Anything, mock.MatchedBy(func(in domain.CreateFilmInput) bool {
		return in.Duration == 117*time.Minute
	})).Return(film, nil)

	w := doJSON(t, r, http.MethodPost, "/api/films", dto.CreateFilmRequest{
		Title:           "Alien",
		YearPublished:   1979,
		Rating:          0.93,
		AgeRating:       "18",
		DurationMinutes: 117,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.FilmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 117, resp.DurationMinutes)
}

func TestHandler_DeleteFilm_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.catalog.EXPECT().DeleteFilm(mock.Anything, id).Return(domain.ErrFilmNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/films/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Showings ---

func scheduleBody() dto.ScheduleShowingRequest {
	return dto.ScheduleShowingRequest{
		FilmID:   uuid.New().String(),
		CinemaID: uuid.New().String(),
		ScreenID: uuid.New().String(),
		Date:     "2024-06-14",
		Hour:     14,
		Minute:   30,
	}
}

func TestHandler_CreateShowing_Success(t *testing.T) {
	m, r := setupRouter(t)

	body := scheduleBody()
	showing := &domain.Showing{
		ID:       uuid.New().String(),
		ScreenID: body.ScreenID,
		FilmID:   body.FilmID,
		ShowTime: time.Date(2024, 6, 14, 14, 30, 0, 0, time.UTC),
	}
	m.schedule.EXPECT().CreateShowing(mock.Anything, mock.MatchedBy(func(in domain.ScheduleShowingInput) bool {
		return in.Hour == 14 && in.Minute == 30 && in.Date.Equal(time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC))
	})).Return(showing, nil)

	w := doJSON(t, r, http.MethodPost, "/api/showings", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ShowingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, showing.ID, resp.ID)
}

func TestHandler_CreateShowing_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := scheduleBody()
	body.Date = "14/06/2024"

	w := doJSON(t, r, http.MethodPost, "/api/showings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "YYYY-MM-DD")
}

func TestHandler_CreateShowing_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	m.schedule.EXPECT().CreateShowing(mock.Anything, mock.Anything).Return(nil, &domain.ConflictError{
		ShowingID: uuid.New().String(),
		FilmTitle: "Jaws",
	})

	w := doJSON(t, r, http.MethodPost, "/api/showings", scheduleBody())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateShowing_OutOfHours(t *testing.T) {
	m, r := setupRouter(t)

	m.schedule.EXPECT().CreateShowing(mock.Anything, mock.Anything).Return(nil, domain.ErrOutOfHours)

	w := doJSON(t, r, http.MethodPost, "/api/showings", scheduleBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateShowing_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/showings/42", scheduleBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListShowings_WithFilter(t *testing.T) {
	m, r := setupRouter(t)

	filmID := uuid.New().String()
	details := []*domain.ShowingDetails{{
		ID:         uuid.New().String(),
		FilmID:     filmID,
		FilmTitle:  "Jaws",
		CinemaName: "Bristol Odeon",
		ScreenName: "Screen 1",
		ShowTime:   time.Date(2024, 6, 14, 14, 30, 0, 0, time.UTC),
		ShowEnd:    time.Date(2024, 6, 14, 16, 30, 0, 0, time.UTC),
	}}
	m.schedule.EXPECT().
		ListShowings(mock.Anything, mock.MatchedBy(func(f domain.ShowingFilter) bool {
			return f.FilmID == filmID && f.Date != nil && f.Date.Day() == 14
		})).
		Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/showings?film_id="+filmID+"&date=2024-06-14", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ShowingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Jaws", resp[0].FilmTitle)
}

func TestHandler_ListShowings_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/showings?date=june", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	showingID := uuid.New().String()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		ShowingID:   showingID,
		LowerBooked: 2,
		UpperBooked: 1,
		Name:        "Ada Lovelace",
		Phone:       "0117 555 0101",
		Email:       "ada@example.com",
		CreatedAt:   time.Now(),
	}
	m.booking.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.ShowingID == showingID && in.LowerBooked == 2
	})).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/showings/"+showingID+"/bookings", dto.CreateBookingRequest{
		LowerBooked: 2,
		UpperBooked: 1,
		Name:        "Ada Lovelace",
		Phone:       "0117 555 0101",
		Email:       "ada@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Nil(t, resp.EmployeeID)
}

func TestHandler_CreateBooking_ShowingNotFound(t *testing.T) {
	m, r := setupRouter(t)

	showingID := uuid.New().String()
	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrShowingNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/showings/"+showingID+"/bookings", dto.CreateBookingRequest{
		LowerBooked: 1,
		Name:        "Ada Lovelace",
		Phone:       "0117 555 0101",
		Email:       "ada@example.com",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListShowingBookings_Priced(t *testing.T) {
	m, r := setupRouter(t)

	showingID := uuid.New().String()
	priced := []*domain.PricedBooking{{
		Booking: domain.Booking{
			ID:          uuid.New().String(),
			ShowingID:   showingID,
			LowerBooked: 2,
			Name:        "Ada Lovelace",
			Email:       "ada@example.com",
		},
		Price: 16,
	}}
	m.booking.EXPECT().ListByShowing(mock.Anything, showingID).Return(priced, nil)

	w := doJSON(t, r, http.MethodGet, "/api/showings/"+showingID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PricedBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 16.0, resp[0].Price)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.booking.EXPECT().Cancel(mock.Anything, id).Return(domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     "alice",
		PasswordHash: []byte("hashed"),
		CreatedAt:    time.Now(),
	}
	m.user.EXPECT().Create(mock.Anything, domain.CreateUserInput{
		Username: "alice",
		Password: "s3cret",
	}).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "alice",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hashed")

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_Taken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "alice",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.user.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrUserNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Reports ---

func TestHandler_ReportMonthlyRevenue_Success(t *testing.T) {
	m, r := setupRouter(t)

	report := []*domain.CinemaRevenue{
		{CinemaID: uuid.New().String(), CinemaName: "Bristol Odeon", Revenue: 120.5},
	}
	m.report.EXPECT().MonthlyRevenueByCinema(mock.Anything, 2024, time.June).Return(report, nil)

	w := doJSON(t, r, http.MethodGet, "/api/reports/monthly-revenue?year=2024&month=6", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []domain.CinemaRevenue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Bristol Odeon", resp[0].CinemaName)
}

func TestHandler_ReportMonthlyRevenue_BadMonth(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/reports/monthly-revenue?year=2024&month=13", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReportTopRevenueFilm_NoBookings(t *testing.T) {
	m, r := setupRouter(t)

	m.report.EXPECT().TopRevenueFilm(mock.Anything).Return(nil, domain.ErrFilmNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/reports/top-film", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
