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

func newCatalogService(t *testing.T) (*CatalogService, *mocks.MockCityRepo, *mocks.MockCinemaRepo, *mocks.MockScreenRepo, *mocks.MockFilmRepo) {
	t.Helper()
	cityRepo := mocks.NewMockCityRepo(t)
	cinemaRepo := mocks.NewMockCinemaRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	svc := NewCatalogService(cityRepo, cinemaRepo, screenRepo, filmRepo)
	return svc, cityRepo, cinemaRepo, screenRepo, filmRepo
}

func TestCatalogService_CreateCity(t *testing.T) {
	svc, cityRepo, _, _, _ := newCatalogService(t)

	cityRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	city, err := svc.CreateCity(context.Background(), domain.CreateCityInput{
		Name:           "Bristol",
		MorningPrice:   6,
		AfternoonPrice: 7,
		EveningPrice:   8,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, city.ID)
	assert.Equal(t, "Bristol", city.Name)
}

func TestCatalogService_CreateCity_Validation(t *testing.T) {
	svc, _, _, _, _ := newCatalogService(t)

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.CreateCity(context.Background(), domain.CreateCityInput{MorningPrice: 6})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := svc.CreateCity(context.Background(), domain.CreateCityInput{Name: "Bristol", EveningPrice: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCatalogService_UpdateCityPrices(t *testing.T) {
	svc, cityRepo, _, _, _ := newCatalogService(t)

	prices := domain.CityPrices{Morning: 7, Afternoon: 8, Evening: 9}
	cityRepo.EXPECT().UpdatePrices(mock.Anything, "city1", prices).Return(nil)

	require.NoError(t, svc.UpdateCityPrices(context.Background(), "city1", prices))
}

func TestCatalogService_UpdateCityPrices_Negative(t *testing.T) {
	svc, _, _, _, _ := newCatalogService(t)

	err := svc.UpdateCityPrices(context.Background(), "city1", domain.CityPrices{Morning: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_CreateCinema_CityNotFound(t *testing.T) {
	svc, cityRepo, _, _, _ := newCatalogService(t)

	cityRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCityNotFound)

	_, err := svc.CreateCinema(context.Background(), domain.CreateCinemaInput{
		CityID: "missing",
		Name:   "Odeon",
	})
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
}

func TestCatalogService_CreateScreen(t *testing.T) {
	svc, _, cinemaRepo, screenRepo, _ := newCatalogService(t)

	cinemaRepo.EXPECT().GetByID(mock.Anything, "cin1").Return(&domain.Cinema{ID: "cin1"}, nil)
	screenRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	screen, err := svc.CreateScreen(context.Background(), domain.CreateScreenInput{
		CinemaID:      "cin1",
		Name:          "Screen 1",
		LowerCapacity: 60,
		UpperCapacity: 30,
		VIPCapacity:   10,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, screen.ID)
	assert.Equal(t, 60, screen.LowerCapacity)
}

func TestCatalogService_CreateScreen_NegativeCapacity(t *testing.T) {
	svc, _, _, _, _ := newCatalogService(t)

	_, err := svc.CreateScreen(context.Background(), domain.CreateScreenInput{
		CinemaID:      "cin1",
		Name:          "Screen 1",
		LowerCapacity: -1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_CreateFilm(t *testing.T) {
	svc, _, _, _, filmRepo := newCatalogService(t)

	filmRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	film, err := svc.CreateFilm(context.Background(), domain.CreateFilmInput{
		Title:         "Alien",
		YearPublished: 1979,
		Rating:        0.93,
		AgeRating:     domain.AgeRatingEighteen,
		Duration:      117 * time.Minute,
		Synopsis:      "In space no one can hear you scream.",
		Cast:          "Sigourney Weaver",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, film.ID)
	assert.Equal(t, "Alien", film.Title)
}

func TestCatalogService_CreateFilm_Validation(t *testing.T) {
	svc, _, _, _, _ := newCatalogService(t)

	valid := domain.CreateFilmInput{
		Title:         "Alien",
		YearPublished: 1979,
		Rating:        0.93,
		AgeRating:     domain.AgeRatingEighteen,
		Duration:      117 * time.Minute,
	}

	t.Run("missing title", func(t *testing.T) {
		input := valid
		input.Title = ""
		_, err := svc.CreateFilm(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("year before first films", func(t *testing.T) {
		input := valid
		input.YearPublished = 1850
		_, err := svc.CreateFilm(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("zero duration", func(t *testing.T) {
		input := valid
		input.Duration = 0
		_, err := svc.CreateFilm(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("duration too long", func(t *testing.T) {
		input := valid
		input.Duration = 101 * time.Hour
		_, err := svc.CreateFilm(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rating above one", func(t *testing.T) {
		input := valid
		input.Rating = 1.5
		_, err := svc.CreateFilm(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown age rating", func(t *testing.T) {
		input := valid
		input.AgeRating = "NC-17"
		_, err := svc.CreateFilm(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCatalogService_DeleteFilm(t *testing.T) {
	svc, _, _, _, filmRepo := newCatalogService(t)

	filmRepo.EXPECT().Delete(mock.Anything, "f1").Return(nil)

	require.NoError(t, svc.DeleteFilm(context.Background(), "f1"))
}
