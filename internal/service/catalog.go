package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/service/ports"
)

// The first films were published around 1890, and nothing runs longer
// than 100 hours.
const (
	oldestFilmYear      = 1890
	longestFilmDuration = 100 * time.Hour
)

// CatalogService manages the reference data showings hang off: cities and
// their tier prices, cinemas, screens and films.
type CatalogService struct {
	cityRepo   ports.CityRepo
	cinemaRepo ports.CinemaRepo
	screenRepo ports.ScreenRepo
	filmRepo   ports.FilmRepo
}

func NewCatalogService(
	cityRepo ports.CityRepo,
	cinemaRepo ports.CinemaRepo,
	screenRepo ports.ScreenRepo,
	filmRepo ports.FilmRepo,
) *CatalogService {
	return &CatalogService{
		cityRepo:   cityRepo,
		cinemaRepo: cinemaRepo,
		screenRepo: screenRepo,
		filmRepo:   filmRepo,
	}
}

func (s *CatalogService) CreateCity(ctx context.Context, input domain.CreateCityInput) (*domain.City, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: city name is required", domain.ErrValidation)
	}
	if input.MorningPrice < 0 || input.AfternoonPrice < 0 || input.EveningPrice < 0 {
		return nil, fmt.Errorf("%w: tier prices cannot be negative", domain.ErrValidation)
	}

	city := &domain.City{
		ID:             uuid.New().String(),
		Name:           input.Name,
		MorningPrice:   input.MorningPrice,
		AfternoonPrice: input.AfternoonPrice,
		EveningPrice:   input.EveningPrice,
	}
	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}

	return city, nil
}

func (s *CatalogService) ListCities(ctx context.Context) ([]*domain.City, error) {
	return s.cityRepo.List(ctx)
}

// UpdateCityPrices changes a city's tier prices. Prices are live: bookings
// read back after a change are priced at the new rates.
func (s *CatalogService) UpdateCityPrices(ctx context.Context, id string, prices domain.CityPrices) error {
	if prices.Morning < 0 || prices.Afternoon < 0 || prices.Evening < 0 {
		return fmt.Errorf("%w: tier prices cannot be negative", domain.ErrValidation)
	}
	if err := s.cityRepo.UpdatePrices(ctx, id, prices); err != nil {
		return fmt.Errorf("update city prices: %w", err)
	}
	return nil
}

func (s *CatalogService) CreateCinema(ctx context.Context, input domain.CreateCinemaInput) (*domain.Cinema, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: cinema name is required", domain.ErrValidation)
	}
	if _, err := s.cityRepo.GetByID(ctx, input.CityID); err != nil {
		return nil, fmt.Errorf("get city: %w", err)
	}

	cinema := &domain.Cinema{
		ID:     uuid.New().String(),
		CityID: input.CityID,
		Name:   input.Name,
	}
	if err := s.cinemaRepo.Create(ctx, cinema); err != nil {
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	return cinema, nil
}

func (s *CatalogService) ListCinemas(ctx context.Context) ([]*domain.Cinema, error) {
	return s.cinemaRepo.List(ctx)
}

func (s *CatalogService) CreateScreen(ctx context.Context, input domain.CreateScreenInput) (*domain.Screen, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: screen name is required", domain.ErrValidation)
	}
	if input.LowerCapacity < 0 || input.UpperCapacity < 0 || input.VIPCapacity < 0 {
		return nil, fmt.Errorf("%w: capacities cannot be negative", domain.ErrValidation)
	}
	if _, err := s.cinemaRepo.GetByID(ctx, input.CinemaID); err != nil {
		return nil, fmt.Errorf("get cinema: %w", err)
	}

	screen := &domain.Screen{
		ID:            uuid.New().String(),
		CinemaID:      input.CinemaID,
		Name:          input.Name,
		LowerCapacity: input.LowerCapacity,
		UpperCapacity: input.UpperCapacity,
		VIPCapacity:   input.VIPCapacity,
	}
	if err := s.screenRepo.Create(ctx, screen); err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}

	return screen, nil
}

func (s *CatalogService) ListScreens(ctx context.Context, cinemaID string) ([]*domain.Screen, error) {
	if _, err := s.cinemaRepo.GetByID(ctx, cinemaID); err != nil {
		return nil, fmt.Errorf("get cinema: %w", err)
	}
	return s.screenRepo.ListByCinema(ctx, cinemaID)
}

func (s *CatalogService) CreateFilm(ctx context.Context, input domain.CreateFilmInput) (*domain.Film, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.YearPublished < oldestFilmYear {
		return nil, fmt.Errorf("%w: year published cannot be before %d", domain.ErrValidation, oldestFilmYear)
	}
	if input.Duration <= 0 || input.Duration > longestFilmDuration {
		return nil, fmt.Errorf("%w: duration must be positive and at most %s", domain.ErrValidation, longestFilmDuration)
	}
	if input.Rating < 0 || input.Rating > 1 {
		return nil, fmt.Errorf("%w: rating must be between 0.0 and 1.0", domain.ErrValidation)
	}
	if !input.AgeRating.Valid() {
		return nil, fmt.Errorf("%w: unknown age rating %q", domain.ErrValidation, input.AgeRating)
	}

	film := &domain.Film{
		ID:            uuid.New().String(),
		Title:         input.Title,
		YearPublished: input.YearPublished,
		Rating:        input.Rating,
		AgeRating:     input.AgeRating,
		Duration:      input.Duration,
		Synopsis:      input.Synopsis,
		Cast:          input.Cast,
	}
	if err := s.filmRepo.Create(ctx, film); err != nil {
		return nil, fmt.Errorf("create film: %w", err)
	}

	return film, nil
}

func (s *CatalogService) ListFilms(ctx context.Context) ([]*domain.Film, error) {
	return s.filmRepo.List(ctx)
}

func (s *CatalogService) DeleteFilm(ctx context.Context, id string) error {
	if err := s.filmRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete film: %w", err)
	}
	return nil
}
