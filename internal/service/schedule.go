package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/service/ports"
)

// ScheduleService owns the showing pipeline: validate the proposal, compute
// the window, scan the screen's day for conflicts, then commit. Create and
// edit share the pipeline; edits just exclude themselves from the scan.
//
// The conflict check and the commit are check-then-act, so all scheduling
// writes are serialized through the service's mutex. One instance must be
// the single writer for the deployment; running several instances against
// one database needs a storage-level exclusion constraint instead.
type ScheduleService struct {
	showingRepo ports.ShowingRepo
	filmRepo    ports.FilmRepo
	screenRepo  ports.ScreenRepo
	logger      logger.Logger

	mu sync.Mutex
}

func NewScheduleService(
	showingRepo ports.ShowingRepo,
	filmRepo ports.FilmRepo,
	screenRepo ports.ScreenRepo,
	logger logger.Logger,
) *ScheduleService {
	return &ScheduleService{
		showingRepo: showingRepo,
		filmRepo:    filmRepo,
		screenRepo:  screenRepo,
		logger:      logger,
	}
}

func (s *ScheduleService) CreateShowing(ctx context.Context, input domain.ScheduleShowingInput) (*domain.Showing, error) {
	return s.schedule(ctx, "", input)
}

func (s *ScheduleService) UpdateShowing(ctx context.Context, id string, input domain.ScheduleShowingInput) (*domain.Showing, error) {
	if _, err := s.showingRepo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get showing: %w", err)
	}
	return s.schedule(ctx, id, input)
}

// schedule runs the shared create/edit pipeline. excludeID is empty for
// creates; for edits it keeps the showing being moved out of its own
// conflict scan.
func (s *ScheduleService) schedule(ctx context.Context, excludeID string, input domain.ScheduleShowingInput) (*domain.Showing, error) {
	if input.FilmID == "" || input.CinemaID == "" || input.ScreenID == "" {
		return nil, fmt.Errorf("%w: film, cinema and screen are required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: show date is required", domain.ErrValidation)
	}
	if input.Hour < 0 || input.Hour > 23 || input.Minute < 0 || input.Minute > 59 {
		return nil, fmt.Errorf("%w: start time must be a valid time of day", domain.ErrValidation)
	}

	film, err := s.filmRepo.GetByID(ctx, input.FilmID)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}

	screen, err := s.screenRepo.GetByID(ctx, input.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("get screen: %w", err)
	}
	if screen.CinemaID != input.CinemaID {
		return nil, fmt.Errorf("%w: screen does not belong to the selected cinema", domain.ErrValidation)
	}

	showTime := domain.ComputeShowTime(input.Date, input.Hour, input.Minute, film.Duration)
	if !showTime.Valid {
		return nil, domain.ErrOutOfHours
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conflict, err := s.findConflict(ctx, screen.ID, showTime, excludeID)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, conflict
	}

	showing := &domain.Showing{
		ID:       excludeID,
		ScreenID: screen.ID,
		FilmID:   film.ID,
		ShowTime: showTime.Start,
	}

	if excludeID == "" {
		showing.ID = uuid.New().String()
		if err = s.showingRepo.Create(ctx, showing); err != nil {
			return nil, fmt.Errorf("create showing: %w", err)
		}
	} else {
		if err = s.showingRepo.Update(ctx, showing); err != nil {
			return nil, fmt.Errorf("update showing: %w", err)
		}
	}

	s.logger.Info("showing scheduled",
		logger.String("showing_id", showing.ID),
		logger.String("screen_id", screen.ID),
		logger.String("film_id", film.ID),
		logger.String("starts", showTime.Start.Format(time.RFC3339)),
		logger.String("ends", showTime.End.Format(time.RFC3339)),
	)

	return showing, nil
}

// findConflict scans the screen's showings on the candidate's calendar day
// and returns the first collision. Each existing showing's end is derived
// from its film duration.
func (s *ScheduleService) findConflict(ctx context.Context, screenID string, showTime domain.ShowTime, excludeID string) (*domain.ConflictError, error) {
	dayStart, dayEnd := domain.DayBounds(showTime.Start)

	existing, err := s.showingRepo.ListByScreenAndDay(ctx, screenID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list showings for screen: %w", err)
	}

	for _, sh := range existing {
		if sh.ID == excludeID {
			continue
		}
		if end := sh.End(); showTime.Conflicts(sh.ShowTime, end) {
			return &domain.ConflictError{
				ShowingID: sh.ID,
				FilmTitle: sh.FilmTitle,
				Start:     sh.ShowTime,
				End:       end,
			}, nil
		}
	}

	return nil, nil
}

// HasConflict answers whether a candidate window collides with existing
// showings on a screen, without committing anything. excludeID may be
// empty.
func (s *ScheduleService) HasConflict(ctx context.Context, screenID string, start, end time.Time, excludeID string) (bool, error) {
	conflict, err := s.findConflict(ctx, screenID, domain.ShowTime{Start: start, End: end, Valid: true}, excludeID)
	if err != nil {
		return false, err
	}
	return conflict != nil, nil
}

// DeleteShowing removes a showing outright; there is no downstream
// invariant to protect on delete.
func (s *ScheduleService) DeleteShowing(ctx context.Context, id string) error {
	if err := s.showingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete showing: %w", err)
	}

	s.logger.Info("showing deleted",
		logger.String("showing_id", id),
	)

	return nil
}

func (s *ScheduleService) ListShowings(ctx context.Context, filter domain.ShowingFilter) ([]*domain.ShowingDetails, error) {
	return s.showingRepo.List(ctx, filter)
}
