package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func scheduleInput(hour, minute int) domain.ScheduleShowingInput {
	return domain.ScheduleShowingInput{
		FilmID:   "f1",
		CinemaID: "c1",
		ScreenID: "s1",
		Date:     time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
		Hour:     hour,
		Minute:   minute,
	}
}

func TestScheduleService_CreateShowing(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	film := &domain.Film{ID: "f1", Title: "Alien", Duration: 2 * time.Hour}
	screen := &domain.Screen{ID: "s1", CinemaID: "c1", Name: "Screen 1"}

	filmRepo.EXPECT().GetByID(mock.Anything, "f1").Return(film, nil)
	screenRepo.EXPECT().GetByID(mock.Anything, "s1").Return(screen, nil)
	showingRepo.EXPECT().ListByScreenAndDay(mock.Anything, "s1", mock.Anything, mock.Anything).
		Return(nil, nil)
	showingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	showing, err := svc.CreateShowing(context.Background(), scheduleInput(14, 30))

	require.NoError(t, err)
	assert.NotEmpty(t, showing.ID)
	assert.Equal(t, "s1", showing.ScreenID)
	assert.Equal(t, "f1", showing.FilmID)
	assert.Equal(t, time.Date(2024, time.June, 14, 14, 30, 0, 0, time.UTC), showing.ShowTime)
}

func TestScheduleService_CreateShowing_Validation(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	t.Run("missing film", func(t *testing.T) {
		input := scheduleInput(14, 0)
		input.FilmID = ""
		_, err := svc.CreateShowing(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing date", func(t *testing.T) {
		input := scheduleInput(14, 0)
		input.Date = time.Time{}
		_, err := svc.CreateShowing(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := svc.CreateShowing(context.Background(), scheduleInput(24, 0))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("minute out of range", func(t *testing.T) {
		_, err := svc.CreateShowing(context.Background(), scheduleInput(14, 60))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestScheduleService_CreateShowing_ScreenInWrongCinema(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	film := &domain.Film{ID: "f1", Title: "Alien", Duration: 2 * time.Hour}
	screen := &domain.Screen{ID: "s1", CinemaID: "other-cinema"}

	filmRepo.EXPECT().GetByID(mock.Anything, "f1").Return(film, nil)
	screenRepo.EXPECT().GetByID(mock.Anything, "s1").Return(screen, nil)

	_, err := svc.CreateShowing(context.Background(), scheduleInput(14, 0))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_CreateShowing_OutOfHours(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	film := &domain.Film{ID: "f1", Title: "Alien", Duration: 2 * time.Hour}
	screen := &domain.Screen{ID: "s1", CinemaID: "c1"}

	filmRepo.EXPECT().GetByID(mock.Anything, "f1").Return(film, nil).Times(2)
	screenRepo.EXPECT().GetByID(mock.Anything, "s1").Return(screen, nil).Times(2)

	t.Run("starts before opening", func(t *testing.T) {
		_, err := svc.CreateShowing(context.Background(), scheduleInput(6, 0))
		assert.ErrorIs(t, err, domain.ErrOutOfHours)
	})

	t.Run("runs past midnight", func(t *testing.T) {
		_, err := svc.CreateShowing(context.Background(), scheduleInput(23, 0))
		assert.ErrorIs(t, err, domain.ErrOutOfHours)
	})
}

func TestScheduleService_CreateShowing_Conflict(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	film := &domain.Film{ID: "f1", Title: "Alien", Duration: 2 * time.Hour}
	screen := &domain.Screen{ID: "s1", CinemaID: "c1"}
	existing := &domain.ScreenShowing{
		ID:        "sh-existing",
		FilmID:    "f2",
		FilmTitle: "Jaws",
		ShowTime:  time.Date(2024, time.June, 14, 13, 0, 0, 0, time.UTC),
		Duration:  2 * time.Hour,
	}

	filmRepo.EXPECT().GetByID(mock.Anything, "f1").Return(film, nil)
	screenRepo.EXPECT().GetByID(mock.Anything, "s1").Return(screen, nil)
	showingRepo.EXPECT().ListByScreenAndDay(mock.Anything, "s1", mock.Anything, mock.Anything).
		Return([]*domain.ScreenShowing{existing}, nil)

	_, err := svc.CreateShowing(context.Background(), scheduleInput(14, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrShowingConflict)

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "sh-existing", conflict.ShowingID)
	assert.Equal(t, "Jaws", conflict.FilmTitle)
	assert.Equal(t, existing.ShowTime, conflict.Start)
	assert.Equal(t, existing.ShowTime.Add(2*time.Hour), conflict.End)
}

func TestScheduleService_CreateShowing_TouchingEndpointsConflict(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	film := &domain.Film{ID: "f1", Title: "Alien", Duration: 2 * time.Hour}
	screen := &domain.Screen{ID: "s1", CinemaID: "c1"}
	// Ends at exactly 14:00, the candidate's start. Endpoints are
	// inclusive, so back-to-back showings collide.
	existing := &domain.ScreenShowing{
		ID:        "sh-existing",
		FilmTitle: "Jaws",
		ShowTime:  time.Date(2024, time.June, 14, 12, 0, 0, 0, time.UTC),
		Duration:  2 * time.Hour,
	}

	filmRepo.EXPECT().GetByID(mock.Anything, "f1").Return(film, nil)
	screenRepo.EXPECT().GetByID(mock.Anything, "s1").Return(screen, nil)
	showingRepo.EXPECT().ListByScreenAndDay(mock.Anything, "s1", mock.Anything, mock.Anything).
		Return([]*domain.ScreenShowing{existing}, nil)

	_, err := svc.CreateShowing(context.Background(), scheduleInput(14, 0))
	assert.ErrorIs(t, err, domain.ErrShowingConflict)
}

func TestScheduleService_UpdateShowing_ExcludesItself(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	film := &domain.Film{ID: "f1", Title: "Alien", Duration: 2 * time.Hour}
	screen := &domain.Screen{ID: "s1", CinemaID: "c1"}
	current := &domain.Showing{
		ID:       "sh1",
		ScreenID: "s1",
		FilmID:   "f1",
		ShowTime: time.Date(2024, time.June, 14, 14, 0, 0, 0, time.UTC),
	}
	// The only showing on the day is the one being moved. It must not
	// block its own reschedule.
	onScreen := &domain.ScreenShowing{
		ID:        "sh1",
		FilmTitle: "Alien",
		ShowTime:  current.ShowTime,
		Duration:  2 * time.Hour,
	}

	showingRepo.EXPECT().GetByID(mock.Anything, "sh1").Return(current, nil)
	filmRepo.EXPECT().GetByID(mock.Anything, "f1").Return(film, nil)
	screenRepo.EXPECT().GetByID(mock.Anything, "s1").Return(screen, nil)
	showingRepo.EXPECT().ListByScreenAndDay(mock.Anything, "s1", mock.Anything, mock.Anything).
		Return([]*domain.ScreenShowing{onScreen}, nil)
	showingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	showing, err := svc.UpdateShowing(context.Background(), "sh1", scheduleInput(15, 0))

	require.NoError(t, err)
	assert.Equal(t, "sh1", showing.ID)
	assert.Equal(t, time.Date(2024, time.June, 14, 15, 0, 0, 0, time.UTC), showing.ShowTime)
}

func TestScheduleService_UpdateShowing_NotFound(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	showingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrShowingNotFound)

	_, err := svc.UpdateShowing(context.Background(), "missing", scheduleInput(14, 0))
	assert.ErrorIs(t, err, domain.ErrShowingNotFound)
}

func TestScheduleService_DeleteShowing(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	showingRepo.EXPECT().Delete(mock.Anything, "sh1").Return(nil)

	require.NoError(t, svc.DeleteShowing(context.Background(), "sh1"))
}

func TestScheduleService_HasConflict(t *testing.T) {
	showingRepo := mocks.NewMockShowingRepo(t)
	filmRepo := mocks.NewMockFilmRepo(t)
	screenRepo := mocks.NewMockScreenRepo(t)
	log := newTestLogger(t)

	svc := NewScheduleService(showingRepo, filmRepo, screenRepo, log)

	existing := &domain.ScreenShowing{
		ID:        "sh1",
		FilmTitle: "Jaws",
		ShowTime:  time.Date(2024, time.June, 14, 13, 0, 0, 0, time.UTC),
		Duration:  2 * time.Hour,
	}
	showingRepo.EXPECT().ListByScreenAndDay(mock.Anything, "s1", mock.Anything, mock.Anything).
		Return([]*domain.ScreenShowing{existing}, nil).Times(2)

	got, err := svc.HasConflict(context.Background(),
		"s1",
		time.Date(2024, time.June, 14, 14, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 14, 16, 0, 0, 0, time.UTC),
		"")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = svc.HasConflict(context.Background(),
		"s1",
		time.Date(2024, time.June, 14, 16, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC),
		"")
	require.NoError(t, err)
	assert.False(t, got)
}
