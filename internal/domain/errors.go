package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrCityNotFound    = errors.New("city not found")
	ErrCinemaNotFound  = errors.New("cinema not found")
	ErrScreenNotFound  = errors.New("screen not found")
	ErrFilmNotFound    = errors.New("film not found")
	ErrShowingNotFound = errors.New("showing not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrShowingConflict = errors.New("showing conflicts with an existing showing")
	ErrOutOfHours      = errors.New("showing starts or ends outside venue operating hours")
	ErrNoPriceTier     = errors.New("show time is before opening and has no price tier")
)

var (
	ErrCityExists    = errors.New("a city with that name already exists")
	ErrCinemaExists  = errors.New("a cinema with that name already exists")
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

// ConflictError reports the existing showing a candidate window collided
// with, so callers can show the user what is in the way.
type ConflictError struct {
	ShowingID string
	FilmTitle string
	Start     time.Time
	End       time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"conflicts with a showing of %s running from %s to %s on the same screen",
		e.FilmTitle, e.Start.Format("15:04"), e.End.Format("15:04"),
	)
}

func (e *ConflictError) Unwrap() error { return ErrShowingConflict }
