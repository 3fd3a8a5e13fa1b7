package domain

import "time"

// Showing records only the start time; the end is always derived from the
// film's duration. Pricing is keyed off the start even when a showing
// straddles two price tiers.
type Showing struct {
	ID       string    `json:"id"`
	ScreenID string    `json:"screen_id"`
	FilmID   string    `json:"film_id"`
	ShowTime time.Time `json:"show_time"`
}

// ScreenShowing is a showing joined with its film, as the conflict scan
// needs the film duration to derive each showing's end time.
type ScreenShowing struct {
	ID        string
	FilmID    string
	FilmTitle string
	ShowTime  time.Time
	Duration  time.Duration
}

func (s *ScreenShowing) End() time.Time {
	return s.ShowTime.Add(s.Duration)
}

// ShowingDetails is the listing row shown to staff: film, venue and the
// derived start/end pair.
type ShowingDetails struct {
	ID            string    `json:"id"`
	FilmID        string    `json:"film_id"`
	FilmTitle     string    `json:"film_title"`
	YearPublished int       `json:"year_published"`
	CinemaName    string    `json:"cinema_name"`
	ScreenName    string    `json:"screen_name"`
	ShowTime      time.Time `json:"show_time"`
	ShowEnd       time.Time `json:"show_end"`
}

type ShowingFilter struct {
	FilmID   string
	CinemaID string
	Date     *time.Time
}

// ScheduleShowingInput carries a proposed showing: where, what, and the
// date/hour/minute the staff member picked.
type ScheduleShowingInput struct {
	FilmID   string
	CinemaID string
	ScreenID string
	Date     time.Time
	Hour     int
	Minute   int
}
