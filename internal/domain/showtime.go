package domain

import "time"

// Venue operating hours: opens at 08:00, closes at midnight. A showing may
// end exactly at 00:00 of the next day; the closed window is the open
// interval (00:00, 08:00) on the time-of-day of either endpoint.
const openingMinute = 8 * 60

// ShowTime is a computed start/end pair for a proposed showing plus
// whether it fits the venue operating hours.
type ShowTime struct {
	Start time.Time
	End   time.Time
	Valid bool
}

// ComputeShowTime combines the chosen date with the hour/minute start and
// derives the end from the film duration. Pure; never fails, it only marks
// the window invalid.
func ComputeShowTime(date time.Time, hour, minute int, duration time.Duration) ShowTime {
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
	end := start.Add(duration)

	valid := !duringClosedHours(start) && !duringClosedHours(end)
	return ShowTime{Start: start, End: end, Valid: valid}
}

// duringClosedHours checks the time-of-day component only, at minute
// resolution. Midnight itself is open: it is a legal end time.
func duringClosedHours(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	return m > 0 && m < openingMinute
}

// Conflicts reports whether this candidate window collides with an
// existing showing running [start, end]. Intervals are closed: touching
// endpoints count as conflicts.
//
// Only the candidate's endpoints are tested against the existing showing.
// An existing showing lying strictly inside a longer candidate window is
// NOT reported. Screens run back-to-back film-length slots in practice so
// the gap never bites, and the behaviour is kept rather than widened to a
// symmetric interval test; tests pin it down.
func (st ShowTime) Conflicts(start, end time.Time) bool {
	if !st.Start.Before(start) && !st.Start.After(end) {
		return true
	}
	if !st.End.Before(start) && !st.End.After(end) {
		return true
	}
	return false
}

// DayBounds returns 00:00:00 and 23:59:59 on t's calendar day. The
// conflict scan is scoped to showings starting within these bounds, so a
// showing running past midnight is never checked against the next day's
// early showings.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	return start, end
}

// MonthBounds returns day 1 00:00:00 and the last calendar day 23:59:59
// of the given month, in UTC to match stored show times.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
