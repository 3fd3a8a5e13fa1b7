package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type ReportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReportRepo(db *dbpg.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// ListBookingRows fetches one wide row per booking with everything the
// reports aggregate over. Bounds filter on the showing's start time; nil
// means unbounded. Ordered by booking id so aggregation order is stable
// across runs.
func (r *ReportRepository) ListBookingRows(ctx context.Context, from, to *time.Time) ([]*domain.BookingRow, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT b.id, f.id, f.title, f.year_published,
					c.id, c.name, b.employee_id, COALESCE(u.username, ''),
					sh.show_time,
					ci.id, ci.name, ci.morning_price, ci.afternoon_price, ci.evening_price,
					b.lower_booked, b.upper_booked, b.vip_booked
			  FROM bookings b
			  JOIN showings sh ON sh.id = b.showing_id
			  JOIN films f ON f.id = sh.film_id
			  JOIN screens s ON s.id = sh.screen_id
			  JOIN cinemas c ON c.id = s.cinema_id
			  JOIN cities ci ON ci.id = c.city_id
			  LEFT JOIN users u ON u.id = b.employee_id`)

	var conds []string
	var args []any
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("sh.show_time >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("sh.show_time <= $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY b.id")

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list booking rows: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingRow
	for rows.Next() {
		var row domain.BookingRow
		if err = rows.Scan(
			&row.BookingID, &row.FilmID, &row.FilmTitle, &row.YearPublished,
			&row.CinemaID, &row.CinemaName, &row.EmployeeID, &row.Username,
			&row.ShowTime,
			&row.City.ID, &row.City.Name, &row.City.MorningPrice, &row.City.AfternoonPrice, &row.City.EveningPrice,
			&row.LowerBooked, &row.UpperBooked, &row.VIPBooked,
		); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		res = append(res, &row)
	}

	return res, rows.Err()
}
