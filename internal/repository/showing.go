package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type ShowingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewShowingRepo(db *dbpg.DB) *ShowingRepository {
	return &ShowingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ShowingRepository) Create(ctx context.Context, s *domain.Showing) error {
	query := `INSERT INTO showings (id, screen_id, film_id, show_time, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.ID, s.ScreenID, s.FilmID, s.ShowTime, now, now)
	if err != nil {
		return fmt.Errorf("insert showing: %w", err)
	}

	return nil
}

func (r *ShowingRepository) Update(ctx context.Context, s *domain.Showing) error {
	query := `UPDATE showings
			  SET screen_id = $2, film_id = $3, show_time = $4, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.ID, s.ScreenID, s.FilmID, s.ShowTime)
	if err != nil {
		return fmt.Errorf("update showing: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("showing rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrShowingNotFound
	}

	return nil
}

func (r *ShowingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM showings WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete showing: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("showing rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrShowingNotFound
	}

	return nil
}

func (r *ShowingRepository) GetByID(ctx context.Context, id string) (*domain.Showing, error) {
	query := `SELECT id, screen_id, film_id, show_time
			  FROM showings
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get showing: %w", err)
	}

	var s domain.Showing
	if err = row.Scan(&s.ID, &s.ScreenID, &s.FilmID, &s.ShowTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShowingNotFound
		}
		return nil, fmt.Errorf("scan showing: %w", err)
	}

	return &s, nil
}

// ListByScreenAndDay returns the screen's showings starting inside the
// bounds, each carrying its film's title and duration so the scheduler can
// derive end times without extra reads.
func (r *ShowingRepository) ListByScreenAndDay(ctx context.Context, screenID string, dayStart, dayEnd time.Time) ([]*domain.ScreenShowing, error) {
	query := `SELECT sh.id, sh.film_id, f.title, sh.show_time, EXTRACT(EPOCH FROM f.duration)::bigint
			  FROM showings sh
			  JOIN films f ON f.id = sh.film_id
			  WHERE sh.screen_id = $1 AND sh.show_time BETWEEN $2 AND $3
			  ORDER BY sh.show_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, screenID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list showings by screen: %w", err)
	}
	defer rows.Close()

	var res []*domain.ScreenShowing
	for rows.Next() {
		var s domain.ScreenShowing
		var durationSeconds int64
		if err = rows.Scan(&s.ID, &s.FilmID, &s.FilmTitle, &s.ShowTime, &durationSeconds); err != nil {
			return nil, fmt.Errorf("scan screen showing: %w", err)
		}
		s.Duration = time.Duration(durationSeconds) * time.Second
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *ShowingRepository) List(ctx context.Context, filter domain.ShowingFilter) ([]*domain.ShowingDetails, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT sh.id, f.id, f.title, f.year_published,
					c.name, s.name, sh.show_time, sh.show_time + f.duration
			  FROM showings sh
			  JOIN films f ON f.id = sh.film_id
			  JOIN screens s ON s.id = sh.screen_id
			  JOIN cinemas c ON c.id = s.cinema_id`)

	var conds []string
	var args []any
	if filter.FilmID != "" {
		args = append(args, filter.FilmID)
		conds = append(conds, fmt.Sprintf("f.id = $%d", len(args)))
	}
	if filter.CinemaID != "" {
		args = append(args, filter.CinemaID)
		conds = append(conds, fmt.Sprintf("c.id = $%d", len(args)))
	}
	if filter.Date != nil {
		dayStart, dayEnd := domain.DayBounds(*filter.Date)
		args = append(args, dayStart)
		conds = append(conds, fmt.Sprintf("sh.show_time >= $%d", len(args)))
		args = append(args, dayEnd)
		conds = append(conds, fmt.Sprintf("sh.show_time <= $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY sh.show_time")

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list showings: %w", err)
	}
	defer rows.Close()

	var res []*domain.ShowingDetails
	for rows.Next() {
		var d domain.ShowingDetails
		if err = rows.Scan(
			&d.ID, &d.FilmID, &d.FilmTitle, &d.YearPublished,
			&d.CinemaName, &d.ScreenName, &d.ShowTime, &d.ShowEnd,
		); err != nil {
			return nil, fmt.Errorf("scan showing details: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}
