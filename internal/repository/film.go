package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type FilmRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFilmRepo(db *dbpg.DB) *FilmRepository {
	return &FilmRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *FilmRepository) Create(ctx context.Context, f *domain.Film) error {
	query := `INSERT INTO films (id, title, year_published, rating, age_rating, duration, synopsis, cast_members, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, make_interval(secs => $6), $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		f.ID, f.Title, f.YearPublished, f.Rating, string(f.AgeRating),
		f.Duration.Seconds(), f.Synopsis, f.Cast, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert film: %w", err)
	}

	return nil
}

func (r *FilmRepository) GetByID(ctx context.Context, id string) (*domain.Film, error) {
	query := `SELECT id, title, year_published, rating, age_rating,
					EXTRACT(EPOCH FROM duration)::bigint, synopsis, cast_members
			  FROM films
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}

	f, err := scanFilm(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFilmNotFound
		}
		return nil, fmt.Errorf("scan film: %w", err)
	}

	return f, nil
}

func (r *FilmRepository) List(ctx context.Context) ([]*domain.Film, error) {
	query := `SELECT id, title, year_published, rating, age_rating,
					EXTRACT(EPOCH FROM duration)::bigint, synopsis, cast_members
			  FROM films
			  ORDER BY title, year_published`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	defer rows.Close()

	var res []*domain.Film
	for rows.Next() {
		f, err := scanFilm(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan film: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

func (r *FilmRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM films WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete film: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("film rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrFilmNotFound
	}

	return nil
}

func scanFilm(scan func(...any) error) (*domain.Film, error) {
	var f domain.Film
	var ageRating string
	var durationSeconds int64
	if err := scan(
		&f.ID, &f.Title, &f.YearPublished, &f.Rating, &ageRating,
		&durationSeconds, &f.Synopsis, &f.Cast,
	); err != nil {
		return nil, err
	}
	f.AgeRating = domain.AgeRating(ageRating)
	f.Duration = time.Duration(durationSeconds) * time.Second
	return &f, nil
}
