package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type CinemaRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCinemaRepo(db *dbpg.DB) *CinemaRepository {
	return &CinemaRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CinemaRepository) Create(ctx context.Context, c *domain.Cinema) error {
	query := `INSERT INTO cinemas (id, city_id, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.CityID, c.Name, now, now)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCinemaExists
		}
		return fmt.Errorf("insert cinema: %w", err)
	}

	return nil
}

func (r *CinemaRepository) GetByID(ctx context.Context, id string) (*domain.Cinema, error) {
	query := `SELECT id, city_id, name
			  FROM cinemas
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get cinema: %w", err)
	}

	var c domain.Cinema
	if err = row.Scan(&c.ID, &c.CityID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCinemaNotFound
		}
		return nil, fmt.Errorf("scan cinema: %w", err)
	}

	return &c, nil
}

func (r *CinemaRepository) List(ctx context.Context) ([]*domain.Cinema, error) {
	query := `SELECT id, city_id, name
			  FROM cinemas
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}
	defer rows.Close()

	var res []*domain.Cinema
	for rows.Next() {
		var c domain.Cinema
		if err = rows.Scan(&c.ID, &c.CityID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan cinema: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
