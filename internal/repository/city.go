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

type CityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCityRepo(db *dbpg.DB) *CityRepository {
	return &CityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CityRepository) Create(ctx context.Context, c *domain.City) error {
	query := `INSERT INTO cities (id, name, morning_price, afternoon_price, evening_price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.MorningPrice, c.AfternoonPrice, c.EveningPrice, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCityExists
		}
		return fmt.Errorf("insert city: %w", err)
	}

	return nil
}

func (r *CityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	query := `SELECT id, name, morning_price, afternoon_price, evening_price
			  FROM cities
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get city: %w", err)
	}

	var c domain.City
	if err = row.Scan(&c.ID, &c.Name, &c.MorningPrice, &c.AfternoonPrice, &c.EveningPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCityNotFound
		}
		return nil, fmt.Errorf("scan city: %w", err)
	}

	return &c, nil
}

// GetByShowing walks showing -> screen -> cinema -> city, the chain prices
// are resolved along at read time.
func (r *CityRepository) GetByShowing(ctx context.Context, showingID string) (*domain.City, error) {
	query := `SELECT ci.id, ci.name, ci.morning_price, ci.afternoon_price, ci.evening_price
			  FROM showings sh
			  JOIN screens s ON s.id = sh.screen_id
			  JOIN cinemas c ON c.id = s.cinema_id
			  JOIN cities ci ON ci.id = c.city_id
			  WHERE sh.id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, showingID)
	if err != nil {
		return nil, fmt.Errorf("get city by showing: %w", err)
	}

	var c domain.City
	if err = row.Scan(&c.ID, &c.Name, &c.MorningPrice, &c.AfternoonPrice, &c.EveningPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShowingNotFound
		}
		return nil, fmt.Errorf("scan city by showing: %w", err)
	}

	return &c, nil
}

func (r *CityRepository) List(ctx context.Context) ([]*domain.City, error) {
	query := `SELECT id, name, morning_price, afternoon_price, evening_price
			  FROM cities
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var res []*domain.City
	for rows.Next() {
		var c domain.City
		if err = rows.Scan(&c.ID, &c.Name, &c.MorningPrice, &c.AfternoonPrice, &c.EveningPrice); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CityRepository) UpdatePrices(ctx context.Context, id string, prices domain.CityPrices) error {
	query := `UPDATE cities
			  SET morning_price = $2, afternoon_price = $3, evening_price = $4, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, prices.Morning, prices.Afternoon, prices.Evening)
	if err != nil {
		return fmt.Errorf("update city prices: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("city rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCityNotFound
	}

	return nil
}
