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

type ScreenRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScreenRepo(db *dbpg.DB) *ScreenRepository {
	return &ScreenRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ScreenRepository) Create(ctx context.Context, s *domain.Screen) error {
	query := `INSERT INTO screens (id, cinema_id, name, lower_capacity, upper_capacity, vip_capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.CinemaID, s.Name, s.LowerCapacity, s.UpperCapacity, s.VIPCapacity, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert screen: %w", err)
	}

	return nil
}

func (r *ScreenRepository) GetByID(ctx context.Context, id string) (*domain.Screen, error) {
	query := `SELECT id, cinema_id, name, lower_capacity, upper_capacity, vip_capacity
			  FROM screens
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get screen: %w", err)
	}

	var s domain.Screen
	if err = row.Scan(&s.ID, &s.CinemaID, &s.Name, &s.LowerCapacity, &s.UpperCapacity, &s.VIPCapacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScreenNotFound
		}
		return nil, fmt.Errorf("scan screen: %w", err)
	}

	return &s, nil
}

func (r *ScreenRepository) ListByCinema(ctx context.Context, cinemaID string) ([]*domain.Screen, error) {
	query := `SELECT id, cinema_id, name, lower_capacity, upper_capacity, vip_capacity
			  FROM screens
			  WHERE cinema_id=$1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, cinemaID)
	if err != nil {
		return nil, fmt.Errorf("list screens: %w", err)
	}
	defer rows.Close()

	var res []*domain.Screen
	for rows.Next() {
		var s domain.Screen
		if err = rows.Scan(&s.ID, &s.CinemaID, &s.Name, &s.LowerCapacity, &s.UpperCapacity, &s.VIPCapacity); err != nil {
			return nil, fmt.Errorf("scan screen: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
