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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Lock the showing row so the booking cannot race a delete.
	var showingID string
	lockQuery := `SELECT id FROM showings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.ShowingID).Scan(&showingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrShowingNotFound
		}
		return fmt.Errorf("lock showing: %w", err)
	}

	query := `INSERT INTO bookings (id, showing_id, employee_id, lower_booked, upper_booked, vip_booked, name, phone, email, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.ShowingID, b.EmployeeID,
		b.LowerBooked, b.UpperBooked, b.VIPBooked,
		b.Name, b.Phone, b.Email, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, showing_id, employee_id, lower_booked, upper_booked, vip_booked, name, phone, email, created_at
			  FROM bookings
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.ShowingID, &b.EmployeeID,
		&b.LowerBooked, &b.UpperBooked, &b.VIPBooked,
		&b.Name, &b.Phone, &b.Email, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByShowing(ctx context.Context, showingID string) ([]*domain.Booking, error) {
	query := `SELECT id, showing_id, employee_id, lower_booked, upper_booked, vip_booked, name, phone, email, created_at
			  FROM bookings
			  WHERE showing_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, showingID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by showing: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.ShowingID, &b.EmployeeID,
			&b.LowerBooked, &b.UpperBooked, &b.VIPBooked,
			&b.Name, &b.Phone, &b.Email, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
