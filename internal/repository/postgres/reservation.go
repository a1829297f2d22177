package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

// exclusionViolation is the PostgreSQL error code raised by the
// reservations_no_overlap exclusion constraint.
const exclusionViolation = "23P01"

type reservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (order_id, unit_id, start_date, end_date)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, res.OrderID, res.UnitID, res.Window.Start, res.Window.End).Scan(&res.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == exclusionViolation {
			return fmt.Errorf("unit %d [%s, %s): %w", res.UnitID,
				res.Window.Start.Format(time.RFC3339), res.Window.End.Format(time.RFC3339),
				domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *reservationRepository) HasOverlap(ctx context.Context, unitID int32, w domain.TimeWindow) (bool, error) {
	// Half-open overlap test: existing.start < end AND existing.end > start.
	query := `SELECT EXISTS (
	            SELECT 1 FROM reservations
	            WHERE unit_id = $1 AND start_date < $2 AND end_date > $3
	          )`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, unitID, w.End, w.Start).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reservationRepository) ListByOrder(ctx context.Context, orderID int32) ([]domain.Reservation, error) {
	query := `SELECT id, order_id, unit_id, start_date, end_date
	          FROM reservations WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.OrderID, &res.UnitID, &res.Window.Start, &res.Window.End); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) DeleteByOrder(ctx context.Context, orderID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE order_id = $1`, orderID)
	return err
}

func (r *reservationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reservations`)
	return err
}
