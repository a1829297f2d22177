package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

type rentalMetaRepository struct {
	db DBTX
}

func NewRentalMetaRepository(db DBTX) repository.RentalMetaRepository {
	return &rentalMetaRepository{db: db}
}

func (r *rentalMetaRepository) Create(ctx context.Context, m *domain.RentalMeta) error {
	query := `INSERT INTO rental_meta (
	            order_id, equipment_name, delivery_method, payment_method,
	            total_price, total_hours, start_date, end_date,
	            scheduled_delivery_time, pickup_time, expected_return_time, actual_return_time,
	            late_delivery, late_return, extra_hours, extra_amount)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecContext(ctx, query,
		m.OrderID, m.EquipmentName, m.DeliveryMethod, m.PaymentMethod,
		m.TotalPrice, m.TotalHours, m.StartDate, m.EndDate,
		m.ScheduledDeliveryTime, m.PickupTime, m.ExpectedReturnTime, m.ActualReturnTime,
		m.LateDelivery, m.LateReturn, m.ExtraHours, m.ExtraAmount)
	return err
}

func (r *rentalMetaRepository) GetByOrder(ctx context.Context, orderID int32) (*domain.RentalMeta, error) {
	m := &domain.RentalMeta{}
	query := `SELECT order_id, equipment_name, delivery_method, payment_method,
	                 total_price, total_hours, start_date, end_date,
	                 scheduled_delivery_time, pickup_time, expected_return_time, actual_return_time,
	                 late_delivery, late_return, extra_hours, extra_amount
	          FROM rental_meta WHERE order_id = $1`
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&m.OrderID, &m.EquipmentName, &m.DeliveryMethod, &m.PaymentMethod,
		&m.TotalPrice, &m.TotalHours, &m.StartDate, &m.EndDate,
		&m.ScheduledDeliveryTime, &m.PickupTime, &m.ExpectedReturnTime, &m.ActualReturnTime,
		&m.LateDelivery, &m.LateReturn, &m.ExtraHours, &m.ExtraAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental meta for order %d: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *rentalMetaRepository) Update(ctx context.Context, m *domain.RentalMeta) error {
	query := `UPDATE rental_meta SET
	            equipment_name = $1, delivery_method = $2, payment_method = $3,
	            total_price = $4, total_hours = $5, start_date = $6, end_date = $7,
	            scheduled_delivery_time = $8, pickup_time = $9,
	            expected_return_time = $10, actual_return_time = $11,
	            late_delivery = $12, late_return = $13, extra_hours = $14, extra_amount = $15
	          WHERE order_id = $16`
	_, err := r.db.ExecContext(ctx, query,
		m.EquipmentName, m.DeliveryMethod, m.PaymentMethod,
		m.TotalPrice, m.TotalHours, m.StartDate, m.EndDate,
		m.ScheduledDeliveryTime, m.PickupTime,
		m.ExpectedReturnTime, m.ActualReturnTime,
		m.LateDelivery, m.LateReturn, m.ExtraHours, m.ExtraAmount,
		m.OrderID)
	return err
}

func (r *rentalMetaRepository) DeleteByOrder(ctx context.Context, orderID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rental_meta WHERE order_id = $1`, orderID)
	return err
}

func (r *rentalMetaRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rental_meta`)
	return err
}

func (r *rentalMetaRepository) ListOverdue(ctx context.Context, asOf time.Time, customerPhone string) ([]domain.LateRental, error) {
	query := `SELECT o.id, m.equipment_name, c.name, c.phone, c.email,
	                 m.expected_return_time, m.total_price, m.total_hours
	          FROM orders o
	          JOIN rental_meta m ON m.order_id = o.id
	          JOIN customers c ON c.id = o.customer_id
	          WHERE o.status = 'rented'
	            AND m.expected_return_time IS NOT NULL
	            AND m.expected_return_time < $1`
	args := []any{asOf}
	if customerPhone != "" {
		query += ` AND c.phone = $2`
		args = append(args, customerPhone)
	}
	query += ` ORDER BY m.expected_return_time`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var late []domain.LateRental
	for rows.Next() {
		var lr domain.LateRental
		if err := rows.Scan(&lr.OrderID, &lr.EquipmentName, &lr.CustomerName, &lr.CustomerPhone, &lr.CustomerEmail,
			&lr.ExpectedReturnTime, &lr.TotalPrice, &lr.TotalHours); err != nil {
			return nil, err
		}
		late = append(late, lr)
	}
	return late, rows.Err()
}
