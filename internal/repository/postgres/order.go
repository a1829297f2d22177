package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

type orderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, customer_id, status, subtotal, total, created_at`

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (customer_id, status, subtotal, total, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, o.CustomerID, o.Status, o.Subtotal, o.Total, o.CreatedAt).Scan(&o.ID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *orderRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *orderRepository) get(ctx context.Context, query string, id int32) (*domain.Order, error) {
	o := &domain.Order{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.Status, &o.Subtotal, &o.Total, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET status = $1, subtotal = $2, total = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, o.Status, o.Subtotal, o.Total, o.ID)
	return err
}

func (r *orderRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	return err
}

func (r *orderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM orders`)
	return err
}
