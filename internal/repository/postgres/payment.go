package postgres

import (
	"context"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

type paymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (order_id, method, amount, reference, received_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.OrderID, p.Method, p.Amount, p.Reference, p.ReceivedAt).Scan(&p.ID)
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int32) ([]domain.Payment, error) {
	query := `SELECT id, order_id, method, amount, reference, received_at
	          FROM payments WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.Reference, &p.ReceivedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) DeleteByOrder(ctx context.Context, orderID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE order_id = $1`, orderID)
	return err
}

func (r *paymentRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments`)
	return err
}
