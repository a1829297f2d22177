package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

type productRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT id, name, description, sku, category, published, hourly_rate, daily_rate, min_hours, max_hours
	          FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.Category, &p.Published,
		&p.HourlyRate, &p.DailyRate, &p.MinHours, &p.MaxHours)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
