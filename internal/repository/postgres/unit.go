package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

type unitRepository struct {
	db DBTX
}

func NewUnitRepository(db DBTX) repository.UnitRepository {
	return &unitRepository{db: db}
}

const unitColumns = `id, product_id, label, location, active`

func (r *unitRepository) GetByID(ctx context.Context, id int32) (*domain.RentableUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM rentable_units WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *unitRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.RentableUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM rentable_units WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *unitRepository) get(ctx context.Context, query string, id int32) (*domain.RentableUnit, error) {
	u := &domain.RentableUnit{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.ProductID, &u.Label, &u.Location, &u.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("unit %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *unitRepository) ListActiveByProduct(ctx context.Context, productID int32) ([]domain.RentableUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM rentable_units WHERE product_id = $1 AND active ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.RentableUnit
	for rows.Next() {
		var u domain.RentableUnit
		if err := rows.Scan(&u.ID, &u.ProductID, &u.Label, &u.Location, &u.Active); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}
