package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"smartrentals-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so the same repository
// code runs inside and outside transactions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db    *sql.DB
	repos repository.Repositories
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repos: newRepositories(db)}
}

func newRepositories(db DBTX) repository.Repositories {
	return repository.Repositories{
		Products:     NewProductRepository(db),
		Units:        NewUnitRepository(db),
		Reservations: NewReservationRepository(db),
		Orders:       NewOrderRepository(db),
		Payments:     NewPaymentRepository(db),
		RentalMeta:   NewRentalMetaRepository(db),
		Customers:    NewCustomerRepository(db),
	}
}

func (s *Store) Repos() repository.Repositories { return s.repos }

// ExecTx runs fn against repositories bound to a single database
// transaction, committing only when fn returns nil.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(newRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
