package repository

import (
	"context"
	"time"

	"smartrentals-backend/internal/domain"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
}

type UnitRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.RentableUnit, error)
	// GetByIDForUpdate locks the unit row for the duration of the enclosing
	// transaction, serializing concurrent bookings of the same unit.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.RentableUnit, error)
	ListActiveByProduct(ctx context.Context, productID int32) ([]domain.RentableUnit, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	// HasOverlap reports whether any reservation on the unit intersects the
	// window under the half-open overlap test.
	HasOverlap(ctx context.Context, unitID int32, w domain.TimeWindow) (bool, error)
	ListByOrder(ctx context.Context, orderID int32) ([]domain.Reservation, error)
	DeleteByOrder(ctx context.Context, orderID int32) error
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	// GetByIDForUpdate locks the order row so concurrent lifecycle
	// transitions on the same order serialize.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id int32) error
	DeleteAll(ctx context.Context) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByOrder(ctx context.Context, orderID int32) ([]domain.Payment, error)
	DeleteByOrder(ctx context.Context, orderID int32) error
	DeleteAll(ctx context.Context) error
}

type RentalMetaRepository interface {
	Create(ctx context.Context, m *domain.RentalMeta) error
	GetByOrder(ctx context.Context, orderID int32) (*domain.RentalMeta, error)
	Update(ctx context.Context, m *domain.RentalMeta) error
	DeleteByOrder(ctx context.Context, orderID int32) error
	DeleteAll(ctx context.Context) error
	// ListOverdue returns rented orders whose expected return time falls
	// before asOf, optionally filtered by customer phone, ordered by
	// expected return time. HoursOverdue is left for the caller to derive.
	ListOverdue(ctx context.Context, asOf time.Time, customerPhone string) ([]domain.LateRental, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
}

// Repositories bundles every repository behind one transactional boundary.
type Repositories struct {
	Products     ProductRepository
	Units        UnitRepository
	Reservations ReservationRepository
	Orders       OrderRepository
	Payments     PaymentRepository
	RentalMeta   RentalMetaRepository
	Customers    CustomerRepository
}

// Store is the persistence handle injected into services. Repos gives
// auto-committed repositories for reads; ExecTx runs fn against
// repositories bound to a single transaction and commits only when fn
// returns nil, so a failed booking or transition leaves nothing behind.
type Store interface {
	Repos() Repositories
	ExecTx(ctx context.Context, fn func(Repositories) error) error
}
