package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// MockUnitRepo
type MockUnitRepo struct {
	mock.Mock
}

func (m *MockUnitRepo) GetByID(ctx context.Context, id int32) (*domain.RentableUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentableUnit), args.Error(1)
}
func (m *MockUnitRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.RentableUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentableUnit), args.Error(1)
}
func (m *MockUnitRepo) ListActiveByProduct(ctx context.Context, productID int32) ([]domain.RentableUnit, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentableUnit), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) HasOverlap(ctx context.Context, unitID int32, w domain.TimeWindow) (bool, error) {
	args := m.Called(ctx, unitID, w)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) ListByOrder(ctx context.Context, orderID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) DeleteByOrder(ctx context.Context, orderID int32) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockReservationRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByOrder(ctx context.Context, orderID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) DeleteByOrder(ctx context.Context, orderID int32) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockPaymentRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockRentalMetaRepo
type MockRentalMetaRepo struct {
	mock.Mock
}

func (m *MockRentalMetaRepo) Create(ctx context.Context, meta *domain.RentalMeta) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}
func (m *MockRentalMetaRepo) GetByOrder(ctx context.Context, orderID int32) (*domain.RentalMeta, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalMeta), args.Error(1)
}
func (m *MockRentalMetaRepo) Update(ctx context.Context, meta *domain.RentalMeta) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}
func (m *MockRentalMetaRepo) DeleteByOrder(ctx context.Context, orderID int32) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockRentalMetaRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRentalMetaRepo) ListOverdue(ctx context.Context, asOf time.Time, customerPhone string) ([]domain.LateRental, error) {
	args := m.Called(ctx, asOf, customerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LateRental), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// mockRepos builds a Repositories bundle over fresh mocks.
type mockRepos struct {
	products     *MockProductRepo
	units        *MockUnitRepo
	reservations *MockReservationRepo
	orders       *MockOrderRepo
	payments     *MockPaymentRepo
	rentalMeta   *MockRentalMetaRepo
	customers    *MockCustomerRepo
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		products:     new(MockProductRepo),
		units:        new(MockUnitRepo),
		reservations: new(MockReservationRepo),
		orders:       new(MockOrderRepo),
		payments:     new(MockPaymentRepo),
		rentalMeta:   new(MockRentalMetaRepo),
		customers:    new(MockCustomerRepo),
	}
}

func (m *mockRepos) bundle() repository.Repositories {
	return repository.Repositories{
		Products:     m.products,
		Units:        m.units,
		Reservations: m.reservations,
		Orders:       m.orders,
		Payments:     m.payments,
		RentalMeta:   m.rentalMeta,
		Customers:    m.customers,
	}
}

// fakeStore satisfies repository.Store with a passthrough ExecTx so service
// logic can be exercised without a database.
type fakeStore struct {
	repos repository.Repositories
}

func newFakeStore(m *mockRepos) *fakeStore {
	return &fakeStore{repos: m.bundle()}
}

func (s *fakeStore) Repos() repository.Repositories {
	return s.repos
}

func (s *fakeStore) ExecTx(ctx context.Context, fn func(repository.Repositories) error) error {
	return fn(s.repos)
}
