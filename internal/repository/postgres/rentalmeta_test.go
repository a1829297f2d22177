package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository/postgres"
)

func TestRentalMetaRepository_GetByOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalMetaRepository(db)
	ctx := context.Background()

	metaColumns := []string{
		"order_id", "equipment_name", "delivery_method", "payment_method",
		"total_price", "total_hours", "start_date", "end_date",
		"scheduled_delivery_time", "pickup_time", "expected_return_time", "actual_return_time",
		"late_delivery", "late_return", "extra_hours", "extra_amount",
	}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(metaColumns).
			AddRow(1, "Excavator", "pickup", "card", 30.0, 3.0,
				time.Now(), time.Now().Add(3*time.Hour),
				nil, nil, nil, nil, false, false, 0.0, 0.0)

		mock.ExpectQuery("SELECT (.+) FROM rental_meta WHERE order_id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		meta, err := repo.GetByOrder(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Excavator", meta.EquipmentName)
		assert.Equal(t, domain.DeliveryMethodPickup, meta.DeliveryMethod)
		assert.Nil(t, meta.PickupTime)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rental_meta WHERE order_id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(metaColumns))

		_, err := repo.GetByOrder(ctx, 99)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestRentalMetaRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalMetaRepository(db)
	ctx := context.Background()
	asOf := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	lateColumns := []string{
		"id", "equipment_name", "name", "phone", "email",
		"expected_return_time", "total_price", "total_hours",
	}

	t.Run("AllCustomers", func(t *testing.T) {
		rows := sqlmock.NewRows(lateColumns).
			AddRow(1, "Excavator", "Ada", "555-0100", "ada@example.com",
				asOf.Add(-2*time.Hour), 30.0, 3.0)

		mock.ExpectQuery("SELECT (.+) FROM orders o").
			WithArgs(asOf).
			WillReturnRows(rows)

		late, err := repo.ListOverdue(ctx, asOf, "")
		assert.NoError(t, err)
		assert.Len(t, late, 1)
		assert.Equal(t, int32(1), late[0].OrderID)
		assert.Equal(t, "ada@example.com", late[0].CustomerEmail)
		assert.Zero(t, late[0].HoursOverdue) // derived by the service layer
	})

	t.Run("FilteredByPhone", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders o").
			WithArgs(asOf, "555-0100").
			WillReturnRows(sqlmock.NewRows(lateColumns))

		late, err := repo.ListOverdue(ctx, asOf, "555-0100")
		assert.NoError(t, err)
		assert.Empty(t, late)
	})
}
