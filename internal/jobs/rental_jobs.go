package jobs

import (
	"context"
	"time"

	"smartrentals-backend/internal/logger"
)

// SendOverdueReminders emails every customer whose rental is past its
// expected return time. One failed email does not stop the rest.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		late, err := jr.services.Lifecycle.ListLateRentals(ctx, "")
		if err != nil {
			logger.Error("Failed to list late rentals", "error", err)
			return
		}

		sent := 0
		for _, l := range late {
			if l.CustomerEmail == "" {
				logger.Warn("Late rental has no customer email",
					"order_id", l.OrderID, "customer", l.CustomerName)
				continue
			}
			err := jr.services.Email.SendOverdueReminder(ctx,
				l.CustomerEmail, l.CustomerName, l.EquipmentName,
				l.HoursOverdue, l.ExpectedReturnTime)
			if err != nil {
				logger.Error("Failed to send overdue reminder",
					"order_id", l.OrderID, "email", l.CustomerEmail, "error", err)
				continue
			}
			sent++
			logger.Debug("Sent overdue reminder",
				"order_id", l.OrderID,
				"email", l.CustomerEmail,
				"hours_overdue", l.HoursOverdue)
		}

		logger.Info("Sent overdue reminders", "late_rentals", len(late), "sent", sent)
	})
}

// CancelStalePendingOrders cancels unpaid orders older than the configured
// TTL so their reserved units go back into circulation.
func (jr *JobRunner) CancelStalePendingOrders() {
	jr.runWithRecovery("CancelStalePendingOrders", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-time.Duration(jr.config.Booking.PendingOrderTTLHours) * time.Hour)

		query := `
			SELECT id
			FROM orders
			WHERE status = 'pending'
			  AND created_at < $1
			ORDER BY id
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to query stale pending orders", "error", err)
			return
		}
		defer rows.Close()

		var staleIDs []int32
		for rows.Next() {
			var id int32
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan stale order id", "error", err)
				continue
			}
			staleIDs = append(staleIDs, id)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating stale pending orders", "error", err)
			return
		}

		cancelled := 0
		for _, id := range staleIDs {
			if _, err := jr.services.Lifecycle.Cancel(ctx, id, "pending order expired"); err != nil {
				logger.Error("Failed to cancel stale order", "order_id", id, "error", err)
				continue
			}
			cancelled++
		}

		logger.Info("Cancelled stale pending orders", "stale", len(staleIDs), "cancelled", cancelled)
	})
}
