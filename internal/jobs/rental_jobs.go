package jobs

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/logger"
)

// MarkOverdueRentals flags rentals whose return date has passed and which
// are not yet settled. The flag is what surfaces the overdue badge on the
// rentals list.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET overdue = TRUE,
			    updated_on = NOW()
			WHERE overdue = FALSE
			  AND payment_status <> 'paid'
			  AND (return_date || ' ' || return_time)::timestamp < $1
		`

		result, err := jr.db.ExecContext(ctx, query, time.Now().Format("2006-01-02 15:04"))
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}

		count, _ := result.RowsAffected()
		logger.Info("Marked rentals as overdue", "count", count)
	})
}

// SendPaymentReminders emails the office one reminder per rental that is
// overdue with an outstanding balance.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()

		query := `
			SELECT agreement_number, client_name, balance
			FROM rentals
			WHERE overdue = TRUE
			  AND payment_status <> 'paid'
			  AND balance > 0
			ORDER BY return_date
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to load rentals for payment reminders", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var agreementNumber, clientName string
			var balance int64
			if err := rows.Scan(&agreementNumber, &clientName, &balance); err != nil {
				logger.Error("Failed to scan rental for reminder", "error", err)
				continue
			}

			if err := jr.emailSvc.SendPaymentReminder(ctx, jr.notifyEmail, clientName, agreementNumber, balance); err != nil {
				logger.Error("Failed to send payment reminder", "error", err, "agreement", agreementNumber)
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating rentals for reminders", "error", err)
			return
		}

		logger.Info("Sent payment reminders", "count", sent)
	})
}
