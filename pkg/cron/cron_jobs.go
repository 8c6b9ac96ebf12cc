package cron

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"condoadmin/pkg/utils"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

func StartCronJob(db *sql.DB) *cron.Cron {
	c := cron.New()

	// Runs daily at midnight — remind owners with overdue debts
	_, err := c.AddFunc("0 0 * * *", func() {
		err := SendReminderEmailsToDebtors(db)
		if err != nil {
			utils.Logger.Errorf("Cron job failed to send reminder emails: %v", err)
		}
	})
	if err != nil {
		utils.Logger.Errorf("Failed to schedule debt reminder job: %v", err)
	}

	c.Start()
	utils.Logger.Info("Cron jobs started (overdue debt reminders daily at midnight)")
	return c
}

// -------------------------------------------------------------
// Send daily reminders for overdue active debts (email sends run
// concurrently)
// -------------------------------------------------------------
func SendReminderEmailsToDebtors(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	rows, err := db.QueryContext(ctx, `
		SELECT
			u.email,
			u.first_name,
			c.name AS condominium_name,
			e.concept,
			e.due_date,
			d.amount_owed - d.amount_paid AS remaining
		FROM debts d
		JOIN expenses e ON d.expense_id = e.id
		JOIN condominiums c ON e.condominium_id = c.id
		JOIN dwellings w ON d.dwelling_id = w.id
		JOIN users u ON w.owner_user_id = u.id
		WHERE d.active = TRUE AND e.due_date < CURDATE()
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var wg sync.WaitGroup
	errChan := make(chan error, 10)

	for rows.Next() {
		var email, firstName, condoName, concept string
		var dueDateRaw sql.NullString
		var remaining decimal.Decimal

		if err := rows.Scan(&email, &firstName, &condoName, &concept, &dueDateRaw, &remaining); err != nil {
			utils.Logger.Errorf("Failed to scan debtor row: %v", err)
			continue
		}

		var dueDate time.Time
		if dueDateRaw.Valid {
			dueDate, err = time.Parse("2006-01-02", dueDateRaw.String)
			if err != nil {
				utils.Logger.Errorf("Failed to parse due_date for %s: %v", email, err)
				continue
			}
		} else {
			dueDate = time.Now()
		}

		wg.Add(1)
		go func(email, firstName, condoName, concept string, remaining decimal.Decimal, dueDate time.Time) {
			defer wg.Done()

			if err := utils.SendDebtReminderEmail(
				email,
				firstName,
				remaining.StringFixed(2),
				condoName,
				concept,
				dueDate,
			); err != nil {
				errChan <- fmt.Errorf("failed to send reminder email to %s: %v", email, err)
				return
			}

			utils.Logger.Infof("📧 Sent reminder to %s (%s) — %s owed for '%s' in '%s'",
				firstName, email, remaining.StringFixed(2), concept, condoName)
		}(email, firstName, condoName, concept, remaining, dueDate)
	}

	wg.Wait()
	close(errChan)

	for e := range errChan {
		utils.Logger.Error(e)
	}

	if err := rows.Err(); err != nil {
		utils.Logger.Errorf("Error iterating debtor rows: %v", err)
		return err
	}

	utils.Logger.Info("✅ Finished sending all debt reminder emails.")
	return nil
}
