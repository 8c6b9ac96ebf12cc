package services

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

// UserDebt is one active obligation of a user, annotated with the parent
// expense for display.
type UserDebt struct {
	DebtID        int             `json:"debt_id"`
	ExpenseID     int             `json:"expense_id"`
	CondominiumID int             `json:"condominium_id"`
	Concept       string          `json:"concept"`
	DueDate       string          `json:"due_date"`
	AmountOwed    decimal.Decimal `json:"amount_owed"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
}

// UserPayment is one payment a user made, annotated with the originating
// expense's concept.
type UserPayment struct {
	PaymentID     int             `json:"payment_id"`
	DebtID        int             `json:"debt_id"`
	CondominiumID int             `json:"condominium_id"`
	Concept       string          `json:"concept"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	ReceiptRef    string          `json:"receipt_ref"`
	PaidAt        string          `json:"paid_at"`
}

// ListUserDebts returns the user's active debts, scoped to one condominium
// when condominiumID is non-nil. Read-only.
func ListUserDebts(ctx context.Context, db *sql.DB, userID int, condominiumID *int) ([]UserDebt, error) {
	if err := checkUserExists(ctx, db, userID); err != nil {
		return nil, err
	}
	if condominiumID != nil {
		if err := checkCondominiumExists(ctx, db, *condominiumID); err != nil {
			return nil, err
		}
	}

	query := `
		SELECT d.id, e.id, e.condominium_id, e.concept, e.due_date, d.amount_owed, d.amount_paid
		FROM debts d
		JOIN expenses e ON d.expense_id = e.id
		WHERE d.owner_user_id = ? AND d.active = TRUE
	`
	args := []interface{}{userID}
	if condominiumID != nil {
		query += " AND e.condominium_id = ?"
		args = append(args, *condominiumID)
	}
	query += " ORDER BY e.due_date, d.id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("fetch debts", err)
	}
	defer rows.Close()

	debts := []UserDebt{}
	for rows.Next() {
		var d UserDebt
		if err := rows.Scan(&d.DebtID, &d.ExpenseID, &d.CondominiumID, &d.Concept, &d.DueDate, &d.AmountOwed, &d.AmountPaid); err != nil {
			return nil, storeErr("scan debt", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate debts", err)
	}
	return debts, nil
}

// ListUserPayments returns every payment made against the user's debts,
// scoped to one condominium when condominiumID is non-nil. Read-only.
func ListUserPayments(ctx context.Context, db *sql.DB, userID int, condominiumID *int) ([]UserPayment, error) {
	if err := checkUserExists(ctx, db, userID); err != nil {
		return nil, err
	}
	if condominiumID != nil {
		if err := checkCondominiumExists(ctx, db, *condominiumID); err != nil {
			return nil, err
		}
	}

	query := `
		SELECT p.id, p.debt_id, e.condominium_id, e.concept, p.amount_paid, p.method, p.receipt_ref, p.paid_at
		FROM payments p
		JOIN debts d ON p.debt_id = d.id
		JOIN expenses e ON d.expense_id = e.id
		WHERE d.owner_user_id = ?
	`
	args := []interface{}{userID}
	if condominiumID != nil {
		query += " AND e.condominium_id = ?"
		args = append(args, *condominiumID)
	}
	query += " ORDER BY p.paid_at DESC, p.id DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("fetch payments", err)
	}
	defer rows.Close()

	payments := []UserPayment{}
	for rows.Next() {
		var p UserPayment
		var paidAt sql.NullString
		if err := rows.Scan(&p.PaymentID, &p.DebtID, &p.CondominiumID, &p.Concept, &p.Amount, &p.Method, &p.ReceiptRef, &paidAt); err != nil {
			return nil, storeErr("scan payment", err)
		}
		p.PaidAt = paidAt.String
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate payments", err)
	}
	return payments, nil
}

func checkUserExists(ctx context.Context, db *sql.DB, userID int) error {
	var id int
	err := db.QueryRowContext(ctx, "SELECT id FROM users WHERE id = ?", userID).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return storeErr("lookup user", err)
	}
	return nil
}

func checkCondominiumExists(ctx context.Context, db *sql.DB, condominiumID int) error {
	var id int
	err := db.QueryRowContext(ctx, "SELECT id FROM condominiums WHERE id = ?", condominiumID).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return storeErr("lookup condominium", err)
	}
	return nil
}
