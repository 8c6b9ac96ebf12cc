package services

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

type ApplyPaymentInput struct {
	DebtID      int
	Amount      decimal.Decimal
	Method      string
	ProofURL    string
	Notes       string
	ReferenceNo string
}

type ApplyPaymentResult struct {
	PaymentID      int    `json:"payment_id"`
	ReceiptRef     string `json:"receipt_ref"`
	DebtSettled    bool   `json:"debt_settled"`
	ExpenseSettled bool   `json:"expense_settled"`
}

// Settlement is the outcome of applying one payment to the running totals
// of a debt and its parent expense.
type Settlement struct {
	DebtPaid       decimal.Decimal
	ExpensePaid    decimal.Decimal
	DebtSettled    bool
	ExpenseSettled bool
}

// SettleTotals advances the cumulative paid amounts by one payment. A debt
// or expense settles exactly when its new total equals the owed amount; a
// payment that would push the debt past what is owed is rejected before
// anything is written, so equality stays the only settlement trigger.
func SettleTotals(debtPaid, amountOwed, expensePaid, expenseAmount, payment decimal.Decimal) (Settlement, error) {
	if !payment.IsPositive() {
		return Settlement{}, validationErr("amount_paid", "payment must be greater than 0")
	}

	newDebtPaid := debtPaid.Add(payment)
	if newDebtPaid.GreaterThan(amountOwed) {
		return Settlement{}, validationErr("amount_paid", "payment exceeds the remaining debt")
	}

	return Settlement{
		DebtPaid:       newDebtPaid,
		ExpensePaid:    expensePaid.Add(payment),
		DebtSettled:    newDebtPaid.Equal(amountOwed),
		ExpenseSettled: expensePaid.Add(payment).Equal(expenseAmount),
	}, nil
}

// ApplyPayment records a payment against a debt and updates the debt's and
// parent expense's paid totals and active flags, all in one transaction.
// The debt and expense rows are locked so concurrent payments serialize and
// the expense total is aggregated from a consistent snapshot.
func ApplyPayment(ctx context.Context, db *sql.DB, in ApplyPaymentInput) (*ApplyPaymentResult, error) {
	if !in.Amount.IsPositive() {
		return nil, validationErr("amount_paid", "payment must be greater than 0")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin transaction", err)
	}

	var expenseID int
	var debtOwed, debtPaid decimal.Decimal
	var debtActive bool
	var expAmount, expPaid decimal.Decimal
	var expActive bool

	err = tx.QueryRowContext(ctx, `
		SELECT expense_id, amount_owed, amount_paid, active
		FROM debts WHERE id = ? FOR UPDATE
	`, in.DebtID).Scan(&expenseID, &debtOwed, &debtPaid, &debtActive)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, storeErr("lock debt", err)
	}
	if !debtActive {
		tx.Rollback()
		return nil, ErrInvalidState
	}

	err = tx.QueryRowContext(ctx, `
		SELECT amount, amount_paid, active
		FROM expenses WHERE id = ? FOR UPDATE
	`, expenseID).Scan(&expAmount, &expPaid, &expActive)
	if err != nil {
		tx.Rollback()
		return nil, storeErr("lock expense", err)
	}
	if !expActive {
		tx.Rollback()
		return nil, ErrInvalidState
	}

	settled, err := SettleTotals(debtPaid, debtOwed, expPaid, expAmount, in.Amount)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	receiptRef := GenerateReference("pay")
	res, err := tx.ExecContext(ctx, `
		INSERT INTO payments (debt_id, amount_paid, method, proof_url, notes, reference_no, receipt_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.DebtID, in.Amount, in.Method, in.ProofURL, nullable(in.Notes), nullable(in.ReferenceNo), receiptRef)
	if err != nil {
		tx.Rollback()
		return nil, storeErr("insert payment", err)
	}
	paymentID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, storeErr("read payment id", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE debts SET amount_paid = ?, active = ? WHERE id = ?
	`, settled.DebtPaid, !settled.DebtSettled, in.DebtID)
	if err != nil {
		tx.Rollback()
		return nil, storeErr("update debt", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE expenses SET amount_paid = ?, active = ? WHERE id = ?
	`, settled.ExpensePaid, !settled.ExpenseSettled, expenseID)
	if err != nil {
		tx.Rollback()
		return nil, storeErr("update expense", err)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, storeErr("commit payment", err)
	}

	return &ApplyPaymentResult{
		PaymentID:      int(paymentID),
		ReceiptRef:     receiptRef,
		DebtSettled:    settled.DebtSettled,
		ExpenseSettled: settled.ExpenseSettled,
	}, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
