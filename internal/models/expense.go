package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

const (
	ExpenseKindCommon        = "Common"
	ExpenseKindExtraordinary = "Extraordinary"
)

// Active mirrors amount_paid < amount; both are maintained inside the same
// transaction that records a payment.
type Expense struct {
	ID            int             `json:"id,omitempty" db:"id,omitempty"`
	CondominiumID int             `json:"condominium_id,omitempty" db:"condominium_id,omitempty"`
	Amount        decimal.Decimal `json:"amount,omitempty" db:"amount,omitempty"`
	Concept       string          `json:"concept,omitempty" db:"concept,omitempty"`
	DueDate       string          `json:"due_date,omitempty" db:"due_date,omitempty"`
	Kind          string          `json:"kind,omitempty" db:"kind,omitempty"`
	AmountPaid    decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	Active        bool            `json:"active" db:"active"`
	CreatedAt     sql.NullString  `json:"created_at,omitempty" db:"created_at,omitempty"`
}
