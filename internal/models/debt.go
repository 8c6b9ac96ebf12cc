package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// AmountOwed is fixed when the parent expense is allocated and never
// mutated afterward.
type Debt struct {
	ID              int             `json:"id,omitempty" db:"id,omitempty"`
	ExpenseID       int             `json:"expense_id,omitempty" db:"expense_id,omitempty"`
	DwellingID      int             `json:"dwelling_id,omitempty" db:"dwelling_id,omitempty"`
	OwnerUserID     sql.NullInt64   `json:"owner_user_id,omitempty" db:"owner_user_id,omitempty"`
	OwnerNationalID string          `json:"owner_national_id,omitempty" db:"owner_national_id,omitempty"`
	AmountOwed      decimal.Decimal `json:"amount_owed,omitempty" db:"amount_owed,omitempty"`
	AmountPaid      decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	Active          bool            `json:"active" db:"active"`
	CreatedAt       sql.NullString  `json:"created_at,omitempty" db:"created_at,omitempty"`
}
