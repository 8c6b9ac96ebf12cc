package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Payments are append-only: never edited or deleted after insert.
type Payment struct {
	ID          int             `json:"id,omitempty" db:"id,omitempty"`
	DebtID      int             `json:"debt_id,omitempty" db:"debt_id,omitempty"`
	AmountPaid  decimal.Decimal `json:"amount_paid,omitempty" db:"amount_paid,omitempty"`
	Method      string          `json:"method,omitempty" db:"method,omitempty"`
	ProofURL    string          `json:"proof_url,omitempty" db:"proof_url,omitempty"`
	Notes       sql.NullString  `json:"notes,omitempty" db:"notes,omitempty"`
	ReferenceNo sql.NullString  `json:"reference_no,omitempty" db:"reference_no,omitempty"`
	ReceiptRef  string          `json:"receipt_ref,omitempty" db:"receipt_ref,omitempty"`
	PaidAt      sql.NullString  `json:"paid_at,omitempty" db:"paid_at,omitempty"`
}
