package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Quota is derived from dimension at batch-creation time and is never
// accepted from a client.
type Dwelling struct {
	ID              int             `json:"id,omitempty" db:"id,omitempty"`
	CondominiumID   int             `json:"condominium_id,omitempty" db:"condominium_id,omitempty"`
	Name            string          `json:"name,omitempty" db:"name,omitempty"`
	OwnerNationalID string          `json:"owner_national_id,omitempty" db:"owner_national_id,omitempty"`
	OwnerUserID     sql.NullInt64   `json:"owner_user_id,omitempty" db:"owner_user_id,omitempty"`
	Dimension       decimal.Decimal `json:"dimension,omitempty" db:"dimension,omitempty"`
	Quota           decimal.Decimal `json:"quota,omitempty" db:"quota,omitempty"`
	CreatedAt       sql.NullString  `json:"created_at,omitempty" db:"created_at,omitempty"`
}
