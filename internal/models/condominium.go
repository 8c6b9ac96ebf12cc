package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type Condominium struct {
	ID               int             `json:"id,omitempty" db:"id,omitempty"`
	AdminUserID      int             `json:"admin_user_id,omitempty" db:"admin_user_id,omitempty"`
	Name             string          `json:"name,omitempty" db:"name,omitempty"`
	Kind             string          `json:"kind,omitempty" db:"kind,omitempty"`
	Address          string          `json:"address,omitempty" db:"address,omitempty"`
	ActuarialPageURL string          `json:"actuarial_page_url,omitempty" db:"actuarial_page_url,omitempty"`
	Reserve          decimal.Decimal `json:"reserve,omitempty" db:"reserve,omitempty"`
	PlanPaid         bool            `json:"plan_paid,omitempty" db:"plan_paid,omitempty"`
	CreatedAt        sql.NullString  `json:"created_at,omitempty" db:"created_at,omitempty"`
}
