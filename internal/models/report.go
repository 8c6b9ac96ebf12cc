package models

import "database/sql"

type Report struct {
	ID            int            `json:"id,omitempty" db:"id,omitempty"`
	CondominiumID int            `json:"condominium_id,omitempty" db:"condominium_id,omitempty"`
	UserID        int            `json:"user_id,omitempty" db:"user_id,omitempty"`
	Subject       string         `json:"subject,omitempty" db:"subject,omitempty"`
	Description   string         `json:"description,omitempty" db:"description,omitempty"`
	CreatedAt     sql.NullString `json:"created_at,omitempty" db:"created_at,omitempty"`
}
