package models

type PaymentMethod struct {
	ID            int    `json:"id,omitempty" db:"id,omitempty"`
	CondominiumID int    `json:"condominium_id,omitempty" db:"condominium_id,omitempty"`
	Kind          string `json:"kind,omitempty" db:"kind,omitempty"`
}
