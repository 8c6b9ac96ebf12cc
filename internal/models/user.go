package models

import "database/sql"

type User struct {
	ID         int            `json:"id,omitempty" db:"id,omitempty"`
	FirstName  string         `json:"first_name,omitempty" db:"first_name,omitempty"`
	LastName   string         `json:"last_name,omitempty" db:"last_name,omitempty"`
	NationalID string         `json:"national_id,omitempty" db:"national_id,omitempty"`
	BirthDate  string         `json:"birth_date,omitempty" db:"birth_date,omitempty"`
	Email      string         `json:"email,omitempty" db:"email,omitempty"`
	Phone      string         `json:"phone,omitempty" db:"phone,omitempty"`
	Password   string         `json:"password,omitempty" db:"password,omitempty"`
	CreatedAt  sql.NullString `json:"created_at,omitempty" db:"created_at,omitempty"`
}
