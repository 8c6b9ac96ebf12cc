package models

import "database/sql"

type Announcement struct {
	ID            int            `json:"id,omitempty" db:"id,omitempty"`
	CondominiumID int            `json:"condominium_id,omitempty" db:"condominium_id,omitempty"`
	Title         string         `json:"title,omitempty" db:"title,omitempty"`
	Content       string         `json:"content,omitempty" db:"content,omitempty"`
	PublishedAt   sql.NullString `json:"published_at,omitempty" db:"published_at,omitempty"`
}
