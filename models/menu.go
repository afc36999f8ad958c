package models

import (
	"time"

	"github.com/google/uuid"
)

type MenuItem struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Price       float64    `db:"price" json:"price"`
	Category    string     `db:"category" json:"category"`
	Image       *string    `db:"image" json:"image,omitempty"`
	IsAvailable bool       `db:"is_available" json:"is_available"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ArchivedAt  *time.Time `db:"archived_at" json:"archived_at,omitempty"`
}
