package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple is the id/created_at pair shared by insert-only rows.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
