package entity

import (
	"github.com/google/uuid"
)

// Rating is a buyer's 1-5 score for a product, written once.
type Rating struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	ProductID uuid.UUID `db:"product_id"`
	Rating    int       `db:"rating"`
}
