package model

import (
	"rozvoz/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID              = "id"
	FieldRestaurantID    = "restaurant_id"
	FieldName            = "name"
	FieldPhone           = "phone"
	FieldNormalizedPhone = "normalized_phone"
	FieldEmail           = "email"
	FieldAddress         = "address"
	FieldNote            = "note"
)

// Guest is a CRM contact scoped to exactly one restaurant. Within a
// restaurant the normalized phone is the natural deduplication key.
type Guest struct {
	ID              string  `db:"id"`
	RestaurantID    string  `db:"restaurant_id"`
	Name            *string `db:"name"`
	Phone           *string `db:"phone"`
	NormalizedPhone *string `db:"normalized_phone"`
	Email           *string `db:"email"`
	Address         *string `db:"address"`
	Note            *string `db:"note"`
	model.Metadata
}
