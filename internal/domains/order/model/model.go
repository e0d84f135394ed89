package model

import (
	"time"

	"github.com/shopspring/decimal"

	pricingModel "rozvoz/internal/domains/pricing/model"
	"rozvoz/shared/model"
)

const (
	TableName  = "delivery_orders"
	EntityName = "delivery_order"

	FieldID             = "id"
	FieldRestaurantID   = "restaurant_id"
	FieldGuestID        = "guest_id"
	FieldPhone          = "phone"
	FieldAddress        = "address"
	FieldPlace          = "place"
	FieldNote           = "note"
	FieldPackagingCount = "packaging_count"
	FieldIsSenior       = "is_senior"
	FieldTotalPrice     = "total_price"
	FieldDeliveryDate   = "delivery_date"
	FieldRoutePosition  = "route_position"
	FieldDelivered      = "delivered"
	FieldCreatedAt      = "created_at"
)

// DeliveryOrder is one delivery to fulfill. The contact columns are a
// snapshot taken at order time so later guest edits never rewrite history.
type DeliveryOrder struct {
	ID           string  `db:"id"`
	RestaurantID string  `db:"restaurant_id"`
	GuestID      *string `db:"guest_id"`
	Phone        *string `db:"phone"`
	Address      *string `db:"address"`
	Place        *string `db:"place"`
	Note         *string `db:"note"`
	pricingModel.ItemCounts
	PackagingCount int                 `db:"packaging_count"`
	IsSenior       bool                `db:"is_senior"`
	TotalPrice     decimal.NullDecimal `db:"total_price"`
	DeliveryDate   time.Time           `db:"delivery_date"`
	RoutePosition  int                 `db:"route_position"`
	Delivered      bool                `db:"delivered"`
	model.Metadata
}
