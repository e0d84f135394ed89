package model

import (
	"github.com/shopspring/decimal"

	"rozvoz/shared/model"
)

const (
	TableName  = "delivery_price_configs"
	EntityName = "price_config"

	FieldID                = "id"
	FieldRestaurantID      = "restaurant_id"
	FieldSoupPrice         = "soup_price"
	FieldMenu1Price        = "menu1_price"
	FieldMenu2Price        = "menu2_price"
	FieldMenu3Price        = "menu3_price"
	FieldMenu4Price        = "menu4_price"
	FieldBusinessMenuPrice = "business_menu_price"
	FieldDessertPrice      = "dessert_price"
	FieldPackagingPrice    = "packaging_price"
	FieldSeniorDiscountPct = "senior_discount_percent"
)

// PriceConfig is a restaurant's delivery rate table. At most one row per
// restaurant is consulted; unset prices behave as zero.
type PriceConfig struct {
	ID                string          `db:"id"`
	RestaurantID      string          `db:"restaurant_id"`
	SoupPrice         decimal.Decimal `db:"soup_price"`
	Menu1Price        decimal.Decimal `db:"menu1_price"`
	Menu2Price        decimal.Decimal `db:"menu2_price"`
	Menu3Price        decimal.Decimal `db:"menu3_price"`
	Menu4Price        decimal.Decimal `db:"menu4_price"`
	BusinessMenuPrice decimal.Decimal `db:"business_menu_price"`
	DessertPrice      decimal.Decimal `db:"dessert_price"`
	PackagingPrice    decimal.Decimal `db:"packaging_price"`
	SeniorDiscountPct int             `db:"senior_discount_percent"`
	model.Metadata
}
