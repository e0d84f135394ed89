package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rozvoz/internal/domains/pricing/model"
	gDto "rozvoz/shared/dto"
	gModel "rozvoz/shared/model"
	"rozvoz/shared/timezone"
)

type UpsertPriceConfigRequest struct {
	SoupPrice         decimal.Decimal `json:"soup_price"`
	Menu1Price        decimal.Decimal `json:"menu1_price"`
	Menu2Price        decimal.Decimal `json:"menu2_price"`
	Menu3Price        decimal.Decimal `json:"menu3_price"`
	Menu4Price        decimal.Decimal `json:"menu4_price"`
	BusinessMenuPrice decimal.Decimal `json:"business_menu_price"`
	DessertPrice      decimal.Decimal `json:"dessert_price"`
	PackagingPrice    decimal.Decimal `json:"packaging_price"`
	SeniorDiscountPct int             `json:"senior_discount_percent" validate:"gte=0,lte=100"`
}

func (r *UpsertPriceConfigRequest) ToModel(restaurantID, user string) model.PriceConfig {
	return model.PriceConfig{
		ID:                uuid.NewString(),
		RestaurantID:      restaurantID,
		SoupPrice:         r.SoupPrice,
		Menu1Price:        r.Menu1Price,
		Menu2Price:        r.Menu2Price,
		Menu3Price:        r.Menu3Price,
		Menu4Price:        r.Menu4Price,
		BusinessMenuPrice: r.BusinessMenuPrice,
		DessertPrice:      r.DessertPrice,
		PackagingPrice:    r.PackagingPrice,
		SeniorDiscountPct: r.SeniorDiscountPct,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PriceConfigResponse struct {
	ID                string          `json:"id"`
	RestaurantID      string          `json:"restaurant_id"`
	SoupPrice         decimal.Decimal `json:"soup_price"`
	Menu1Price        decimal.Decimal `json:"menu1_price"`
	Menu2Price        decimal.Decimal `json:"menu2_price"`
	Menu3Price        decimal.Decimal `json:"menu3_price"`
	Menu4Price        decimal.Decimal `json:"menu4_price"`
	BusinessMenuPrice decimal.Decimal `json:"business_menu_price"`
	DessertPrice      decimal.Decimal `json:"dessert_price"`
	PackagingPrice    decimal.Decimal `json:"packaging_price"`
	SeniorDiscountPct int             `json:"senior_discount_percent"`
	gDto.Metadata
}

func (r *PriceConfigResponse) FromModel(model model.PriceConfig) {
	r.ID = model.ID
	r.RestaurantID = model.RestaurantID
	r.SoupPrice = model.SoupPrice
	r.Menu1Price = model.Menu1Price
	r.Menu2Price = model.Menu2Price
	r.Menu3Price = model.Menu3Price
	r.Menu4Price = model.Menu4Price
	r.BusinessMenuPrice = model.BusinessMenuPrice
	r.DessertPrice = model.DessertPrice
	r.PackagingPrice = model.PackagingPrice
	r.SeniorDiscountPct = model.SeniorDiscountPct
	r.Metadata.FromModel(model.Metadata)
}
