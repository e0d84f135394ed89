package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rozvoz/internal/domains/order/model"
	pricingModel "rozvoz/internal/domains/pricing/model"
	gDto "rozvoz/shared/dto"
	gModel "rozvoz/shared/model"
	"rozvoz/shared/timezone"
)

type CreateOrderRequest struct {
	DeliveryDate string  `json:"delivery_date" validate:"required"`
	GuestID      *string `json:"guest_id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Place        *string `json:"place,omitempty"`
	Note         *string `json:"note,omitempty"`
	pricingModel.ItemCounts
	PackagingCount int              `json:"packaging_count" validate:"gte=0"`
	IsSenior       bool             `json:"is_senior"`
	TotalPrice     *decimal.Decimal `json:"total_price,omitempty"`
}

func (r *CreateOrderRequest) ToModel(restaurantID string, guestID *string, deliveryDate time.Time, routePosition int, totalPrice decimal.NullDecimal, user string) model.DeliveryOrder {
	return model.DeliveryOrder{
		ID:             uuid.NewString(),
		RestaurantID:   restaurantID,
		GuestID:        guestID,
		Phone:          r.Phone,
		Address:        r.Address,
		Place:          r.Place,
		Note:           r.Note,
		ItemCounts:     r.ItemCounts,
		PackagingCount: r.PackagingCount,
		IsSenior:       r.IsSenior,
		TotalPrice:     totalPrice,
		DeliveryDate:   deliveryDate,
		RoutePosition:  routePosition,
		Delivered:      false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateOrderRequest struct {
	GuestID *string `json:"guest_id,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Place   *string `json:"place,omitempty"`
	Note    *string `json:"note,omitempty"`
	pricingModel.ItemCounts
	PackagingCount *int             `json:"packaging_count,omitempty" validate:"omitempty,gte=0"`
	IsSenior       *bool            `json:"is_senior,omitempty"`
	TotalPrice     *decimal.Decimal `json:"total_price,omitempty"`
	RoutePosition  *int             `json:"route_position,omitempty" validate:"omitempty,gte=1"`
	Delivered      *bool            `json:"delivered,omitempty"`
}

// TouchesPricing reports whether the request carries any pricing input. A
// request that carries none must leave the stored total untouched.
func (r *UpdateOrderRequest) TouchesPricing() bool {
	return r.Soup != nil ||
		r.Menu1 != nil ||
		r.Menu2 != nil ||
		r.Menu3 != nil ||
		r.Menu4 != nil ||
		r.BusinessMenu != nil ||
		r.Dessert != nil ||
		r.PackagingCount != nil ||
		r.IsSenior != nil
}

type ToggleDeliveredRequest struct {
	Delivered *bool `json:"delivered" validate:"required"`
}

type ReorderRequest struct {
	OrderIDs []string `json:"order_ids" validate:"required,min=1,dive,uuid"`
}

type OrderResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	GuestID      *string `json:"guest_id,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Place        *string `json:"place,omitempty"`
	Note         *string `json:"note,omitempty"`
	pricingModel.ItemCounts
	PackagingCount int              `json:"packaging_count"`
	IsSenior       bool             `json:"is_senior"`
	TotalPrice     *decimal.Decimal `json:"total_price"`
	DeliveryDate   string           `json:"delivery_date"`
	RoutePosition  int              `json:"route_position"`
	Delivered      bool             `json:"delivered"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(order model.DeliveryOrder) {
	r.ID = order.ID
	r.RestaurantID = order.RestaurantID
	r.GuestID = order.GuestID
	r.Phone = order.Phone
	r.Address = order.Address
	r.Place = order.Place
	r.Note = order.Note
	r.ItemCounts = order.ItemCounts
	r.PackagingCount = order.PackagingCount
	r.IsSenior = order.IsSenior
	r.DeliveryDate = order.DeliveryDate.Format(time.DateOnly)
	r.RoutePosition = order.RoutePosition
	r.Delivered = order.Delivered
	r.Metadata.FromModel(order.Metadata)

	if order.TotalPrice.Valid {
		price := order.TotalPrice.Decimal
		r.TotalPrice = &price
	}
}

// DaySummary is a single-pass reduction over one day's orders. It depends
// only on the multiset of orders, never on their sequence.
type DaySummary struct {
	OrderCount     int             `json:"order_count"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	SoupCount      int             `json:"soup_count"`
	Menu1Count     int             `json:"menu1_count"`
	Menu2Count     int             `json:"menu2_count"`
	Menu3Count     int             `json:"menu3_count"`
	Menu4Count     int             `json:"menu4_count"`
	BusinessMenus  int             `json:"business_menu_count"`
	DessertCount   int             `json:"dessert_count"`
	PackagingCount int             `json:"packaging_count"`
	SeniorCount    int             `json:"senior_count"`
}

func (s *DaySummary) FromModels(orders []model.DeliveryOrder) {
	s.TotalRevenue = decimal.Zero

	for _, order := range orders {
		s.OrderCount++
		s.SoupCount += pricingModel.CountOf(order.Soup)
		s.Menu1Count += pricingModel.CountOf(order.Menu1)
		s.Menu2Count += pricingModel.CountOf(order.Menu2)
		s.Menu3Count += pricingModel.CountOf(order.Menu3)
		s.Menu4Count += pricingModel.CountOf(order.Menu4)
		s.BusinessMenus += pricingModel.CountOf(order.BusinessMenu)
		s.DessertCount += pricingModel.CountOf(order.Dessert)
		s.PackagingCount += order.PackagingCount

		if order.IsSenior {
			s.SeniorCount++
		}

		if order.TotalPrice.Valid {
			s.TotalRevenue = s.TotalRevenue.Add(order.TotalPrice.Decimal)
		}
	}
}

type ListOrdersResponse struct {
	Orders  []OrderResponse `json:"orders"`
	Summary DaySummary      `json:"summary"`
}

func (r *ListOrdersResponse) FromModels(orders []model.DeliveryOrder) {
	r.Orders = make([]OrderResponse, 0, len(orders))

	for _, order := range orders {
		var res OrderResponse

		res.FromModel(order)
		r.Orders = append(r.Orders, res)
	}

	r.Summary.FromModels(orders)
}
