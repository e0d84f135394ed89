package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rozvoz/internal/domains/order/model"
	"rozvoz/internal/domains/order/model/dto"
	pricingModel "rozvoz/internal/domains/pricing/model"
)

func intPtr(v int) *int { return &v }

func sampleOrders() []model.DeliveryOrder {
	day, _ := time.Parse(time.DateOnly, "2026-09-01")

	return []model.DeliveryOrder{
		{
			ID:             "order-1",
			DeliveryDate:   day,
			ItemCounts:     pricingModel.ItemCounts{Soup: intPtr(2), Menu1: intPtr(1)},
			PackagingCount: 2,
			IsSenior:       true,
			TotalPrice:     decimal.NewNullDecimal(decimal.RequireFromString("9.36")),
		},
		{
			ID:           "order-2",
			DeliveryDate: day,
			ItemCounts:   pricingModel.ItemCounts{Menu2: intPtr(3), Dessert: intPtr(1)},
			TotalPrice:   decimal.NewNullDecimal(decimal.RequireFromString("10.50")),
		},
		{
			ID:           "order-3",
			DeliveryDate: day,
			ItemCounts:   pricingModel.ItemCounts{Soup: intPtr(1)},
			// Unpriced order: contributes counts but no revenue.
		},
	}
}

func TestDaySummary_FromModels(t *testing.T) {
	var summary dto.DaySummary

	summary.FromModels(sampleOrders())

	assert.Equal(t, 3, summary.OrderCount)
	assert.Equal(t, 3, summary.SoupCount)
	assert.Equal(t, 1, summary.Menu1Count)
	assert.Equal(t, 3, summary.Menu2Count)
	assert.Equal(t, 1, summary.DessertCount)
	assert.Equal(t, 2, summary.PackagingCount)
	assert.Equal(t, 1, summary.SeniorCount)
	assert.True(t, summary.TotalRevenue.Equal(decimal.RequireFromString("19.86")))
}

func TestDaySummary_IsOrderIndependent(t *testing.T) {
	orders := sampleOrders()
	reversed := make([]model.DeliveryOrder, 0, len(orders))

	for i := len(orders) - 1; i >= 0; i-- {
		reversed = append(reversed, orders[i])
	}

	var forward, backward dto.DaySummary

	forward.FromModels(orders)
	backward.FromModels(reversed)

	assert.Equal(t, forward, backward)
}

func TestDaySummary_EmptyDay(t *testing.T) {
	var summary dto.DaySummary

	summary.FromModels(nil)

	assert.Equal(t, 0, summary.OrderCount)
	assert.True(t, summary.TotalRevenue.IsZero())
}

func TestOrderResponse_FromModel(t *testing.T) {
	orders := sampleOrders()

	var priced, unpriced dto.OrderResponse

	priced.FromModel(orders[0])
	unpriced.FromModel(orders[2])

	assert.NotNil(t, priced.TotalPrice)
	assert.True(t, priced.TotalPrice.Equal(decimal.RequireFromString("9.36")))
	assert.Equal(t, "2026-09-01", priced.DeliveryDate)
	assert.Nil(t, unpriced.TotalPrice)
}
