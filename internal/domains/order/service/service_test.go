package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rozvoz/config"
	kafkaMocks "rozvoz/infras/kafka/mocks"
	"rozvoz/infras/otel/mocks"
	guestMocks "rozvoz/internal/domains/guest/service/mocks"
	orderMocks "rozvoz/internal/domains/order/mocks"
	"rozvoz/internal/domains/order/model"
	"rozvoz/internal/domains/order/model/dto"
	"rozvoz/internal/domains/order/service"
	pricingModel "rozvoz/internal/domains/pricing/model"
	pricingService "rozvoz/internal/domains/pricing/service"
	pricingMocks "rozvoz/internal/domains/pricing/service/mocks"
	gDto "rozvoz/shared/dto"
	"rozvoz/shared/failure"
)

// stubCache is a pass-through cache; mutations fire invalidation goroutines
// that may outlive a test, so a plain stub beats a strict mock here.
type stubCache struct{}

func (stubCache) Save(context.Context, string, any, int) error { return nil }

func (stubCache) Get(context.Context, string, any) error { return errors.New("cache miss") }

func (stubCache) Delete(context.Context, string) error { return nil }

func (stubCache) Clear(context.Context, string) error { return nil }

const (
	restaurantID = "restaurant-id-1"
	testDay      = "2026-09-01"
)

type orderFixture struct {
	repo    *orderMocks.MockDeliveryOrder
	guest   *guestMocks.MockGuest
	pricing *pricingMocks.MockPriceConfig
	kafka   *kafkaMocks.MockClient
	svc     service.DeliveryOrder
}

func newFixture(t *testing.T) *orderFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &orderFixture{
		repo:    orderMocks.NewMockDeliveryOrder(ctrl),
		guest:   guestMocks.NewMockGuest(ctrl),
		pricing: pricingMocks.NewMockPriceConfig(ctrl),
		kafka:   kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}

	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.guest, f.pricing, cfg, stubCache{}, f.kafka, mocks.NewOtel())

	return f
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func TestOrderService_Create_AssignsSequentialPositions(t *testing.T) {
	f := newFixture(t)

	guestID := "guest-id-1"
	price := decimal.NewNullDecimal(decimal.RequireFromString("9.36"))

	f.guest.EXPECT().Resolve(gomock.Any(), restaurantID, gomock.Any()).Return(&guestID, nil).Times(3)
	f.pricing.EXPECT().ComputeTotal(gomock.Any(), restaurantID, gomock.Any()).Return(price, nil).Times(3)

	gomock.InOrder(
		f.repo.EXPECT().MaxRoutePosition(gomock.Any(), restaurantID, gomock.Any()).Return(0, nil),
		f.repo.EXPECT().MaxRoutePosition(gomock.Any(), restaurantID, gomock.Any()).Return(1, nil),
		f.repo.EXPECT().MaxRoutePosition(gomock.Any(), restaurantID, gomock.Any()).Return(2, nil),
	)

	var positions []int

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order model.DeliveryOrder) error {
			positions = append(positions, order.RoutePosition)

			assert.False(t, order.Delivered)
			assert.Equal(t, restaurantID, order.RestaurantID)
			assert.Equal(t, &guestID, order.GuestID)

			return nil
		}).
		Times(3)

	req := dto.CreateOrderRequest{
		DeliveryDate: testDay,
		Phone:        strPtr("0919123456"),
		ItemCounts:   pricingModel.ItemCounts{Soup: intPtr(2), Menu1: intPtr(1)},
	}

	for range 3 {
		res, err := f.svc.Create(context.Background(), restaurantID, req)

		assert.NoError(t, err)
		assert.Equal(t, testDay, res.DeliveryDate)
	}

	assert.Equal(t, []int{1, 2, 3}, positions)
}

func TestOrderService_Create_ExplicitPriceSkipsEngine(t *testing.T) {
	f := newFixture(t)

	override := decimal.RequireFromString("12.00")

	f.guest.EXPECT().Resolve(gomock.Any(), restaurantID, gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().MaxRoutePosition(gomock.Any(), restaurantID, gomock.Any()).Return(0, nil)
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order model.DeliveryOrder) error {
			assert.True(t, order.TotalPrice.Valid)
			assert.True(t, order.TotalPrice.Decimal.Equal(override))
			assert.Nil(t, order.GuestID)

			return nil
		})

	req := dto.CreateOrderRequest{
		DeliveryDate: testDay,
		TotalPrice:   &override,
	}

	_, err := f.svc.Create(context.Background(), restaurantID, req)

	assert.NoError(t, err)
}

func TestOrderService_Create_RejectsBadDate(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		date string
	}{
		{name: "missing date", date: ""},
		{name: "unparseable date", date: "1.9.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), restaurantID, dto.CreateOrderRequest{DeliveryDate: tt.date})

			assert.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestOrderService_Update_NoteOnlyLeavesPriceAlone(t *testing.T) {
	f := newFixture(t)

	existing := existingOrder()

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(existing, nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, columns map[string]any, _ any) error {
			assert.Contains(t, columns, model.FieldNote)
			assert.NotContains(t, columns, model.FieldTotalPrice)
			assert.NotContains(t, columns, model.FieldRoutePosition)

			return nil
		})

	res, err := f.svc.Update(context.Background(), restaurantID, existing.ID, dto.UpdateOrderRequest{
		Note: strPtr("ring the bell twice"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "ring the bell twice", *res.Note)
	assert.Equal(t, existing.RoutePosition, res.RoutePosition)
	assert.True(t, res.TotalPrice.Equal(existing.TotalPrice.Decimal))
}

func TestOrderService_Update_RepricesFromMergedView(t *testing.T) {
	f := newFixture(t)

	existing := existingOrder()
	repriced := decimal.NewNullDecimal(decimal.RequireFromString("15.20"))

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(existing, nil)

	f.pricing.EXPECT().
		ComputeTotal(gomock.Any(), restaurantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in pricingService.ComputeInput) (decimal.NullDecimal, error) {
			// The new soup count combines with the stored menu1 count.
			assert.Equal(t, 5, pricingModel.CountOf(in.Counts.Soup))
			assert.Equal(t, 1, pricingModel.CountOf(in.Counts.Menu1))
			assert.Equal(t, existing.PackagingCount, in.PackagingCount)

			return repriced, nil
		})

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, columns map[string]any, _ any) error {
			assert.Contains(t, columns, model.FieldTotalPrice)

			return nil
		})

	res, err := f.svc.Update(context.Background(), restaurantID, existing.ID, dto.UpdateOrderRequest{
		ItemCounts: pricingModel.ItemCounts{Soup: intPtr(5)},
	})

	assert.NoError(t, err)
	assert.True(t, res.TotalPrice.Equal(repriced.Decimal))
}

func TestOrderService_Update_CrossTenantReadsAsNotFound(t *testing.T) {
	f := newFixture(t)

	// A foreign restaurant's order never matches the scoped filter.
	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.DeliveryOrder{}, nil)

	_, err := f.svc.Update(context.Background(), restaurantID, "order-of-another-restaurant", dto.UpdateOrderRequest{
		Note: strPtr("nope"),
	})

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestOrderService_ToggleDelivered_IsReversible(t *testing.T) {
	f := newFixture(t)

	existing := existingOrder()

	for _, delivered := range []bool{true, false} {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, columns map[string]any, _ any) error {
				assert.Equal(t, delivered, columns[model.FieldDelivered])
				assert.NotContains(t, columns, model.FieldTotalPrice)
				assert.NotContains(t, columns, model.FieldRoutePosition)

				return nil
			})

		err := f.svc.ToggleDelivered(context.Background(), restaurantID, existing.ID, delivered)

		assert.NoError(t, err)
	}
}

func TestOrderService_ToggleDelivered_NotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.DeliveryOrder{}, nil)

	err := f.svc.ToggleDelivered(context.Background(), restaurantID, "missing-id", true)

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestOrderService_Reorder_ReverseYieldsReversedPositions(t *testing.T) {
	f := newFixture(t)

	var mu sync.Mutex

	positions := map[string]int{}

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, columns map[string]any, filter gDto.FilterGroup) error {
			mu.Lock()
			defer mu.Unlock()

			positions[filterOrderID(t, filter)], _ = columns[model.FieldRoutePosition].(int)

			return nil
		}).
		Times(3)

	err := f.svc.Reorder(context.Background(), restaurantID, dto.ReorderRequest{
		OrderIDs: []string{"order-3", "order-2", "order-1"},
	})

	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"order-3": 1, "order-2": 2, "order-1": 3}, positions)
}

func TestOrderService_Reorder_EmptyListIsClientError(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Reorder(context.Background(), restaurantID, dto.ReorderRequest{})

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestOrderService_ListByDay(t *testing.T) {
	f := newFixture(t)

	day, _ := time.Parse(time.DateOnly, testDay)
	orders := []model.DeliveryOrder{
		orderWithPosition(day, 1, "3.00"),
		orderWithPosition(day, 2, "5.50"),
	}

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.DeliveryOrder, error) {
			assert.Contains(t, params.SortBy, model.FieldRoutePosition)
			assert.Contains(t, params.SortBy, model.FieldCreatedAt)

			return orders, nil
		})

	res, err := f.svc.ListByDay(context.Background(), restaurantID, testDay)

	assert.NoError(t, err)
	assert.Len(t, res.Orders, 2)
	assert.Equal(t, 2, res.Summary.OrderCount)
	assert.True(t, res.Summary.TotalRevenue.Equal(decimal.RequireFromString("8.50")))
}

func TestOrderService_ListByDay_RejectsBadDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListByDay(context.Background(), restaurantID, "not-a-date")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func existingOrder() model.DeliveryOrder {
	day, _ := time.Parse(time.DateOnly, testDay)

	return model.DeliveryOrder{
		ID:             "order-id-1",
		RestaurantID:   restaurantID,
		Phone:          strPtr("919123456"),
		ItemCounts:     pricingModel.ItemCounts{Soup: intPtr(2), Menu1: intPtr(1)},
		PackagingCount: 2,
		TotalPrice:     decimal.NewNullDecimal(decimal.RequireFromString("9.36")),
		DeliveryDate:   day,
		RoutePosition:  4,
		Delivered:      false,
	}
}

// filterOrderID digs the order id out of an (id AND restaurant_id) filter.
func filterOrderID(t *testing.T, filter gDto.FilterGroup) string {
	t.Helper()

	for _, raw := range filter.Filters {
		f, ok := raw.(gDto.Filter)
		if ok && f.Field == model.FieldID {
			id, _ := f.Value.(string)

			return id
		}
	}

	require.FailNow(t, "filter carries no order id")

	return ""
}

func orderWithPosition(day time.Time, position int, total string) model.DeliveryOrder {
	return model.DeliveryOrder{
		ID:            "order-id-" + decimal.NewFromInt(int64(position)).String(),
		RestaurantID:  restaurantID,
		DeliveryDate:  day,
		RoutePosition: position,
		TotalPrice:    decimal.NewNullDecimal(decimal.RequireFromString(total)),
	}
}
