package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rozvoz/config"
	"rozvoz/infras/otel/mocks"
	"rozvoz/internal/domains/pricing/model"
	"rozvoz/internal/domains/pricing/model/dto"
	pricingMocks "rozvoz/internal/domains/pricing/mocks"
	"rozvoz/internal/domains/pricing/service"
	cacheMocks "rozvoz/shared/cache/mocks"
	"rozvoz/shared/failure"
)

const restaurantID = "restaurant-id-1"

func intPtr(v int) *int {
	return &v
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testConfig() model.PriceConfig {
	return model.PriceConfig{
		ID:                "config-id-1",
		RestaurantID:      restaurantID,
		SoupPrice:         price("2.50"),
		Menu1Price:        price("5.00"),
		Menu2Price:        price("3.00"),
		Menu3Price:        price("3.50"),
		Menu4Price:        price("4.00"),
		BusinessMenuPrice: price("6.00"),
		DessertPrice:      price("1.50"),
		PackagingPrice:    price("0.20"),
		SeniorDiscountPct: 10,
	}
}

func TestPriceConfigService_ComputeTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPriceConfig(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	// Config is loaded outside the cache in every case.
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		in        service.ComputeInput
		setupMock func()
		want      string
		wantNull  bool
		wantErr   bool
	}{
		{
			name: "senior order with packaging",
			in: service.ComputeInput{
				Counts: model.ItemCounts{
					Soup:  intPtr(2),
					Menu1: intPtr(1),
				},
				PackagingCount: 2,
				IsSenior:       true,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testConfig(), nil)
			},
			// ((2*2.50 + 1*5.00) + 2*0.20) * 0.90
			want: "9.36",
		},
		{
			name: "same order without senior discount",
			in: service.ComputeInput{
				Counts: model.ItemCounts{
					Soup:  intPtr(2),
					Menu1: intPtr(1),
				},
				PackagingCount: 2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testConfig(), nil)
			},
			want: "10.40",
		},
		{
			name: "senior flag without configured discount",
			in: service.ComputeInput{
				Counts:   model.ItemCounts{Dessert: intPtr(3)},
				IsSenior: true,
			},
			setupMock: func() {
				conf := testConfig()
				conf.SeniorDiscountPct = 0

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(conf, nil)
			},
			want: "4.50",
		},
		{
			name: "all item kinds priced",
			in: service.ComputeInput{
				Counts: model.ItemCounts{
					Soup:         intPtr(1),
					Menu1:        intPtr(1),
					Menu2:        intPtr(1),
					Menu3:        intPtr(1),
					Menu4:        intPtr(1),
					BusinessMenu: intPtr(1),
					Dessert:      intPtr(1),
				},
				PackagingCount: 7,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testConfig(), nil)
			},
			want: "26.90",
		},
		{
			name: "empty order prices to zero",
			in:   service.ComputeInput{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testConfig(), nil)
			},
			want: "0",
		},
		{
			name: "unconfigured restaurant yields null",
			in: service.ComputeInput{
				Counts: model.ItemCounts{Menu1: intPtr(2)},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PriceConfig{}, nil)
			},
			wantNull: true,
		},
		{
			name: "repository error",
			in:   service.ComputeInput{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PriceConfig{}, errors.New("db connection failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.ComputeTotal(context.Background(), restaurantID, tt.in)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.wantNull {
				assert.False(t, got.Valid)

				return
			}

			assert.True(t, got.Valid)
			assert.True(t, got.Decimal.Equal(price(tt.want)),
				"expected %s, got %s", tt.want, got.Decimal.String())
		})
	}
}

func TestPriceConfigService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPriceConfig(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("existing config", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testConfig(), nil)

		res, err := svc.Get(context.Background(), restaurantID)

		assert.NoError(t, err)
		assert.Equal(t, "config-id-1", res.ID)
		assert.Equal(t, restaurantID, res.RestaurantID)
		assert.Equal(t, 10, res.SeniorDiscountPct)
	})

	t.Run("missing config is not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.PriceConfig{}, nil)

		_, err := svc.Get(context.Background(), restaurantID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPriceConfigService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPriceConfig(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.UpsertPriceConfigRequest{
		SoupPrice:         price("5.00"),
		Menu1Price:        price("2.50"),
		PackagingPrice:    price("0.20"),
		SeniorDiscountPct: 10,
	}

	t.Run("first upsert inserts", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, conf model.PriceConfig) error {
				assert.Equal(t, restaurantID, conf.RestaurantID)
				assert.NotEmpty(t, conf.ID)
				assert.True(t, conf.SoupPrice.Equal(price("5.00")))

				return nil
			})

		err := svc.Upsert(context.Background(), restaurantID, req)

		assert.NoError(t, err)
	})

	t.Run("second upsert updates in place", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cols map[string]any, _ any) error {
				// Zero values are written through, not skipped.
				assert.Contains(t, cols, model.FieldMenu2Price)
				assert.Contains(t, cols, model.FieldSeniorDiscountPct)

				return nil
			})

		err := svc.Upsert(context.Background(), restaurantID, req)

		assert.NoError(t, err)
	})

	t.Run("exist check failure", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("db connection failed"))

		err := svc.Upsert(context.Background(), restaurantID, req)

		assert.Error(t, err)
	})
}
