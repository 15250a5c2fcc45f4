package handlers

import (
	"net/http"
	"testing"

	"freight_pricing/internal/adapter/http/handlers/mocks"
	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
	"freight_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc, zap.NewNop())

	r := gin.New()
	r.POST("/v1/calculate", h.Calculate)
	r.POST("/v1/freight/chargeable-weight", h.ChargeableWeight)
	return r, uc
}

const calculateBody = `{
	"pickup_coordinate": [59.33, 18.07], "pickup_country": "se", "pickup_postal_prefix": "11",
	"delivery_coordinate": [45.46, 9.19], "delivery_country": "IT", "delivery_postal_prefix": "20",
	"chargeable_weight": 386
}`

func TestQuoteHandler_Calculate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/calculate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing countries", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/calculate", `{"chargeable_weight": 100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("nothing published", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrConfigNotPublished)
		w := doJSON(r, http.MethodPost, "/v1/calculate", calculateBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("rejected by usecase", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidQuoteRequest)
		w := doJSON(r, http.MethodPost, "/v1/calculate", calculateBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		want := entities.QuoteRequest{
			PickupCoordinate:     entities.Coordinate{59.33, 18.07},
			PickupCountry:        "SE",
			PickupPostalPrefix:   "11",
			DeliveryCoordinate:   entities.Coordinate{45.46, 9.19},
			DeliveryCountry:      "IT",
			DeliveryPostalPrefix: "20",
			ChargeableWeightKg:   386,
		}
		uc.EXPECT().Calculate(gomock.Any(), want).Return(map[string]entities.ModeQuote{
			entities.ModeRoadFreight: {
				Mode: entities.ModeRoadFreight, Available: true, TotalPriceEUR: 138.6,
				EarliestPickupDate: "2026-10-19", TransitTimeDays: [2]int{4, 5}, CO2EmissionsGrams: 48650,
				Description: "Groupage",
			},
			entities.ModeOceanFreight: {Mode: entities.ModeOceanFreight, Reason: pricing.ReasonZoneNotServed},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/calculate", calculateBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		road := body[entities.ModeRoadFreight].(map[string]any)
		if road["available"] != true || road["total_price_eur"].(float64) != 138.6 || road["earliest_pickup_date"] != "2026-10-19" {
			t.Fatalf("unexpected road quote: %v", road)
		}
		days := road["transit_time_days"].([]any)
		if len(days) != 2 || days[0].(float64) != 4 || days[1].(float64) != 5 {
			t.Fatalf("unexpected transit days: %v", days)
		}
		ocean := body[entities.ModeOceanFreight].(map[string]any)
		if ocean["available"] != false || ocean["reason"] != pricing.ReasonZoneNotServed {
			t.Fatalf("unexpected ocean quote: %v", ocean)
		}
	})
}

func TestQuoteHandler_ChargeableWeight(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/freight/chargeable-weight", "[")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("garbled values are coerced", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Summarize(gomock.Any(), 300.0).DoAndReturn(
			func(goods []entities.GoodsLine, priced float64) pricing.GoodsSummary {
				if len(goods) != 2 {
					t.Fatalf("expected 2 lines, got %d", len(goods))
				}
				if goods[0].WeightKg != 150 || goods[0].Quantity != 2 {
					t.Fatalf("unexpected first line: %+v", goods[0])
				}
				if goods[1].WeightKg != 0 || goods[1].Quantity != 0 {
					t.Fatalf("unexpected second line: %+v", goods[1])
				}
				return pricing.Summarize(goods, priced)
			})

		body := `{"goods":[{"weight":"150","quantity":"2"},{"weight":"abc","quantity":"x"}],"priced_chargeable_weight":300}`
		w := doJSON(r, http.MethodPost, "/v1/freight/chargeable-weight", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		res := decodeBody(t, w)
		if res["chargeable_weight_kg"].(float64) != 300 || res["total_pieces"].(float64) != 2 {
			t.Fatalf("unexpected summary: %v", res)
		}
		if res["exceeds_chargeable"] != false {
			t.Fatalf("unexpected exceeds flag: %v", res)
		}
	})

	t.Run("zero quantity counts one unit of actual weight", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Summarize(gomock.Any(), 100.0).DoAndReturn(
			func(goods []entities.GoodsLine, priced float64) pricing.GoodsSummary {
				return pricing.Summarize(goods, priced)
			})

		body := `{"goods":[{"weight":"120","quantity":"0"}],"priced_chargeable_weight":100}`
		w := doJSON(r, http.MethodPost, "/v1/freight/chargeable-weight", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		res := decodeBody(t, w)
		if res["total_weight_kg"].(float64) != 120 || res["total_pieces"].(float64) != 0 {
			t.Fatalf("unexpected summary: %v", res)
		}
		if res["exceeds_chargeable"] != true {
			t.Fatalf("expected exceeds flag for 120 > 100: %v", res)
		}
	})
}
