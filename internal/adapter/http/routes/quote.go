package routes

import (
	"freight_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCalculate        = "/calculate"
	PathChargeableWeight = "/freight/chargeable-weight"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	rg.POST(PathCalculate, h.Calculate)
	rg.POST(PathChargeableWeight, h.ChargeableWeight)
}
