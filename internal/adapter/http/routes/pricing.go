package routes

import (
	"freight_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingConfigHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/config", h.GetConfig)
		pricing.GET("/config/versions/:version", h.GetVersion)
		pricing.PUT("/draft", h.SaveDraft)
		pricing.POST("/validate", h.Validate)
		pricing.POST("/publish", h.Publish)
		pricing.GET("/preview/:mode", h.Preview)

		// Stateless helpers: they return the edited document, nothing is stored.
		pricing.POST("/draft/modes", h.CreateMode)
		pricing.POST("/draft/modes/:key/duplicate", h.DuplicateMode)
		pricing.POST("/draft/modes/:key/delete", h.DeleteMode)
	}
}
