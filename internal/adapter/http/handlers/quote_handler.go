package handlers

import (
	"errors"
	"net/http"

	request "freight_pricing/internal/adapter/http/dto/request"
	response "freight_pricing/internal/adapter/http/dto/response"
	"freight_pricing/internal/usecase"
	"freight_pricing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidGoodsPayload = pkg.NewDomainErrorSimple("INVALID_GOODS_INPUT", "Invalid goods payload", http.StatusBadRequest)
)

// QuoteHandler prices shipments for the booking form.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	logger  *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, logger: logger}
}

// Calculate godoc
// @Summary      Quote every transport mode
// @Description  Prices the shipment against the published configuration. Modes that cannot serve it come back with available=false.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.CalculateRequest  true  "Lane and chargeable weight"
// @Success      200   {object}  map[string]response.ModeQuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /calculate [post]
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quotes, err := h.usecase.Calculate(c.Request.Context(), payload.ToQuoteRequest())
	if err != nil {
		appErr := mapQuoteError(err)
		if appErr.HTTPStatus == http.StatusInternalServerError {
			h.logger.Error("[quote][handler] calculate failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// ChargeableWeight godoc
// @Summary      Goods summary
// @Description  Chargeable weight, actual weight and piece count of a goods table. Non-numeric values count as 0.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChargeableWeightRequest  true  "Goods lines"
// @Success      200   {object}  response.GoodsSummaryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /freight/chargeable-weight [post]
func (h *QuoteHandler) ChargeableWeight(c *gin.Context) {
	var payload request.ChargeableWeightRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGoodsPayload.HTTPStatus, errInvalidGoodsPayload.ToHTTPError())
		return
	}

	summary := h.usecase.Summarize(payload.ResolveGoods(), payload.ResolvePricedWeight())
	c.JSON(http.StatusOK, response.FromGoodsSummary(summary))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigNotPublished):
		return pkg.NewDomainErrorSimple("CONFIG_NOT_PUBLISHED", "No pricing configuration has been published", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
