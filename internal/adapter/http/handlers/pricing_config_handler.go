package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"freight_pricing/internal/adapter/export"
	request "freight_pricing/internal/adapter/http/dto/request"
	response "freight_pricing/internal/adapter/http/dto/response"
	"freight_pricing/internal/domain/pricing"
	"freight_pricing/internal/usecase"
	"freight_pricing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid pricing configuration payload", http.StatusBadRequest)
)

// PricingConfigHandler serves the pricing admin: the published snapshot, the
// working draft, validation, publishing and the per-mode editing helpers.
type PricingConfigHandler struct {
	usecase usecase.IPricingConfigUseCase
	logger  *zap.Logger
}

func NewPricingConfigHandler(uc usecase.IPricingConfigUseCase, logger *zap.Logger) *PricingConfigHandler {
	return &PricingConfigHandler{usecase: uc, logger: logger}
}

// GetConfig godoc
// @Summary      Load the pricing configuration
// @Description  Returns the active published snapshot and the saved draft (null when none).
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  response.LoadConfigResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pricing/config [get]
func (h *PricingConfigHandler) GetConfig(c *gin.Context) {
	loaded, err := h.usecase.LoadConfig(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLoadedConfig(loaded))
}

// SaveDraft godoc
// @Summary      Save the draft
// @Description  Stores the document verbatim. Drafts are not validated; only malformed zone or balance-factor text is rejected.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        draft  body      request.DraftRequest  true  "Pricing configuration keyed by mode"
// @Success      200    {object}  response.SaveDraftResponse
// @Failure      400    {object}  response.SaveDraftResponse
// @Failure      500    {object}  pkg.HTTPError
// @Router       /pricing/draft [put]
func (h *PricingConfigHandler) SaveDraft(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	cfg, err := payload.ToConfiguration()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.SaveDraftResponse{OK: false, Errors: request.ErrorMessages(err)})
		return
	}

	draft, err := h.usecase.SaveDraft(c.Request.Context(), cfg)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSavedDraft(draft))
}

// Validate godoc
// @Summary      Validate a configuration
// @Description  Pure check of a candidate configuration. Nothing is stored.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      request.ValidateRequest  true  "Candidate configuration"
// @Success      200   {object}  pricing.ValidationResult
// @Failure      400   {object}  pkg.HTTPError
// @Router       /pricing/validate [post]
func (h *PricingConfigHandler) Validate(c *gin.Context) {
	var payload request.ValidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	cfg, err := payload.Data.ToConfiguration()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "errors": request.ErrorMessages(err)})
		return
	}
	c.JSON(http.StatusOK, h.usecase.Validate(cfg))
}

// Publish godoc
// @Summary      Publish the draft
// @Description  Validates the saved draft and stores it as the next immutable version. The draft is kept.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      request.PublishRequest  false  "Publish comment"
// @Success      201   {object}  response.PublishResponse
// @Failure      400   {object}  response.PublishResponse
// @Failure      409   {object}  response.PublishResponse
// @Failure      422   {object}  response.PublishResponse
// @Failure      500   {object}  response.PublishResponse
// @Router       /pricing/publish [post]
func (h *PricingConfigHandler) Publish(c *gin.Context) {
	var payload request.PublishRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, response.PublishResponse{OK: false, Error: errInvalidConfigPayload.Message})
			return
		}
	}

	published, err := h.usecase.Publish(c.Request.Context(), payload.Comment)
	if err != nil {
		appErr := mapPricingConfigError(err)
		res := response.PublishResponse{OK: false, Error: appErr.Message}
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			res.Errors = verr.Errors
		}
		if appErr.HTTPStatus == http.StatusInternalServerError {
			h.logger.Error("[pricing][handler] publish failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, res)
		return
	}

	c.JSON(http.StatusCreated, response.FromPublishResult(published))
}

// GetVersion godoc
// @Summary      Get a published version
// @Tags         pricing
// @Produce      json
// @Param        version  path      int  true  "Version number"
// @Success      200      {object}  response.PublishedConfigResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /pricing/config/versions/{version} [get]
func (h *PricingConfigHandler) GetVersion(c *gin.Context) {
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil {
		h.renderError(c, usecase.ErrInvalidVersion)
		return
	}

	published, err := h.usecase.GetVersion(c.Request.Context(), version)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPublishedConfig(published))
}

// CreateMode godoc
// @Summary      Add a mode to a draft
// @Description  Returns the edited document and the new key. Nothing is stored until the draft is saved.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      request.ModeEditRequest  true  "Draft and label"
// @Success      200   {object}  response.ModeEditResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /pricing/draft/modes [post]
func (h *PricingConfigHandler) CreateMode(c *gin.Context) {
	payload, ok := h.bindModeEdit(c)
	if !ok {
		return
	}
	cfg, err := payload.Data.ToConfiguration()
	if err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPErrorWithDetails(request.ErrorMessages(err)))
		return
	}

	out, key := h.usecase.CreateMode(cfg, payload.Label)
	c.JSON(http.StatusOK, response.ModeEditResponse{Data: response.FromConfiguration(out), Key: key})
}

// DuplicateMode godoc
// @Summary      Duplicate a mode in a draft
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        key   path      string                   true  "Mode key"
// @Param        body  body      request.ModeEditRequest  true  "Draft"
// @Success      200   {object}  response.ModeEditResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /pricing/draft/modes/{key}/duplicate [post]
func (h *PricingConfigHandler) DuplicateMode(c *gin.Context) {
	payload, ok := h.bindModeEdit(c)
	if !ok {
		return
	}
	cfg, err := payload.Data.ToConfiguration()
	if err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPErrorWithDetails(request.ErrorMessages(err)))
		return
	}

	out, key, err := h.usecase.DuplicateMode(cfg, c.Param("key"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ModeEditResponse{Data: response.FromConfiguration(out), Key: key})
}

// DeleteMode godoc
// @Summary      Remove a mode from a draft
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        key   path      string                   true  "Mode key"
// @Param        body  body      request.ModeEditRequest  true  "Draft"
// @Success      200   {object}  response.ModeEditResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /pricing/draft/modes/{key}/delete [post]
func (h *PricingConfigHandler) DeleteMode(c *gin.Context) {
	payload, ok := h.bindModeEdit(c)
	if !ok {
		return
	}
	cfg, err := payload.Data.ToConfiguration()
	if err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPErrorWithDetails(request.ErrorMessages(err)))
		return
	}

	out, err := h.usecase.DeleteMode(cfg, c.Param("key"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ModeEditResponse{Data: response.FromConfiguration(out)})
}

// Preview godoc
// @Summary      Price-curve preview
// @Description  Samples one mode's curve from the draft (falling back to published) or the published configuration.
// @Tags         pricing
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        mode        path      string  true   "Mode key"
// @Param        source      query     string  false  "draft or published"  default(draft)
// @Param        min_weight  query     number  false  "Lower bound of the chart in kg, 0 for the tariff minimum"  default(300)
// @Param        format      query     string  false  "json or xlsx"  default(json)
// @Success      200         {object}  pricing.CurvePreview
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /pricing/preview/{mode} [get]
func (h *PricingConfigHandler) Preview(c *gin.Context) {
	mode := c.Param("mode")
	source := usecase.PreviewSource(c.DefaultQuery("source", string(usecase.PreviewSourceDraft)))

	minWeight := pricing.DefaultPreviewMinWeight
	if raw := c.Query("min_weight"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid min_weight", http.StatusBadRequest).ToHTTPError())
			return
		}
		minWeight = v
	}

	preview, err := h.usecase.Preview(c.Request.Context(), source, mode, minWeight)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if c.Query("format") != "xlsx" {
		c.JSON(http.StatusOK, preview)
		return
	}

	buf, err := export.CurveWorkbook(mode, preview)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", mode+"_curve.xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *PricingConfigHandler) bindModeEdit(c *gin.Context) (request.ModeEditRequest, bool) {
	var payload request.ModeEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return payload, false
	}
	return payload, true
}

func (h *PricingConfigHandler) renderError(c *gin.Context, err error) {
	appErr := mapPricingConfigError(err)
	if appErr.HTTPStatus == http.StatusInternalServerError {
		h.logger.Error("[pricing][handler] request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPricingConfigError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("INVALID_CONFIGURATION", "Draft does not pass validation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidVersion), errors.Is(err, usecase.ErrInvalidComment), errors.Is(err, usecase.ErrInvalidPreviewSource):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoDraft):
		return pkg.NewDomainErrorSimple("NO_DRAFT", "There is no draft to publish", http.StatusConflict)
	case errors.Is(err, usecase.ErrPublishConflict):
		return pkg.NewDomainErrorSimple("PUBLISH_CONFLICT", "Configuration was published concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrModeNotFound):
		return pkg.NewDomainErrorSimple("MODE_NOT_FOUND", "Transport mode not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionNotFound):
		return pkg.NewDomainErrorSimple("VERSION_NOT_FOUND", "Published version not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
