package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	request "opticai/internal/adapter/http/dto/request"
	response "opticai/internal/adapter/http/dto/response"
	"opticai/internal/domain/orderform"
	"opticai/internal/usecase"
	"opticai/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler exposes the order form editing session. Each mutation
// answers with the whole draft and its fresh warnings.

type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

// StartDraft opens a new form, or an edit session when order_id is given.
// The body is optional.
//
// @Summary      Start an editing session
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     UserID
// @Param        payload body request.StartDraftRequest false "edit an existing order"
// @Success      201 {object} response.DraftResponse
// @Router       /drafts [post]
func (h *DraftHandler) StartDraft(c *gin.Context) {
	var payload request.StartDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Start(c.Request.Context(), tenantID(c), payload.OrderID)
	if err != nil {
		log.Printf("[draft][handler] start failed tenant_id=%s order_id=%s err=%v", tenantID(c), payload.OrderID, err)
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDraftView(v))
}

// GetDraft godoc
// @Summary      Get a draft with its warnings
// @Tags         drafts
// @Produce      json
// @Security     UserID
// @Param        id path string true "draft id"
// @Success      200 {object} response.DraftResponse
// @Router       /drafts/{id} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	v, err := h.usecase.Get(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftView(v))
}

// SetFields godoc
// @Summary      Type into form fields
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     UserID
// @Param        id path string true "draft id"
// @Param        payload body request.SetFieldsRequest true "raw values"
// @Success      200 {object} response.DraftResponse
// @Router       /drafts/{id}/fields [patch]
func (h *DraftHandler) SetFields(c *gin.Context) {
	var payload request.SetFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.SetFields(c.Request.Context(), tenantID(c), c.Param("id"), payload.ToFields())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftView(v))
}

// Adjust applies one stepper click (delta is signed) to an optical field.
//
// @Summary      Step an optical field
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     UserID
// @Param        id path string true "draft id"
// @Param        payload body request.AdjustRequest true "field and delta"
// @Success      200 {object} response.DraftResponse
// @Router       /drafts/{id}/adjust [post]
func (h *DraftHandler) Adjust(c *gin.Context) {
	var payload request.AdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	field := orderform.Field(strings.TrimSpace(payload.Field))
	v, err := h.usecase.Adjust(c.Request.Context(), tenantID(c), c.Param("id"), field, payload.Delta)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftView(v))
}

// Blur godoc
// @Summary      Correct an optical field on blur
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     UserID
// @Param        id path string true "draft id"
// @Param        payload body request.BlurRequest true "field"
// @Success      200 {object} response.DraftResponse
// @Router       /drafts/{id}/blur [post]
func (h *DraftHandler) Blur(c *gin.Context) {
	var payload request.BlurRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	field := orderform.Field(strings.TrimSpace(payload.Field))
	v, err := h.usecase.Blur(c.Request.Context(), tenantID(c), c.Param("id"), field)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftView(v))
}

// SetOrderNumber godoc
// @Summary      Change the suggested order number
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     UserID
// @Param        id path string true "draft id"
// @Param        payload body request.OrderNumberRequest true "number"
// @Success      200 {object} response.DraftResponse
// @Router       /drafts/{id}/order-number [put]
func (h *DraftHandler) SetOrderNumber(c *gin.Context) {
	var payload request.OrderNumberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.SetOrderNumber(c.Request.Context(), tenantID(c), c.Param("id"), payload.OrderNumber)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftView(v))
}

// SaveDraft persists the draft. A 422 lists every blocking error and leaves
// the draft untouched so the user can fix it.
//
// @Summary      Persist a draft
// @Tags         drafts
// @Produce      json
// @Security     UserID
// @Param        id path string true "draft id"
// @Success      200 {object} response.ServiceOrderResponse
// @Router       /drafts/{id}/save [post]
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	saved, err := h.usecase.Save(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		log.Printf("[draft][handler] save failed draft_id=%s err=%v", c.Param("id"), err)
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(saved))
}

// DiscardDraft godoc
// @Summary      Discard a draft
// @Tags         drafts
// @Produce      json
// @Security     UserID
// @Param        id path string true "draft id"
// @Success      204
// @Router       /drafts/{id} [delete]
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), tenantID(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) writeError(c *gin.Context, err error) {
	appErr := mapDraftError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, orderform.ErrUnknownField), errors.Is(err, orderform.ErrNotOpticalField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, orderform.ErrInvalidOrderNumber):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_NUMBER", "Order number must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNumberImmutable):
		return pkg.NewDomainErrorSimple("ORDER_NUMBER_IMMUTABLE", "Order number cannot change after save", http.StatusConflict)
	default:
		return mapOrderError(err)
	}
}
