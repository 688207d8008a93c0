package handlers

import (
	"errors"
	"log"
	"net/http"

	request "opticai/internal/adapter/http/dto/request"
	response "opticai/internal/adapter/http/dto/response"
	"opticai/internal/domain/orderform"
	"opticai/internal/usecase"
	"opticai/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for service orders of the
// caller's tenant.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// ListOrders returns the management list with status colours and the
// counters of the whole tenant.
//
// @Summary      List service orders
// @Tags         orders
// @Produce      json
// @Security     UserID
// @Param        q query string false "search by number, client name or phone"
// @Param        arrival query string false "all | arrived | not_arrived"
// @Param        delivery_date query string false "YYYY-MM-DD"
// @Success      200 {object} response.OrderListResponse
// @Router       /orders [get]
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	var q request.OrderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	list, err := h.usecase.List(c.Request.Context(), tenantID(c), q.ToFilter())
	if err != nil {
		log.Printf("[order][handler] list failed tenant_id=%s err=%v", tenantID(c), err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderList(list))
}

// NextOrderNumber godoc
// @Summary      Suggested next order number
// @Tags         orders
// @Produce      json
// @Security     UserID
// @Success      200 {object} response.NextOrderNumberResponse
// @Router       /orders/next-number [get]
func (h *ServiceOrderHandler) NextOrderNumber(c *gin.Context) {
	n, err := h.usecase.NextOrderNumber(c.Request.Context(), tenantID(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NextOrderNumberResponse{NextOrderNumber: n})
}

// CreateOrder saves a new order. Every blocking error is reported at once
// with 422 and nothing is written.
//
// @Summary      Create a service order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     UserID
// @Param        payload body request.ServiceOrderRequest true "order"
// @Success      201 {object} response.ServiceOrderResponse
// @Router       /orders [post]
func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	o, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), tenantID(c), o)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

// GetOrder godoc
// @Summary      Get a service order
// @Tags         orders
// @Produce      json
// @Security     UserID
// @Param        id path string true "order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Router       /orders/{id} [get]
func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// UpdateOrder is the edit save from the management list.
//
// @Summary      Save an edited service order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     UserID
// @Param        id path string true "order id"
// @Param        payload body request.ServiceOrderRequest true "order"
// @Success      200 {object} response.ServiceOrderResponse
// @Router       /orders/{id} [put]
func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	o, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), tenantID(c), c.Param("id"), o)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// ToggleArrival godoc
// @Summary      Toggle the arrival mark
// @Tags         orders
// @Produce      json
// @Security     UserID
// @Param        id path string true "order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Router       /orders/{id}/arrival [patch]
func (h *ServiceOrderHandler) ToggleArrival(c *gin.Context) {
	updated, err := h.usecase.ToggleArrival(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

func mapOrderError(err error) *pkg.AppError {
	var verr *orderform.ValidationErrors
	switch {
	case errors.As(err, &verr):
		return pkg.NewValidationError("INVALID_ORDER", "Service order has blocking errors", verr.Messages())
	case errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("TENANT_REQUIRED", "Tenant context required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNumberTaken):
		return pkg.NewDomainErrorSimple("ORDER_NUMBER_TAKEN", "Order number already in use", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
