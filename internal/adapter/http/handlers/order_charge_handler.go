package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "opticai/internal/adapter/http/dto/request"
	response "opticai/internal/adapter/http/dto/response"
	"opticai/internal/usecase"
	"opticai/pkg"

	"github.com/gin-gonic/gin"
)

// OrderChargeHandler handles Mercado Pago charges of a service order.

type OrderChargeHandler struct {
	usecase usecase.IOrderChargeUseCase
}

func NewOrderChargeHandler(uc usecase.IOrderChargeUseCase) *OrderChargeHandler {
	return &OrderChargeHandler{usecase: uc}
}

// ChargeOrder charges the order total. The body is the Mercado Pago payment
// payload, optionally wrapped as {"mp_payload": {...}}.
//
// @Summary      Charge the order total on Mercado Pago
// @Tags         charges
// @Accept       json
// @Produce      json
// @Security     UserID
// @Param        id path string true "order id"
// @Param        payload body request.OrderChargeRequest true "Mercado Pago payload"
// @Success      200 {object} response.OrderChargeResponse
// @Router       /orders/{id}/charges [post]
func (h *OrderChargeHandler) ChargeOrder(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[charge][handler] create start order_id=%s", orderID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[charge][handler] payload invalid in mock mode; fallback to empty payload order_id=%s err=%v", orderID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[charge][handler] invalid payload order_id=%s err=%v", orderID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.Charge(c.Request.Context(), tenantID(c), orderID, mpPayload)
	if err != nil {
		log.Printf("[charge][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[charge][handler] create success order_id=%s charge_id=%s status=%s", orderID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromOrderCharge(created))
}

// LatestCharge returns the most recent charge of an order.
//
// @Summary      Latest charge of an order
// @Tags         charges
// @Produce      json
// @Security     UserID
// @Param        id path string true "order id"
// @Success      200 {object} response.OrderChargeResponse
// @Router       /orders/{id}/charges [get]
func (h *OrderChargeHandler) LatestCharge(c *gin.Context) {
	orderID := c.Param("id")

	charges, err := h.usecase.ListByOrderID(c.Request.Context(), tenantID(c), orderID)
	if err != nil {
		log.Printf("[charge][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(charges) == 0 {
		appErr := pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := charges[0]
	for _, ch := range charges[1:] {
		if ch.Date.After(latest.Date) {
			latest = ch
		}
	}
	c.JSON(http.StatusOK, response.FromOrderCharge(latest))
}

// GetCharge returns one charge. Charges of other tenants read as not found.
//
// @Summary      Get a charge
// @Tags         charges
// @Produce      json
// @Security     UserID
// @Param        charge_id path string true "charge id"
// @Success      200 {object} response.OrderChargeResponse
// @Router       /charges/{charge_id} [get]
func (h *OrderChargeHandler) GetCharge(c *gin.Context) {
	charge, err := h.usecase.GetByID(c.Request.Context(), c.Param("charge_id"))
	if err == nil && charge.TenantID != tenantID(c) {
		err = usecase.ErrChargeNotFound
	}
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderCharge(charge))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var wrapped request.OrderChargeRequest
			if err := json.Unmarshal(raw, &wrapped); err != nil {
				return nil, err
			}
			if v := strings.TrimSpace(string(wrapped.MPPayload)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest), errors.Is(err, usecase.ErrInvalidChargeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderWithoutTotal):
		return pkg.NewDomainErrorSimple("ORDER_WITHOUT_TOTAL", "Order has no total value to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	default:
		return mapOrderError(err)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
