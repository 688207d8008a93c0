package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"opticai/internal/adapter/http/handlers/mocks"
	"opticai/internal/domain/entities"
	"opticai/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrderChargeHandler_ChargeOrder(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.POST("/v1/orders/:id/charges", h.ChargeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/charges", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.POST("/v1/orders/:id/charges", h.ChargeOrder)

		uc.EXPECT().Charge(gomock.Any(), "tenant-1", "ord-1", json.RawMessage("{}")).Return(entities.OrderCharge{ID: "chg-1", Status: entities.ChargeStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/charges", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.POST("/v1/orders/:id/charges", h.ChargeOrder)

		uc.EXPECT().Charge(gomock.Any(), "tenant-1", "ord-1", gomock.Any()).Return(entities.OrderCharge{}, usecase.ErrOrderAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/charges", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.POST("/v1/orders/:id/charges", h.ChargeOrder)

		now := time.Now().UTC()
		uc.EXPECT().Charge(gomock.Any(), "tenant-1", "ord-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)).
			Return(entities.OrderCharge{ID: "chg-1", OrderID: "ord-1", Amount: decimal.NewFromInt(150), Date: now, Status: entities.ChargeStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/charges", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["charge_id"] != "chg-1" || body["amount"] != "150.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderChargeHandler_LatestCharge(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.GET("/v1/orders/:id/charges", h.LatestCharge)

		uc.EXPECT().ListByOrderID(gomock.Any(), "tenant-1", "ord-1").Return(nil, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/charges", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("no charges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.GET("/v1/orders/:id/charges", h.LatestCharge)

		uc.EXPECT().ListByOrderID(gomock.Any(), "tenant-1", "ord-1").Return([]entities.OrderCharge{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/charges", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.GET("/v1/orders/:id/charges", h.LatestCharge)

		old := entities.OrderCharge{ID: "old", OrderID: "ord-1", Date: time.Now().Add(-time.Hour), Status: entities.ChargeStatusRejected}
		latest := entities.OrderCharge{ID: "latest", OrderID: "ord-1", Date: time.Now(), Status: entities.ChargeStatusApproved}
		uc.EXPECT().ListByOrderID(gomock.Any(), "tenant-1", "ord-1").Return([]entities.OrderCharge{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/charges", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["charge_id"] != "latest" {
			t.Fatalf("expected latest charge, got body: %s", w.Body.String())
		}
	})
}

func TestOrderChargeHandler_GetCharge(t *testing.T) {
	t.Run("other tenant reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.GET("/v1/charges/:charge_id", h.GetCharge)

		uc.EXPECT().GetByID(gomock.Any(), "chg-1").Return(entities.OrderCharge{ID: "chg-1", TenantID: "tenant-2"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/chg-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderChargeUseCase(ctrl)
		h := NewOrderChargeHandler(uc)

		r := newTenantRouter("tenant-1")
		r.GET("/v1/charges/:charge_id", h.GetCharge)

		uc.EXPECT().GetByID(gomock.Any(), "chg-1").Return(entities.OrderCharge{ID: "chg-1", TenantID: "tenant-1", Status: entities.ChargeStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/chg-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapChargeError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrInvalidChargeID, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrOrderWithoutTotal, http.StatusConflict},
		{usecase.ErrOrderAlreadyPaid, http.StatusConflict},
		{usecase.ErrChargeNotFound, http.StatusNotFound},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapChargeError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
