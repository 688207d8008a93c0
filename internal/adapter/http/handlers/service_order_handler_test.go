package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"opticai/internal/adapter/http/handlers/mocks"
	"opticai/internal/domain/entities"
	"opticai/internal/domain/orderform"
	"opticai/internal/usecase"
	"opticai/pkg"

	"go.uber.org/mock/gomock"
)

func TestServiceOrderHandler_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)

	r := newTenantRouter("tenant-1")
	r.GET("/v1/orders", h.ListOrders)

	want := entities.OrderFilter{Search: "maria", Arrival: entities.ArrivalFilterNotArrived, DeliveryDate: "2026-03-10"}
	uc.EXPECT().List(gomock.Any(), "tenant-1", want).Return(usecase.OrderList{
		Items:           []usecase.OrderListItem{{Order: entities.ServiceOrder{ID: "ord-1", OrderNumber: 5}, Color: entities.StatusColorYellow}},
		Statistics:      entities.OrderStatistics{Total: 3, Urgent: 1},
		NextOrderNumber: 6,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders?q=maria&arrival=not_arrived&delivery_date=2026-03-10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Items []struct {
			ID    string `json:"id"`
			Color string `json:"color"`
		} `json:"items"`
		Statistics      entities.OrderStatistics `json:"statistics"`
		NextOrderNumber int                      `json:"next_order_number"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].Color != "yellow" || body.NextOrderNumber != 6 || body.Statistics.Total != 3 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServiceOrderHandler_NextOrderNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)

	r := newTenantRouter("tenant-1")
	r.GET("/v1/orders/next-number", h.NextOrderNumber)

	uc.EXPECT().NextOrderNumber(gomock.Any(), "tenant-1").Return(12, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/next-number", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != `{"next_order_number":12}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestServiceOrderHandler_CreateOrder(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter("tenant-1")
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid total value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter("tenant-1")
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"client_name":"Ana","total_value":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blocking errors are reported together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter("tenant-1")
		r.POST("/v1/orders", h.CreateOrder)

		verr := &orderform.ValidationErrors{Errors: []orderform.FieldError{
			{Field: orderform.FieldClientName, Err: orderform.ErrClientNameRequired},
			{Field: orderform.FieldClientPhone, Err: orderform.ErrClientPhoneRequired},
		}}
		uc.EXPECT().Create(gomock.Any(), "tenant-1", gomock.Any()).Return(entities.ServiceOrder{}, verr)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "INVALID_ORDER" || len(body.Details) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Details[0] != orderform.ErrClientNameRequired.Error() {
			t.Fatalf("unexpected first detail: %q", body.Details[0])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter("tenant-1")
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), "tenant-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ClientName != "Ana" || o.LensType != entities.LensTypeMultifocal {
					t.Fatalf("unexpected order: %+v", o)
				}
				if !o.TotalValue.Valid || o.TotalValue.Decimal.StringFixed(2) != "1234.56" {
					t.Fatalf("unexpected total: %+v", o.TotalValue)
				}
				o.ID = "ord-1"
				o.OrderNumber = 1
				return o, nil
			})

		body := `{"client_name":"Ana","client_phone":"81988887777","lens_type":"Multifocal","total_value":"1.234,56"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_GetUpdateAndArrival(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter("tenant-1")
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), "tenant-1", "ord-x").Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/ord-x", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter("tenant-1")
		r.PUT("/v1/orders/:id", h.UpdateOrder)

		uc.EXPECT().Update(gomock.Any(), "tenant-1", "ord-1", gomock.Any()).Return(entities.ServiceOrder{ID: "ord-1", ClientName: "Ana"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/ord-1", bytes.NewBufferString(`{"client_name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("toggle arrival", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter("tenant-1")
		r.PATCH("/v1/orders/:id/arrival", h.ToggleArrival)

		uc.EXPECT().ToggleArrival(gomock.Any(), "tenant-1", "ord-1").Return(entities.ServiceOrder{ID: "ord-1"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/arrival", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["arrived"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&orderform.ValidationErrors{Errors: []orderform.FieldError{{Field: orderform.FieldLensType, Err: orderform.ErrLensTypeRequired}}}, http.StatusUnprocessableEntity},
		{usecase.ErrInvalidTenantID, http.StatusUnauthorized},
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrOrderNumberTaken, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapOrderError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
