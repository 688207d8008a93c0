package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"opticai/internal/domain/entities"
	mock_interfaces "opticai/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func chargeableOrder(total string) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:            "o-1",
		TenantID:      "tenant-1",
		OrderNumber:   42,
		ClientName:    "Maria Silva",
		TotalValue:    decimal.NewNullDecimal(decimal.RequireFromString(total)),
		PaymentStatus: entities.PaymentStatusPayOnDelivery,
	}
}

type chargeFixture struct {
	repo    *mock_interfaces.MockIOrderChargeRepository
	orders  *mock_interfaces.MockIServiceOrderRepository
	gateway *mock_interfaces.MockIPaymentGateway
	uc      *OrderChargeUseCase
}

func newChargeFixture(t *testing.T) chargeFixture {
	ctrl := gomock.NewController(t)
	f := chargeFixture{
		repo:    mock_interfaces.NewMockIOrderChargeRepository(ctrl),
		orders:  mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewOrderChargeUseCase(f.repo, f.orders, f.gateway)
	return f
}

func TestOrderChargeUseCase_Charge_Validations(t *testing.T) {
	t.Run("empty tenant", func(t *testing.T) {
		uc := NewOrderChargeUseCase(nil, nil, nil)
		_, err := uc.Charge(context.Background(), " ", "o-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("empty order id", func(t *testing.T) {
		uc := NewOrderChargeUseCase(nil, nil, nil)
		_, err := uc.Charge(context.Background(), "tenant-1", " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc := NewOrderChargeUseCase(nil, nil, nil)
		_, err := uc.Charge(context.Background(), "tenant-1", "o-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderChargeUseCase(nil, orders, nil)

		_, err := uc.Charge(context.Background(), "tenant-1", "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("order repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderChargeUseCase(nil, nil, gateway)

		_, err := uc.Charge(context.Background(), "tenant-1", "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "order repository not configured" {
			t.Fatalf("expected order repository not configured error, got %v", err)
		}
	})
}

func TestOrderChargeUseCase_Charge_OrderChecks(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("order not found", func(t *testing.T) {
		f := newChargeFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "tenant-1", "o-1").Return(entities.ServiceOrder{}, nil)

		if _, err := f.uc.Charge(context.Background(), "tenant-1", "o-1", payload); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		f := newChargeFixture(t)
		o := chargeableOrder("10")
		o.PaymentStatus = entities.PaymentStatusPaid
		f.orders.EXPECT().GetByID(gomock.Any(), "tenant-1", "o-1").Return(o, nil)

		if _, err := f.uc.Charge(context.Background(), "tenant-1", "o-1", payload); !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})

	t.Run("no total", func(t *testing.T) {
		f := newChargeFixture(t)
		o := chargeableOrder("0")
		o.TotalValue = decimal.NullDecimal{}
		f.orders.EXPECT().GetByID(gomock.Any(), "tenant-1", "o-1").Return(o, nil)

		if _, err := f.uc.Charge(context.Background(), "tenant-1", "o-1", payload); !errors.Is(err, ErrOrderWithoutTotal) {
			t.Fatalf("expected ErrOrderWithoutTotal, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		f := newChargeFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "tenant-1", "o-1").Return(chargeableOrder("10"), nil)

		_, err := f.uc.Charge(context.Background(), "tenant-1", "o-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestOrderChargeUseCase_Charge_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PAYMENT_GATEWAY_MOCK", "")
			t.Setenv("MERCADOPAGO_MOCK", "")
			f := newChargeFixture(t)
			f.orders.EXPECT().GetByID(gomock.Any(), "tenant-1", "o-1").Return(chargeableOrder("10"), nil)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := f.uc.Charge(context.Background(), "tenant-1", "o-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOrderChargeUseCase_Charge_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.ChargeStatus
		marksPaid      bool
	}{
		{name: "approved", providerStatus: "approved", want: entities.ChargeStatusApproved, marksPaid: true},
		{name: "in process", providerStatus: "in_process", want: entities.ChargeStatusPending},
		{name: "rejected", providerStatus: "rejected", want: entities.ChargeStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PAYMENT_GATEWAY_MOCK", "")
			t.Setenv("MERCADOPAGO_MOCK", "")
			t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
			t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
			t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")
			f := newChargeFixture(t)

			f.orders.EXPECT().GetByID(gomock.Any(), "tenant-1", "o-1").Return(chargeableOrder("77.20"), nil)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "o-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "OS 42" {
						t.Fatalf("description not set: %v", body["description"])
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the order total")
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":1}`), nil
				},
			)
			f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderCharge{})).DoAndReturn(
				func(_ context.Context, c entities.OrderCharge) (entities.OrderCharge, error) {
					if c.ID != "pay-1" || c.OrderID != "o-1" || c.Status != tc.want || c.OrderNumber != 42 {
						t.Fatalf("unexpected charge: %+v", c)
					}
					if c.Date.IsZero() {
						t.Fatalf("date must be set")
					}
					return c, nil
				},
			)
			if tc.marksPaid {
				f.orders.EXPECT().UpdateFields(gomock.Any(), "tenant-1", "o-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, fields entities.OrderFields) (entities.ServiceOrder, error) {
						if *fields[entities.ColumnPaymentStatus] != string(entities.PaymentStatusPaid) || *fields[entities.ColumnPaymentReference] != "pay-1" {
							t.Fatalf("unexpected fields: %v", fields)
						}
						return chargeableOrder("77.20"), nil
					},
				)
			} else {
				f.orders.EXPECT().UpdateFields(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			res, err := f.uc.Charge(context.Background(), "tenant-1", "o-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want || !res.Amount.Equal(decimal.RequireFromString("77.2")) {
				t.Fatalf("unexpected charge %+v", res)
			}
		})
	}

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		f := newChargeFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "tenant-1", "o-1").Return(chargeableOrder("10"), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.OrderCharge) (entities.OrderCharge, error) { return c, nil },
		)
		f.orders.EXPECT().UpdateFields(gomock.Any(), "tenant-1", "o-1", gomock.Any()).Return(chargeableOrder("10"), nil)

		res, err := f.uc.Charge(context.Background(), "tenant-1", "o-1", nil)
		if err != nil || res.Status != entities.ChargeStatusApproved || res.ID == "" {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		f := newChargeFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "tenant-1", "o-1").Return(chargeableOrder("11"), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":1}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.OrderCharge{}, errors.New("db-create"))

		_, err := f.uc.Charge(context.Background(), "tenant-1", "o-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestOrderChargeUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewOrderChargeUseCase(nil, nil, nil)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidChargeID) {
			t.Fatalf("expected ErrInvalidChargeID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		f := newChargeFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.OrderCharge{}, nil)

		if _, err := f.uc.GetByID(context.Background(), " id-1 "); !errors.Is(err, ErrChargeNotFound) {
			t.Fatalf("expected ErrChargeNotFound, got %v", err)
		}
	})

	t.Run("ListByOrderID keeps the tenant's charges", func(t *testing.T) {
		f := newChargeFixture(t)
		f.repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.OrderCharge{
			{ID: "p1", TenantID: "tenant-1", Date: time.Now()},
			{ID: "p2", TenantID: "tenant-2", Date: time.Now()},
		}, nil)

		res, err := f.uc.ListByOrderID(context.Background(), "tenant-1", " o-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestOrderChargeUseCase_HelperFunctions(t *testing.T) {
	t.Run("chargeStatus", func(t *testing.T) {
		cases := map[string]entities.ChargeStatus{
			"approved":     entities.ChargeStatusApproved,
			" AUTHORIZED ": entities.ChargeStatusApproved,
			"pending":      entities.ChargeStatusPending,
			"in_mediation": entities.ChargeStatusPending,
			"cancelled":    entities.ChargeStatusRejected,
			"":             entities.ChargeStatusRejected,
		}
		for in, want := range cases {
			if got := chargeStatus(in); got != want {
				t.Fatalf("chargeStatus(%q) = %s, want %s", in, got, want)
			}
		}
	})

	t.Run("hasPayer", func(t *testing.T) {
		if hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
	})

	t.Run("ensurePayerDefaults sandbox fallback", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		m := map[string]any{}
		ensurePayerDefaults(m)
		payer := m["payer"].(map[string]any)
		if payer["type"] != "customer" || payer["email"] != "test_user_br@testuser.com" {
			t.Fatalf("unexpected payer %v", payer)
		}
	})

	t.Run("gateway classifiers", func(t *testing.T) {
		if !isGatewayUnauthorized(errors.New(`{"status":401}`)) {
			t.Fatalf("expected unauthorized true")
		}
		if !isGatewayInvalidUsers(errors.New(`{"code":2034}`)) {
			t.Fatalf("expected invalid users true")
		}
		if classifyGatewayError(errors.New("boom")).Error() != "boom" {
			t.Fatalf("unknown errors pass through")
		}
	})
}
