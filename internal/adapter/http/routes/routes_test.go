package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"opticai/internal/adapter/http/handlers"
	"opticai/internal/adapter/http/handlers/mocks"
	"opticai/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestEngine(t *testing.T) (*gin.Engine, *mocks.MockISessionUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	session := mocks.NewMockISessionUseCase(ctrl)

	set := handlerSet{
		session:   handlers.RequireSession(session),
		orders:    handlers.NewServiceOrderHandler(mocks.NewMockIServiceOrderUseCase(ctrl)),
		drafts:    handlers.NewDraftHandler(mocks.NewMockIDraftUseCase(ctrl)),
		documents: handlers.NewDocumentHandler(mocks.NewMockIDocumentUseCase(ctrl)),
		charges:   handlers.NewOrderChargeHandler(mocks.NewMockIOrderChargeUseCase(ctrl)),
	}
	r := gin.New()
	registerRoutes(r, set)
	return r, session
}

func TestRegisterRoutes(t *testing.T) {
	r, _ := newTestEngine(t)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	want := []string{
		"GET /v1/ping",
		"GET /v1/orders",
		"GET /v1/orders/next-number",
		"POST /v1/orders",
		"GET /v1/orders/:id",
		"PUT /v1/orders/:id",
		"PATCH /v1/orders/:id/arrival",
		"GET /v1/orders/:id/documents/:kind",
		"POST /v1/orders/:id/charges",
		"GET /v1/orders/:id/charges",
		"GET /v1/charges/:charge_id",
		"POST /v1/drafts",
		"GET /v1/drafts/:id",
		"PATCH /v1/drafts/:id/fields",
		"POST /v1/drafts/:id/adjust",
		"POST /v1/drafts/:id/blur",
		"PUT /v1/drafts/:id/order-number",
		"POST /v1/drafts/:id/save",
		"DELETE /v1/drafts/:id",
		"GET /v1/drafts/:id/documents/:kind",
	}
	for _, route := range want {
		if !registered[route] {
			t.Fatalf("route %s not registered", route)
		}
	}
}

func TestPingIsPublic(t *testing.T) {
	r, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderRoutesRequireSession(t *testing.T) {
	r, session := newTestEngine(t)
	session.EXPECT().Resolve(gomock.Any(), "").Return(usecase.Session{}, usecase.ErrUnauthenticated)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
