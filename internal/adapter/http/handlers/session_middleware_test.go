package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"opticai/internal/adapter/http/handlers/mocks"
	"opticai/internal/domain/entities"
	"opticai/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ISessionUseCase) *gin.Engine {
		r := gin.New()
		r.Use(RequireSession(uc))
		r.GET("/whoami", func(c *gin.Context) {
			c.String(http.StatusOK, tenantID(c))
		})
		return r
	}

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing user", usecase.ErrUnauthenticated, http.StatusUnauthorized},
		{"no profile", usecase.ErrProfileNotFound, http.StatusForbidden},
		{"no tenant", usecase.ErrTenantNotFound, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockISessionUseCase(ctrl)
			uc.EXPECT().Resolve(gomock.Any(), "").Return(usecase.Session{}, tc.err)

			w := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("tenant stored in context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Resolve(gomock.Any(), "user-1").Return(usecase.Session{
			UserID: "user-1",
			Tenant: entities.Tenant{ID: "tenant-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(HeaderUserID, " user-1 ")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "tenant-1" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})
}
