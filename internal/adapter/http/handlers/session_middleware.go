package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"opticai/internal/usecase"
	"opticai/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderUserID carries the authenticated user id set by the auth gateway.
	HeaderUserID = "X-User-ID"

	ContextTenantID = "tenant_id"
	ContextUserID   = "user_id"
)

// RequireSession resolves the caller's profile and tenant and stores the
// tenant id in the gin context. Requests without a tenant never reach the
// order handlers.
func RequireSession(uc usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		session, err := uc.Resolve(c.Request.Context(), userID)
		if err != nil {
			log.Printf("[session][middleware] resolve failed user_id=%q err=%v", userID, err)
			appErr := mapSessionError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(ContextUserID, session.UserID)
		c.Set(ContextTenantID, session.Tenant.ID)
		c.Next()
	}
}

func tenantID(c *gin.Context) string {
	return c.GetString(ContextTenantID)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found for user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found for user", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
