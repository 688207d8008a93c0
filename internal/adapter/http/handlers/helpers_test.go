package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

// newTenantRouter stands in for RequireSession in handler tests.
func newTenantRouter(tenant string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextTenantID, tenant)
		c.Next()
	})
	return r
}
