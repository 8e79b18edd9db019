package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func permissionRouter(perms interface{}, required string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if perms != nil {
			c.Set("permissions", perms)
		}
		c.Next()
	})
	r.DELETE("/resource", RequirePermission(required), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name     string
		perms    interface{}
		required string
		want     int
	}{
		{"exact match", []string{"site:delete"}, "site:delete", http.StatusNoContent},
		{"admin override", []string{AdminPermission}, "site:delete", http.StatusNoContent},
		{"missing permission", []string{"site:read"}, "site:delete", http.StatusForbidden},
		{"no claim set", nil, "site:delete", http.StatusForbidden},
		{"malformed claim", "not-a-slice", "site:delete", http.StatusForbidden},
		{"empty slice", []string{}, "site:delete", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/resource", nil)
			permissionRouter(tt.perms, tt.required).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
