package rbac_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/rbac"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestService_Enforce(t *testing.T) {
	svc, err := rbac.NewService("admin")
	assert.NoError(t, err)

	tests := []struct {
		actor, resource, action string
		want                    bool
	}{
		{"admin", rbac.ResourceLeaves, rbac.ActionWrite, true},
		{"admin", rbac.ResourceTeachers, rbac.ActionWrite, true},
		{"admin", "reports", rbac.ActionWrite, false},
		{"guest", rbac.ResourceLeaves, rbac.ActionWrite, false},
	}
	for _, tt := range tests {
		got, err := svc.Enforce(tt.actor, tt.resource, tt.action)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.actor, tt.resource, tt.action)
	}
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, err := rbac.NewService("admin")
	assert.NoError(t, err)

	newRouter := func(actor string) *gin.Engine {
		r := gin.New()
		r.POST("/leaves", func(c *gin.Context) {
			if actor != "" {
				c.Request = c.Request.WithContext(contextutil.WithActor(c.Request.Context(), actor))
			}
			c.Next()
		}, rbac.Authorize(svc, rbac.ResourceLeaves, rbac.ActionWrite), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return r
	}

	tests := []struct {
		name  string
		actor string
		want  int
	}{
		{name: "admin allowed", actor: "admin", want: http.StatusCreated},
		{name: "other user forbidden", actor: "guest", want: http.StatusForbidden},
		{name: "anonymous rejected", actor: "", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/leaves", nil).WithContext(context.Background())
			w := httptest.NewRecorder()
			newRouter(tt.actor).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
