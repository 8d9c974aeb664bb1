package rbac

import (
	"net/http"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/contextutil"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authorize lets the request through only if the authenticated actor may
// perform action on resource. It must run after the auth middleware.
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := contextutil.GetActor(c.Request.Context())
		if actor == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(actor, resource, action)
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You are not allowed to change "+resource, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
