package middleware

import (
	"errors"
	"strings"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/auth"
	autherrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/auth/errors"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/contextutil"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key holding the authenticated username.
const ActorKey = "actor"

// AuthMiddleware requires a valid Bearer token signed with secret.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || tokenString == "" {
			abortWith(c, autherrors.ErrTokenMissing.HTTPStatus, autherrors.ErrTokenMissing.Code, autherrors.ErrTokenMissing.Message)
			return
		}

		username, err := auth.ParseToken(key, tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, autherrors.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWith(c, errObj.HTTPStatus, errObj.Code, errObj.Message)
			return
		}

		c.Set(ActorKey, username)
		c.Request = c.Request.WithContext(contextutil.WithActor(c.Request.Context(), username))

		c.Next()
	}
}

func abortWith(c *gin.Context, status int, code, message string) {
	response.Error(c, status, code, message, nil)
	c.Abort()
}
