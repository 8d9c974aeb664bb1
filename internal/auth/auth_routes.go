package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the login endpoint. guards run first (rate limiting).
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards ...gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		chain := append(append([]gin.HandlerFunc{}, guards...), handler.Login)
		auth.POST("/login", chain...)
	}
}
