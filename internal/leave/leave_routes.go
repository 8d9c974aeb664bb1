package leave

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the leave endpoints. write runs before the mutating
// handlers (auth, idempotency); it may be empty.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, write ...gin.HandlerFunc) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetByID)
		leaves.POST("", withGuards(write, handler.Create)...)
		leaves.PATCH("/:id", withGuards(write, handler.Update)...)
	}

	r.GET("/teachers/:id/leaves", handler.GetByTeacher)
}

func withGuards(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, h)
}
