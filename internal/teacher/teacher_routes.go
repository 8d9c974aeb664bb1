package teacher

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the teacher endpoints. write guards mutating routes;
// pass nothing to leave them open.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, write ...gin.HandlerFunc) {
	teachers := r.Group("/teachers")
	{
		teachers.GET("", handler.GetAll)
		teachers.GET("/search", handler.Search)
		teachers.GET("/code/:code", handler.GetByCode)
		teachers.GET("/:id", handler.GetByID)

		teachers.POST("", append(append([]gin.HandlerFunc{}, write...), handler.Create)...)
	}
}
