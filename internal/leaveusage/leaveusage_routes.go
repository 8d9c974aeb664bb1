package leaveusage

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/leave-limits", handler.GetLimits)

	teachers := r.Group("/teachers/:id")
	{
		teachers.GET("/leave-usage", handler.GetByTeacher)
		teachers.GET("/leave-balance", handler.GetBalance)
	}
}
