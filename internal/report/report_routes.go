package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	{
		reports.GET("/summary", handler.Summary)
		reports.GET("/summary/export", handler.Export)
	}
}
