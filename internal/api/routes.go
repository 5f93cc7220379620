package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetAllProperties)
		api.POST("/properties", handler.IngestProperties)
		api.GET("/search", handler.SearchProperties)
		api.POST("/recommendations", handler.Recommend)
		api.GET("/suggestions", handler.SuggestCities)
		api.GET("/areas/:city", handler.GetAreaStats)
	}
}
