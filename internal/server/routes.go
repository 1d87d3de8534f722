package server

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, deps *Deps) {
	router.GET("/health", HealthCheck)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/algorithms", HandleAlgorithms(deps))
		api.POST("/visualize", HandleVisualize(deps))
		api.GET("/array", HandleArray(deps))
		api.POST("/bst", HandleBST(deps))
	}
}
