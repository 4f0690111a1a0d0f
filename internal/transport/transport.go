package transport

import (
	"github.com/gin-gonic/gin"
)

func InitRoutes(batchHandler *BatchHandler) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := router.Group("/api")
	{
		api.POST("/batch", batchHandler.CreateBatch)
		api.GET("/batch/:id", batchHandler.GetBatch)
		api.GET("/batch/:id/archive", batchHandler.DownloadArchive)
		api.GET("/batch/:id/images/:name", batchHandler.DownloadImage)
		api.DELETE("/batch/:id", batchHandler.DeleteBatch)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "photo-overlay-service",
		})
	})
	return router
}
