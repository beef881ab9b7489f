package httpresp

import "github.com/gin-gonic/gin"

// Response envelope shared by the read endpoints.

func OK(c *gin.Context, data any) {
	c.JSON(200, gin.H{"success": true, "data": data})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, gin.H{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}
