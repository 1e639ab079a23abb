package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse sends a standardized error response
func ErrorResponse(c *gin.Context, message string, code int) {
	c.JSON(code, gin.H{
		"error": message,
	})
}

// SuccessResponse sends a standardized success response
func SuccessResponse(c *gin.Context, message string, code int) {
	c.JSON(code, gin.H{
		"message": message,
	})
}
