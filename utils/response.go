package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response, tagged with the request's
// correlation id when middleware has set one
func JSONResponse(c *gin.Context, status int, data any, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	}
	if requestID := c.GetString("request_id"); requestID != "" {
		body["request_id"] = requestID
	}
	c.JSON(status, body)
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if requestID := c.GetString("request_id"); requestID != "" {
		body["request_id"] = requestID
	}
	c.JSON(status, body)
}
