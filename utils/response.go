package utils

import "github.com/gin-gonic/gin"

// SuccessResponse wraps a payload in the standard success envelope.
func SuccessResponse(message string, data interface{}) gin.H {
	res := gin.H{"success": true}
	if message != "" {
		res["message"] = message
	}
	if data != nil {
		res["data"] = data
	}
	return res
}

// ErrorResponse wraps a human-readable message in the standard error
// envelope. The HTTP status carries the error class.
func ErrorResponse(message string) gin.H {
	return gin.H{"error": message}
}
