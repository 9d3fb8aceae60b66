// Package response provides the JSON envelope shared by every API endpoint.
package response

import "github.com/gin-gonic/gin"

// Envelope is the uniform response body returned by all endpoints,
// success and failure alike.
type Envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	StatusCode int    `json:"statusCode"`
}

// Success writes a success envelope with the given status, message and
// optional payload.
func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: status,
	})
}

// Error writes a failure envelope with the given status and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success:    false,
		Message:    message,
		StatusCode: status,
	})
}

// AbortError writes a failure envelope and stops the handler chain.
// Intended for middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success:    false,
		Message:    message,
		StatusCode: status,
	})
}
