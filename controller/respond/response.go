package respond

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response unified API response structure
type Response struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
	// ErrorCode machine-readable error code, set on auth failures
	ErrorCode string      `json:"errorCode,omitempty" example:"TOKEN_EXPIRED"`
	Data      interface{} `json:"data,omitempty"`
}

// Success 200 response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 201 response with data
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// InvalidParam 400 parameter error response
func InvalidParam(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// Unauthorized 401 response with a machine-readable error code
func Unauthorized(c *gin.Context, errorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
		Code:      http.StatusUnauthorized,
		ErrorCode: errorCode,
		Message:   message,
	})
}

// NotFound 404 response
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

// Conflict 409 response
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code:    http.StatusConflict,
		Message: message,
	})
}

// TooManyRequests 429 response
func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{
		Code:    http.StatusTooManyRequests,
		Message: message,
	})
}

// ServerError 500 response
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// TimingMiddleware log request method, path, status and duration
func TimingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		log.Printf("[%s] %s %d %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), elapsed)
	}
}
