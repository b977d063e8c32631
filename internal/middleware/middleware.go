package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mynameberto/ProcessarMatriculaApp/internal/models"
)

// CORS applies the cross-origin header set required by the enrollment
// API consumers and short-circuits preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With")
		c.Header("Access-Control-Max-Age", "3600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// MethodNotAllowed returns the JSON body served for unsupported methods.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{
			Error:     "Method not allowed",
			Message:   "Only POST and OPTIONS are supported",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// ErrorHandler renders errors attached to the context. Handlers report
// unexpected pipeline failures through c.Error and leave the response
// to this middleware; client-caused errors are answered at the handler.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()

		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		}).Error("Request error")

		timestamp := time.Now().UTC().Format(time.RFC3339)

		switch err.Type {
		case gin.ErrorTypePublic:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "Request failed",
				Message:   err.Error(),
				Timestamp: timestamp,
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "Internal server error",
				Message:   "An unexpected error occurred",
				Timestamp: timestamp,
			})
		}
	}
}
