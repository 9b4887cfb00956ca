package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check body.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health reports that the API is up.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Medicare API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Root is the liveness body served at the server root.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Medicare Simple Backend is running!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
