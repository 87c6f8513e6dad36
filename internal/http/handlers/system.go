// README: Health endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /.
func Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "AI Travel Planner API is running",
	})
}
