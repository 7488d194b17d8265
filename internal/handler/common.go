package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// requireJSONBody rejects requests whose body is not JSON with a 415.
// Returns false when the request was aborted.
func requireJSONBody(c *gin.Context) bool {
	if c.ContentType() != "application/json" {
		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "Body must be JSON"})
		return false
	}
	return true
}

// parseIDParam parses the :id path parameter. Returns 0 and false after
// replying 404 when it is not a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
