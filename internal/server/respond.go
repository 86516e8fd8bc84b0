package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// respondStoreError maps store errors to HTTP responses. Stores report
// missing rows with a "not found" error.
func respondStoreError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if strings.Contains(err.Error(), "not found") {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
