package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiredesk/internal/version"
)

// Health reports process liveness
// @Router /healthz [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Get().Version})
}
