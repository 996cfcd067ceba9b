package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warden-inc/warden/internal/domain/account"
)

func Health(c *gin.Context, _ *account.Identity) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
