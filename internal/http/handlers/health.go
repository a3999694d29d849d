package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asketsystem/lifebook/internal/platform/ctxutil"
)

const apiVersion = "1.0.0"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "LifeBook Backend is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   apiVersion,
	})
}

// GET /api
// Public index; greets the caller when optional auth resolved an identity.
func (h *HealthHandler) APIIndex(c *gin.Context) {
	body := gin.H{
		"message": "LifeBook API",
		"version": apiVersion,
		"endpoints": gin.H{
			"health":  "/health",
			"content": "/api/content",
		},
	}
	if ident := ctxutil.GetIdentity(c.Request.Context()); ident != nil && ident.Name != "" {
		body["user"] = ident.Name
	}
	c.JSON(http.StatusOK, body)
}
