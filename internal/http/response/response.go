package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the success shape every content endpoint returns.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorEnvelope is the error shape; Message carries detail only when the
// server runs in development mode.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Error(c *gin.Context, status int, errMsg string) {
	c.JSON(status, ErrorEnvelope{Error: errMsg})
}

func ErrorWithDetail(c *gin.Context, status int, errMsg, detail string) {
	c.JSON(status, ErrorEnvelope{Error: errMsg, Message: detail})
}

// AbortError is for middleware: it stops the chain so downstream handlers
// never run.
func AbortError(c *gin.Context, status int, errMsg string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: errMsg})
}
