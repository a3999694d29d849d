package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asketsystem/lifebook/internal/auth"
	"github.com/asketsystem/lifebook/internal/http/response"
	"github.com/asketsystem/lifebook/internal/platform/ctxutil"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

type AuthMiddleware struct {
	log      *logger.Logger
	verifier auth.TokenVerifier
}

func NewAuthMiddleware(log *logger.Logger, verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		log:      log.With("middleware", "AuthMiddleware"),
		verifier: verifier,
	}
}

// RequireAuth rejects the request before any downstream work when the bearer
// token is missing or fails verification.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "No token provided")
			return
		}

		ident, err := am.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			// Generic message: which check failed is not the caller's business.
			am.log.Debug("Token verification failed", "error", err)
			response.AbortError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Request = c.Request.WithContext(ctxutil.WithIdentity(c.Request.Context(), ident))
		c.Next()
	}
}

// OptionalAuth attaches an identity when one verifies, and silently proceeds
// without one on any failure.
func (am *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if ident, err := am.verifier.Verify(c.Request.Context(), token); err == nil {
				c.Request = c.Request.WithContext(ctxutil.WithIdentity(c.Request.Context(), ident))
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}
