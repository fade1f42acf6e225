package middleware

import (
	"net/http"
	"strings"

	"alaayoubi/content-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewAuthMiddleware guards protected routes. It extracts the bearer token
// from the Authorization header, verifies it statelessly and attaches the
// principal (userID, verified) to the request context. Every failure mode
// is a uniform 401, the expired/invalid distinction only shows up in the
// debug log.
func NewAuthMiddleware(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authorization header is missing",
				"requestID": requestID,
			})
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authorization header must be a bearer token",
				"requestID": requestID,
			})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Bearer token is missing",
				"requestID": requestID,
			})
			return
		}

		claims, err := tokens.VerifyAccess(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid or expired token",
				"requestID": requestID,
			})

			zap.L().Debug("Rejected access token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("verified", claims.Verified)
		c.Next()
	}
}
