package user

import (
	"errors"
	"net/http"
	"strings"

	"alaayoubi/content-api/internal"
	"alaayoubi/content-api/internal/service"
	"alaayoubi/content-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserVerify confirms an account with the verification token from the
// registration mail, presented as a bearer credential. Expired tokens get
// their own message so the user knows to request a fresh one.
func UserVerify(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid or missing authorization header",
			"requestID": requestID,
		})
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Bearer token is missing",
			"requestID": requestID,
		})
		return
	}

	err := d.Auth.VerifyAccount(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, security.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     "Verification token has expired. Please request a new one",
				"requestID": requestID,
			})
		case errors.Is(err, security.ErrTokenInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid verification token",
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to verify account", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Account verified successfully. You can now log in",
		"requestID": requestID,
	})
}
