package user

import (
	"errors"
	"net/http"

	"alaayoubi/content-api/internal"
	"alaayoubi/content-api/internal/service"
	"alaayoubi/content-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type resetPasswordBody struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func UserResetPassword(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data resetPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No reset token provided",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	err := d.Auth.ResetPassword(c.Request.Context(), data.Token, data.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrResetTokenNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Reset token expired or invalid",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to reset password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password changed successfully. You can now log in",
		"requestID": requestID,
	})
}
