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

type forgotPasswordBody struct {
	Email string `json:"email"`
}

func UserForgotPassword(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	err := d.Auth.ForgotPassword(c.Request.Context(), data.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to start password reset", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Reset instructions sent. Check your mailbox",
		"requestID": requestID,
	})
}
