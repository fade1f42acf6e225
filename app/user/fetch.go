package user

import (
	"errors"
	"net/http"

	"alaayoubi/content-api/internal"
	"alaayoubi/content-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch returns the basic info behind the authenticated principal.
func UserFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	u, err := d.Auth.GetUser(c.Request.Context(), userID)
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

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userID":   u.ID,
		"email":    u.Email,
		"verified": u.Verified,
	})
}
