package post

import (
	"net/http"

	"alaayoubi/content-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostList returns the caller's own posts, newest first.
func PostList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	posts, err := d.Posts.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list posts", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, posts)
}
