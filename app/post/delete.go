package post

import (
	"errors"
	"net/http"

	"alaayoubi/content-api/internal"
	"alaayoubi/content-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func PostDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	postID := c.Param("id")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No post ID provided",
			"requestID": requestID,
		})
		return
	}

	err := d.Posts.Delete(c.Request.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Post not found",
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrPostForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error":     "You do not have permission to delete this post",
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to delete post", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Post deleted",
		"requestID": requestID,
	})
}
