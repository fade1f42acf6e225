package post

import (
	"errors"
	"net/http"

	"alaayoubi/content-api/internal"
	"alaayoubi/content-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func PostUpdate(c *gin.Context, d *internal.Deps) {
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

	var data postBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.Title == "" || data.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Title and content can't be empty",
			"requestID": requestID,
		})
		return
	}

	p, err := d.Posts.Update(c.Request.Context(), userID, postID, data.Title, data.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Post not found",
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrPostForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error":     "You do not have permission to edit this post",
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update post", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, p)
}
