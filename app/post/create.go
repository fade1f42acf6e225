package post

import (
	"net/http"

	"alaayoubi/content-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type postBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func PostCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

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

	p, err := d.Posts.Create(c.Request.Context(), userID, data.Title, data.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create post", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, p)
}
