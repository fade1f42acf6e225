// Package app contains all endpoints available
package app

import (
	"time"

	"alaayoubi/content-api/app/post"
	"alaayoubi/content-api/app/root"
	"alaayoubi/content-api/app/user"
	"alaayoubi/content-api/internal"
	"alaayoubi/content-api/pkg/middleware"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewRouter(d *internal.Deps) *gin.Engine {
	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     d.Cfg.Host.CORSOrigin,
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	auth := middleware.NewAuthMiddleware(d.Tokens)

	m := router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// HEAD /api/validate		-> Validates an access token
		m.HEAD("/validate", auth, root.Validate)
	}

	a := m.Group("/auth")
	{
		// POST /api/auth/register 	-> Registers a new user and mails a verification token
		a.POST("/register", func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/auth/login 	-> Logs in a user and returns an access token
		a.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })

		// GET /api/auth/verify		-> Verifies a new account with the mailed token
		a.GET("/verify", func(c *gin.Context) { user.UserVerify(c, d) })

		// POST /api/auth/forgot-password -> Starts a password reset
		a.POST("/forgot-password", func(c *gin.Context) { user.UserForgotPassword(c, d) })

		// POST /api/auth/reset-password  -> Finishes a password reset
		a.POST("/reset-password", func(c *gin.Context) { user.UserResetPassword(c, d) })

		// GET /api/auth/me		-> Returns the basic info of the caller
		a.GET("/me", auth, func(c *gin.Context) { user.UserFetch(c, d) })
	}

	p := m.Group("/posts", auth)
	{
		// GET /api/posts		-> Returns the caller's posts
		p.GET("", func(c *gin.Context) { post.PostList(c, d) })

		// POST /api/posts		-> Creates a new post owned by the caller
		p.POST("", func(c *gin.Context) { post.PostCreate(c, d) })

		// PATCH /api/posts/:id		-> Updates a post owned by the caller
		p.PATCH("/:id", func(c *gin.Context) { post.PostUpdate(c, d) })

		// DELETE /api/posts/:id	-> Deletes a post owned by the caller
		p.DELETE("/:id", func(c *gin.Context) { post.PostDelete(c, d) })
	}

	return router
}
