package router

import (
	"github.com/gin-gonic/gin"

	"github.com/andresrv/blogpress-backend/config"
	"github.com/andresrv/blogpress-backend/internal/app/controller"
	"github.com/andresrv/blogpress-backend/internal/middleware"
)

type Router struct {
	authController    *controller.AuthController
	userController    *controller.UserController
	postController    *controller.PostController
	commentController *controller.CommentController
	likeController    *controller.LikeController
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	postController *controller.PostController,
	commentController *controller.CommentController,
	likeController *controller.LikeController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:    authController,
		userController:    userController,
		postController:    postController,
		commentController: commentController,
		likeController:    likeController,
		authMiddleware:    authMiddleware,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	api := router.Group("/api")
	{
		api.GET("/status", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"success":     true,
				"message":     "OK",
				"environment": r.config.Server.Environment,
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.PUT("/reset-password/:resettoken", r.authController.ResetPassword)
		}

		users := api.Group("/users")
		users.Use(r.authMiddleware.Authenticate())
		{
			users.POST("", r.userController.Create)
			users.GET("", r.authMiddleware.RequireRole("admin"), r.userController.List)
			users.GET("/profile", r.userController.Profile)
			users.GET("/:id", r.userController.GetByID)
			users.PUT("/:id", r.userController.Update)
			users.DELETE("/:id", r.userController.Delete)
		}

		posts := api.Group("/posts")
		posts.Use(r.authMiddleware.Authenticate())
		{
			posts.GET("", r.postController.List)
			posts.GET("/:id", r.postController.GetByID)
			posts.POST("", r.postController.Create)
			posts.PUT("/:id", r.postController.Update)
			posts.DELETE("/:id", r.postController.Delete)

			posts.GET("/:id/comments", r.commentController.ListByPost)
			posts.GET("/:id/comments/:commentId", r.commentController.GetByID)
			posts.POST("/:id/comments", r.commentController.Create)
			posts.PUT("/:id/comments/:commentId", r.commentController.Update)
			posts.DELETE("/:id/comments/:commentId", r.commentController.Delete)

			posts.POST("/:id/likes", r.likeController.Like)
			posts.DELETE("/:id/likes", r.likeController.Unlike)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
