package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andresrv/blogpress-backend/config"
	"github.com/andresrv/blogpress-backend/internal/app/controller"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	"github.com/andresrv/blogpress-backend/internal/app/service"
	"github.com/andresrv/blogpress-backend/internal/db"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/internal/middleware"
	"github.com/andresrv/blogpress-backend/internal/router"
	"github.com/andresrv/blogpress-backend/internal/scheduler"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"github.com/andresrv/blogpress-backend/pkg/mailer"
	"github.com/andresrv/blogpress-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: cfg.Server.Environment == "development",
	})

	apperrors.SetDevMode(cfg.Server.Environment != "production")

	logger.Info("Starting BlogPress Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize Redis for the token blacklist (optional)
	if cfg.Redis.Enabled() {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Failed to connect to Redis, logout token revocation disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	postRepo := repository.NewPostRepository(db.GetDB())
	commentRepo := repository.NewCommentRepository(db.GetDB())
	likeRepo := repository.NewLikeRepository(db.GetDB())

	// Initialize services
	mail := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	passwordResetService := service.NewPasswordResetService(userRepo, mail, cfg.Reset.TokenTTL)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	likeService := service.NewLikeService(likeRepo, postRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService, passwordResetService, cfg.Server.BaseURL)
	userController := controller.NewUserController(userService)
	postController := controller.NewPostController(postService)
	commentController := controller.NewCommentController(commentService)
	likeController := controller.NewLikeController(likeService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, userRepo)

	// Setup router
	r := router.NewRouter(
		authController,
		userController,
		postController,
		commentController,
		likeController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the reset token cleanup scheduler
	resetTokenScheduler := scheduler.NewResetTokenScheduler(userRepo)
	if err := resetTokenScheduler.Start(); err != nil {
		logger.Warn("Failed to start reset token scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer resetTokenScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
