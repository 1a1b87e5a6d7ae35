// Command seed populates the database with an admin account and a few
// sample posts for local development.
package main

import (
	"errors"

	"github.com/andresrv/blogpress-backend/config"
	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/db"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"github.com/andresrv/blogpress-backend/pkg/util"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if err := seed(db.GetDB()); err != nil {
		logger.Fatal("Failed to seed database", err)
	}

	logger.Info("Database seeded successfully")
}

func seed(database *gorm.DB) error {
	admin, err := seedUser(database, "Admin", "admin@blogpress.local", "admin123", model.RoleAdmin)
	if err != nil {
		return err
	}
	author, err := seedUser(database, "Jane Writer", "jane@blogpress.local", "password123", model.RoleUser)
	if err != nil {
		return err
	}

	posts := []model.Post{
		{Title: "Welcome to BlogPress", Body: "This is the first post on this instance.", AuthorID: admin.ID},
		{Title: "Getting started with the API", Body: "All endpoints live under /api. Log in to get a token.", AuthorID: author.ID},
	}
	for i := range posts {
		var existing model.Post
		err := database.Where("title = ?", posts[i].Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := database.Create(&posts[i]).Error; err != nil {
			return err
		}
		logger.Info("Seeded post", map[string]interface{}{
			"title": posts[i].Title,
		})
	}

	return nil
}

func seedUser(database *gorm.DB, name, email, password string, role model.UserRole) (*model.User, error) {
	var user model.User
	err := database.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user = model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := database.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info("Seeded user", map[string]interface{}{
		"email": email,
		"role":  role,
	})
	return &user, nil
}
