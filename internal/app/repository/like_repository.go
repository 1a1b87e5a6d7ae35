package repository

import (
	"errors"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrAlreadyLiked = errors.New("user has already liked this post")
	ErrLikeNotFound = errors.New("like not found")
)

type LikeRepository interface {
	Create(postID, userID uint) error
	Delete(postID, userID uint) error
	Exists(postID, userID uint) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the like and bumps the post counter in one transaction so
// the denormalized likes_count never drifts from the likes table.
func (r *likeRepository) Create(postID, userID uint) error {
	logger.Debug("Creating like in database", map[string]interface{}{
		"post_id": postID,
		"user_id": userID,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Like{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyLiked
		}

		like := &model.Like{PostID: postID, UserID: userID}
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error
	})
	if err != nil && !errors.Is(err, ErrAlreadyLiked) {
		logger.Error("Failed to create like in database", err, map[string]interface{}{
			"post_id": postID,
			"user_id": userID,
		})
	}
	return err
}

// Delete removes the like and decrements the counter. Returns ErrLikeNotFound
// when no row matched; the counter is left untouched in that case.
func (r *likeRepository) Delete(postID, userID uint) error {
	logger.Debug("Deleting like from database", map[string]interface{}{
		"post_id": postID,
		"user_id": userID,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLikeNotFound
		}

		return tx.Model(&model.Post{}).
			Where("id = ? AND likes_count > 0", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error
	})
	if err != nil && !errors.Is(err, ErrLikeNotFound) {
		logger.Error("Failed to delete like from database", err, map[string]interface{}{
			"post_id": postID,
			"user_id": userID,
		})
	}
	return err
}

func (r *likeRepository) Exists(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
