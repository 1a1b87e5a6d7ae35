package repository

import (
	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(id uint) (*model.Comment, error)
	Update(comment *model.Comment) error
	Delete(id uint) error
	ListByPost(postID uint) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	logger.Debug("Creating comment in database", map[string]interface{}{
		"post_id":   comment.PostID,
		"author_id": comment.AuthorID,
	})

	if err := r.db.Create(comment).Error; err != nil {
		logger.Error("Failed to create comment in database", err, map[string]interface{}{
			"post_id":   comment.PostID,
			"author_id": comment.AuthorID,
		})
		return err
	}
	return nil
}

func (r *commentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Preload("Author").First(&comment, id).Error; err != nil {
		logger.Debug("Failed to find comment by ID in database", map[string]interface{}{
			"comment_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *model.Comment) error {
	logger.Debug("Updating comment in database", map[string]interface{}{
		"comment_id": comment.ID,
	})

	if err := r.db.Save(comment).Error; err != nil {
		logger.Error("Failed to update comment in database", err, map[string]interface{}{
			"comment_id": comment.ID,
		})
		return err
	}
	return nil
}

func (r *commentRepository) Delete(id uint) error {
	logger.Debug("Deleting comment from database", map[string]interface{}{
		"comment_id": id,
	})

	result := r.db.Delete(&model.Comment{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete comment from database", result.Error, map[string]interface{}{
			"comment_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) ListByPost(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		logger.Error("Failed to list comments for post from database", err, map[string]interface{}{
			"post_id": postID,
		})
		return nil, err
	}
	return comments, nil
}
