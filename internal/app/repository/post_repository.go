package repository

import (
	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	Update(post *model.Post) error
	Delete(id uint) error
	List(query *model.ListQuery) ([]model.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

var postSortColumns = map[string]string{
	"title":      "title",
	"createdAt":  "created_at",
	"likesCount": "likes_count",
}

func (r *postRepository) Create(post *model.Post) error {
	logger.Debug("Creating post in database", map[string]interface{}{
		"author_id": post.AuthorID,
	})

	if err := r.db.Create(post).Error; err != nil {
		logger.Error("Failed to create post in database", err, map[string]interface{}{
			"author_id": post.AuthorID,
		})
		return err
	}
	return nil
}

func (r *postRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		logger.Debug("Failed to find post by ID in database", map[string]interface{}{
			"post_id": id,
			"error":   err.Error(),
		})
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(post *model.Post) error {
	logger.Debug("Updating post in database", map[string]interface{}{
		"post_id": post.ID,
	})

	if err := r.db.Save(post).Error; err != nil {
		logger.Error("Failed to update post in database", err, map[string]interface{}{
			"post_id": post.ID,
		})
		return err
	}
	return nil
}

func (r *postRepository) Delete(id uint) error {
	logger.Debug("Deleting post from database", map[string]interface{}{
		"post_id": id,
	})

	result := r.db.Delete(&model.Post{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete post from database", result.Error, map[string]interface{}{
			"post_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) List(query *model.ListQuery) ([]model.Post, int64, error) {
	var total int64
	if err := r.db.Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := r.db.
		Preload("Author").
		Order(sortClause(query.Sort, postSortColumns, "created_at DESC")).
		Limit(query.Limit).
		Offset(query.Offset()).
		Find(&posts).Error
	if err != nil {
		logger.Error("Failed to list posts from database", err, nil)
		return nil, 0, err
	}

	return posts, total, nil
}
