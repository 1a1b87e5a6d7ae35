package service

import (
	"errors"

	"github.com/andresrv/blogpress-backend/internal/app/authz"
	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/pkg/logger"
)

type LikeService interface {
	Like(actor *authz.Actor, postID uint) (*model.Post, error)
	Unlike(actor *authz.Actor, postID uint) (*model.Post, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// Like records the actor's like and returns the post with its refreshed
// counter. Liking the same post twice is a conflict.
func (s *likeService) Like(actor *authz.Actor, postID uint) (*model.Post, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	if err := s.likeRepo.Create(postID, actor.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyLiked) {
			return nil, apperrors.NewConflict(apperrors.LikeAlreadyExists, "This user has liked this post already")
		}
		return nil, err
	}

	logger.Info("Post liked", map[string]interface{}{
		"post_id": postID,
		"user_id": actor.ID,
	})
	return s.postRepo.FindByID(postID)
}

// Unlike removes the actor's like. Removing a like that does not exist is a
// no-op success, so clients can retry freely.
func (s *likeService) Unlike(actor *authz.Actor, postID uint) (*model.Post, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	if err := s.likeRepo.Delete(postID, actor.ID); err != nil {
		if !errors.Is(err, repository.ErrLikeNotFound) {
			return nil, err
		}
		logger.Debug("Unlike with no existing like", map[string]interface{}{
			"post_id": postID,
			"user_id": actor.ID,
		})
	} else {
		logger.Info("Post unliked", map[string]interface{}{
			"post_id": postID,
			"user_id": actor.ID,
		})
	}

	return s.postRepo.FindByID(postID)
}
