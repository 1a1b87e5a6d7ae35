package service

import (
	"strings"

	"github.com/andresrv/blogpress-backend/internal/app/authz"
	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	"github.com/andresrv/blogpress-backend/pkg/logger"
)

type PostService interface {
	Create(actor *authz.Actor, req *model.CreatePostRequest) (*model.Post, error)
	GetByID(id uint) (*model.Post, error)
	Update(actor *authz.Actor, id uint, req *model.UpdatePostRequest) (*model.Post, error)
	Delete(actor *authz.Actor, id uint) error
	List(query *model.ListQuery) ([]model.Post, int64, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) Create(actor *authz.Actor, req *model.CreatePostRequest) (*model.Post, error) {
	post := &model.Post{
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		AuthorID: actor.ID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	logger.Info("Post created", map[string]interface{}{
		"post_id":   post.ID,
		"author_id": actor.ID,
	})
	return s.postRepo.FindByID(post.ID)
}

func (s *postService) GetByID(id uint) (*model.Post, error) {
	return s.postRepo.FindByID(id)
}

// Update is owner-only. Admins get no bypass here: moderation of posts runs
// through deletion by the owner, not silent edits by staff.
func (s *postService) Update(actor *authz.Actor, id uint, req *model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := authz.Evaluate(actor, authz.ActionUpdateOwnResource, &post.AuthorID); err != nil {
		logger.Debug("Post update denied", map[string]interface{}{
			"post_id":  id,
			"actor_id": actor.ID,
		})
		return nil, err
	}

	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		post.Body = *req.Body
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	logger.Info("Post updated", map[string]interface{}{
		"post_id":  post.ID,
		"actor_id": actor.ID,
	})
	return post, nil
}

func (s *postService) Delete(actor *authz.Actor, id uint) error {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := authz.Evaluate(actor, authz.ActionDeleteOwnResource, &post.AuthorID); err != nil {
		logger.Debug("Post delete denied", map[string]interface{}{
			"post_id":  id,
			"actor_id": actor.ID,
		})
		return err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Post deleted", map[string]interface{}{
		"post_id":  id,
		"actor_id": actor.ID,
	})
	return nil
}

func (s *postService) List(query *model.ListQuery) ([]model.Post, int64, error) {
	return s.postRepo.List(query)
}
