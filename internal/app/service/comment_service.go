package service

import (
	"errors"

	"github.com/andresrv/blogpress-backend/internal/app/authz"
	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"gorm.io/gorm"
)

type CommentService interface {
	Create(actor *authz.Actor, postID uint, req *model.CreateCommentRequest) (*model.Comment, error)
	GetByID(id uint) (*model.Comment, error)
	Update(actor *authz.Actor, postID, commentID uint, req *model.UpdateCommentRequest) (*model.Comment, error)
	Delete(actor *authz.Actor, postID, commentID uint) error
	ListByPost(postID uint) ([]model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) Create(actor *authz.Actor, postID uint, req *model.CreateCommentRequest) (*model.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Text:     req.Text,
		PostID:   postID,
		AuthorID: actor.ID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	logger.Info("Comment created", map[string]interface{}{
		"comment_id": comment.ID,
		"post_id":    postID,
		"author_id":  actor.ID,
	})
	return s.commentRepo.FindByID(comment.ID)
}

func (s *commentService) GetByID(id uint) (*model.Comment, error) {
	return s.commentRepo.FindByID(id)
}

// loadForMutation fetches the comment and verifies it belongs to the post
// named in the URL. A mismatch is a 403: the caller addressed a comment
// through the wrong post, which a well-behaved client never does.
func (s *commentService) loadForMutation(actor *authz.Actor, postID, commentID uint) (*model.Comment, error) {
	if err := authz.Evaluate(actor, authz.ActionAdminOnly, nil); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.CommentNotFound, "Comment not found")
		}
		return nil, err
	}

	if comment.PostID != postID {
		logger.Debug("Comment mutation denied: post mismatch", map[string]interface{}{
			"comment_id": commentID,
			"post_id":    postID,
			"actor_id":   actor.ID,
		})
		return nil, apperrors.NewForbidden(apperrors.AuthzForbidden, "Comment does not belong to this post")
	}

	return comment, nil
}

// Update is admin-only; even the comment's author cannot edit it.
func (s *commentService) Update(actor *authz.Actor, postID, commentID uint, req *model.UpdateCommentRequest) (*model.Comment, error) {
	comment, err := s.loadForMutation(actor, postID, commentID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	logger.Info("Comment updated", map[string]interface{}{
		"comment_id": comment.ID,
		"actor_id":   actor.ID,
	})
	return comment, nil
}

func (s *commentService) Delete(actor *authz.Actor, postID, commentID uint) error {
	comment, err := s.loadForMutation(actor, postID, commentID)
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(comment.ID); err != nil {
		return err
	}

	logger.Info("Comment deleted", map[string]interface{}{
		"comment_id": comment.ID,
		"actor_id":   actor.ID,
	})
	return nil
}

func (s *commentService) ListByPost(postID uint) ([]model.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}
