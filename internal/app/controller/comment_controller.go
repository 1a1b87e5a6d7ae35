package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/service"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/internal/middleware"
)

type CommentController struct {
	commentService service.CommentService
}

func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create adds a comment to a post
// POST /api/posts/:id/comments
func (ctrl *CommentController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid comment creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "Please provide comment text")
		return
	}

	comment, err := ctrl.commentService.Create(actor, postID, &req)
	if err != nil {
		apperrors.Respond(c, err, "create comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    comment,
	})
}

// ListByPost returns all comments on a post
// GET /api/posts/:id/comments
func (ctrl *CommentController) ListByPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := ctrl.commentService.ListByPost(postID)
	if err != nil {
		apperrors.Respond(c, err, "list comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(comments),
		"data":    comments,
	})
}

// GetByID returns a single comment addressed through its post
// GET /api/posts/:id/comments/:commentId
func (ctrl *CommentController) GetByID(c *gin.Context) {
	if _, ok := parseIDParam(c, "id"); !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	comment, err := ctrl.commentService.GetByID(commentID)
	if err != nil {
		apperrors.Respond(c, err, "get comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    comment,
	})
}

// Update edits a comment; restricted to admins
// PUT /api/posts/:id/comments/:commentId
func (ctrl *CommentController) Update(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := ctrl.commentService.Update(actor, postID, commentID, &req)
	if err != nil {
		apperrors.Respond(c, err, "update comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    comment,
	})
}

// Delete removes a comment; restricted to admins
// DELETE /api/posts/:id/comments/:commentId
func (ctrl *CommentController) Delete(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	if err := ctrl.commentService.Delete(actor, postID, commentID); err != nil {
		apperrors.Respond(c, err, "delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}
