package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/service"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/internal/middleware"
)

type PostController struct {
	postService service.PostService
}

func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// Create publishes a new post by the authenticated user
// POST /api/posts
func (ctrl *PostController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid post creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "Please provide a title of up to 100 characters and a body")
		return
	}

	post, err := ctrl.postService.Create(actor, &req)
	if err != nil {
		apperrors.Respond(c, err, "create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    post,
	})
}

// List returns a page of posts
// GET /api/posts
func (ctrl *PostController) List(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	posts, total, err := ctrl.postService.List(query)
	if err != nil {
		apperrors.Respond(c, err, "list posts")
		return
	}

	c.JSON(http.StatusOK, listEnvelope(posts, len(posts), total, query))
}

// GetByID returns a single post with its author
// GET /api/posts/:id
func (ctrl *PostController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := ctrl.postService.GetByID(id)
	if err != nil {
		apperrors.Respond(c, err, "get post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

// Update edits a post; only its author may do this
// PUT /api/posts/:id
func (ctrl *PostController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := ctrl.postService.Update(actor, id, &req)
	if err != nil {
		apperrors.Respond(c, err, "update post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

// Delete removes a post; only its author may do this
// DELETE /api/posts/:id
func (ctrl *PostController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	if err := ctrl.postService.Delete(actor, id); err != nil {
		apperrors.Respond(c, err, "delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}
