package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresrv/blogpress-backend/internal/app/service"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/internal/middleware"
)

type LikeController struct {
	likeService service.LikeService
}

func NewLikeController(likeService service.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// Like records the authenticated user's like on a post
// POST /api/posts/:id/likes
func (ctrl *LikeController) Like(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	post, err := ctrl.likeService.Like(actor, postID)
	if err != nil {
		apperrors.Respond(c, err, "like post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

// Unlike removes the like; removing a non-existent like still succeeds
// DELETE /api/posts/:id/likes
func (ctrl *LikeController) Unlike(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	post, err := ctrl.likeService.Unlike(actor, postID)
	if err != nil {
		apperrors.Respond(c, err, "unlike post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}
