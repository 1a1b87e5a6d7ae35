package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/service"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/internal/middleware"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Create registers a new account
// POST /api/users
func (ctrl *UserController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid user creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "Please provide name, email and a password of at least 6 characters")
		return
	}

	user, err := ctrl.userService.Create(&req)
	if err != nil {
		apperrors.Respond(c, err, "create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    user,
	})
}

// List returns a page of users
// GET /api/users
func (ctrl *UserController) List(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	users, total, err := ctrl.userService.List(query)
	if err != nil {
		apperrors.Respond(c, err, "list users")
		return
	}

	c.JSON(http.StatusOK, listEnvelope(users, len(users), total, query))
}

// Profile returns the authenticated user's own record
// GET /api/users/profile
func (ctrl *UserController) Profile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	user, err := ctrl.userService.GetByID(actor, actor.ID)
	if err != nil {
		apperrors.Respond(c, err, "get profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// GetByID returns a single user
// GET /api/users/:id
func (ctrl *UserController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	user, err := ctrl.userService.GetByID(actor, id)
	if err != nil {
		apperrors.Respond(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// Update applies a partial update. The body is bound as a raw map so the
// field allow-list can reject keys the DTO would silently drop.
// PUT /api/users/:id
func (ctrl *UserController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	var fields model.UserUpdateFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		log.Warn("Invalid user update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := ctrl.userService.Update(actor, id, fields)
	if err != nil {
		apperrors.Respond(c, err, "update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// Delete removes a user account
// DELETE /api/users/:id
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	if err := ctrl.userService.Delete(actor, id); err != nil {
		apperrors.Respond(c, err, "delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}
