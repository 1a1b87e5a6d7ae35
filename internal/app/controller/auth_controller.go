package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresrv/blogpress-backend/internal/app/service"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/internal/middleware"
)

type AuthController struct {
	authService          service.AuthService
	passwordResetService service.PasswordResetService
	baseURL              string
}

func NewAuthController(authService service.AuthService, passwordResetService service.PasswordResetService, baseURL string) *AuthController {
	return &AuthController{
		authService:          authService,
		passwordResetService: passwordResetService,
		baseURL:              baseURL,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles credential login
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "Please provide an email and password")
		return
	}

	user, token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn("Login failed: invalid credentials", map[string]interface{}{
				"email": req.Email,
			})
			apperrors.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, service.ErrAccountInactive):
			apperrors.Unauthorized(c, "Account has been deactivated")
		default:
			log.Error("Login failed", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.Respond(c, err, "login")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User logged in successfully",
		"data": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"isActive": user.IsActive,
			"token":    token,
		},
	})
}

// Logout revokes the current token
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		apperrors.Unauthorized(c, "Not authorized to access this route")
		return
	}

	if err := ctrl.authService.Logout(c.Request.Context(), token); err != nil {
		apperrors.Respond(c, err, "logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// ForgotPassword issues a reset token and emails the link. The response is
// the same whether or not the email belongs to an account.
// POST /api/auth/forgot-password
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Please provide a valid email")
		return
	}

	if err := ctrl.passwordResetService.RequestReset(req.Email, ctrl.baseURL); err != nil {
		log.Error("Password reset request failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, "Email could not be sent")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    "Email sent",
	})
}

// ResetPassword consumes a reset token and sets the new password
// PUT /api/auth/reset-password/:resettoken
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Please provide a new password of at least 6 characters")
		return
	}

	token := c.Param("resettoken")
	user, err := ctrl.passwordResetService.ResetPassword(token, req.Password)
	if err != nil {
		log.Warn("Password reset failed", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.Respond(c, err, "reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully",
		"data": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
