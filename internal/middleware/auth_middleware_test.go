package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	"github.com/andresrv/blogpress-backend/internal/db"
	"github.com/andresrv/blogpress-backend/pkg/util"
)

const testSecret = "test-secret"

func setupAuthMiddlewareTest(t *testing.T) (*gin.Engine, repository.UserRepository) {
	gin.SetMode(gin.TestMode)

	testDB := db.SetupTestDB(t)
	userRepo := repository.NewUserRepository(testDB)
	authMiddleware := NewAuthMiddleware(testSecret, userRepo)

	router := gin.New()
	router.GET("/protected", authMiddleware.Authenticate(), func(c *gin.Context) {
		actor, ok := GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"success": true, "actorId": actor.ID})
	})
	router.GET("/admin", authMiddleware.Authenticate(), authMiddleware.RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	return router, userRepo
}

func createUser(t *testing.T, userRepo repository.UserRepository, email string, role model.UserRole, active bool) *model.User {
	t.Helper()

	hash, err := util.HashPassword("password123")
	require.NoError(t, err)

	user := &model.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, userRepo.Create(user))
	return user
}

func request(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	router, userRepo := setupAuthMiddlewareTest(t)

	user := createUser(t, userRepo, "user@example.com", model.RoleUser, true)
	inactive := createUser(t, userRepo, "inactive@example.com", model.RoleUser, false)
	deleted := createUser(t, userRepo, "deleted@example.com", model.RoleUser, true)
	require.NoError(t, userRepo.Delete(deleted.ID))

	validToken, err := util.GenerateToken(user.ID, user.Email, string(user.Role), testSecret, 2*time.Hour)
	require.NoError(t, err)
	inactiveToken, err := util.GenerateToken(inactive.ID, inactive.Email, string(inactive.Role), testSecret, 2*time.Hour)
	require.NoError(t, err)
	deletedToken, err := util.GenerateToken(deleted.ID, deleted.Email, string(deleted.Role), testSecret, 2*time.Hour)
	require.NoError(t, err)
	expiredToken, err := util.GenerateToken(user.ID, user.Email, string(user.Role), testSecret, -time.Minute)
	require.NoError(t, err)
	wrongSecretToken, err := util.GenerateToken(user.ID, user.Email, string(user.Role), "other-secret", 2*time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"Valid token", "Bearer " + validToken, http.StatusOK},
		{"Missing header", "", http.StatusUnauthorized},
		{"Malformed header", "Token " + validToken, http.StatusUnauthorized},
		{"Expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"Wrong signing secret", "Bearer " + wrongSecretToken, http.StatusUnauthorized},
		{"Deactivated account", "Bearer " + inactiveToken, http.StatusUnauthorized},
		{"Deleted account", "Bearer " + deletedToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(router, "/protected", tt.authHeader)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	router, userRepo := setupAuthMiddlewareTest(t)

	user := createUser(t, userRepo, "user@example.com", model.RoleUser, true)
	admin := createUser(t, userRepo, "admin@example.com", model.RoleAdmin, true)

	userToken, err := util.GenerateToken(user.ID, user.Email, string(user.Role), testSecret, 2*time.Hour)
	require.NoError(t, err)
	adminToken, err := util.GenerateToken(admin.ID, admin.Email, string(admin.Role), testSecret, 2*time.Hour)
	require.NoError(t, err)

	w := request(router, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(router, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
