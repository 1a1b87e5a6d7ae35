package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresrv/blogpress-backend/config"
	"github.com/andresrv/blogpress-backend/internal/app/controller"
	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	"github.com/andresrv/blogpress-backend/internal/app/service"
	"github.com/andresrv/blogpress-backend/internal/db"
	"github.com/andresrv/blogpress-backend/internal/middleware"
	"github.com/andresrv/blogpress-backend/pkg/util"
)

type nullMailer struct{}

func (nullMailer) SendPasswordResetEmail(to, resetURL string, ttl time.Duration) error {
	return nil
}

func setupTestServer(t *testing.T) (*gin.Engine, repository.UserRepository) {
	testDB := db.SetupTestDB(t)

	userRepo := repository.NewUserRepository(testDB)
	postRepo := repository.NewPostRepository(testDB)
	commentRepo := repository.NewCommentRepository(testDB)
	likeRepo := repository.NewLikeRepository(testDB)

	authService := service.NewAuthService(userRepo, "test-secret", 2*time.Hour)
	passwordResetService := service.NewPasswordResetService(userRepo, nullMailer{}, 10*time.Minute)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	likeService := service.NewLikeService(likeRepo, postRepo)

	cfg := &config.Config{
		Server: config.ServerConfig{
			GinMode:     gin.TestMode,
			Environment: "test",
			BaseURL:     "http://localhost:8080/api/",
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	r := NewRouter(
		controller.NewAuthController(authService, passwordResetService, cfg.Server.BaseURL),
		controller.NewUserController(userService),
		controller.NewPostController(postService),
		controller.NewCommentController(commentService),
		controller.NewLikeController(likeService),
		middleware.NewAuthMiddleware("test-secret", userRepo),
		cfg,
	)
	return r.Setup(), userRepo
}

func seedAccount(t *testing.T, userRepo repository.UserRepository, name, email string, role model.UserRole) *model.User {
	t.Helper()

	hash, err := util.HashPassword("password123")
	require.NoError(t, err)

	user := &model.User{Name: name, Email: email, PasswordHash: hash, Role: role, IsActive: true}
	require.NoError(t, userRepo.Create(user))
	return user
}

func do(t *testing.T, engine *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()

	w := do(t, engine, "POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Data.Token)
	return response.Data.Token
}

func TestStatusEndpoint(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := do(t, engine, "GET", "/api/status", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OK", response["message"])
	assert.Equal(t, "test", response["environment"])
}

func TestFullPostLifecycle(t *testing.T) {
	engine, userRepo := setupTestServer(t)

	seedAccount(t, userRepo, "Alice", "alice@example.com", model.RoleUser)
	seedAccount(t, userRepo, "Bob", "bob@example.com", model.RoleUser)
	seedAccount(t, userRepo, "Admin", "admin@example.com", model.RoleAdmin)

	alice := login(t, engine, "alice@example.com")
	bob := login(t, engine, "bob@example.com")
	admin := login(t, engine, "admin@example.com")

	// Alice publishes a post.
	w := do(t, engine, "POST", "/api/posts", alice, map[string]string{
		"title": "Hello",
		"body":  "World",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var postResp struct {
		Data model.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &postResp))
	assert.Equal(t, 0, postResp.Data.LikesCount)

	// Bob likes it, the counter moves to one.
	w = do(t, engine, "POST", "/api/posts/1/likes", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &postResp))
	assert.Equal(t, 1, postResp.Data.LikesCount)

	// Liking again conflicts.
	w = do(t, engine, "POST", "/api/posts/1/likes", bob, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Bob comments.
	w = do(t, engine, "POST", "/api/posts/1/comments", bob, map[string]string{"text": "Great read"})
	require.Equal(t, http.StatusCreated, w.Code)

	// The comment is readable through its post.
	w = do(t, engine, "GET", "/api/posts/1/comments/1", bob, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Bob cannot edit his own comment, the admin can.
	w = do(t, engine, "PUT", "/api/posts/1/comments/1", bob, map[string]string{"text": "Edited"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = do(t, engine, "PUT", "/api/posts/1/comments/1", admin, map[string]string{"text": "Edited"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Bob cannot delete Alice's post, and neither can the admin.
	w = do(t, engine, "DELETE", "/api/posts/1", bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = do(t, engine, "DELETE", "/api/posts/1", admin, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Alice deletes her post.
	w = do(t, engine, "DELETE", "/api/posts/1", alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, "GET", "/api/posts/1", alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostReadsRequireAuth(t *testing.T) {
	engine, userRepo := setupTestServer(t)

	seedAccount(t, userRepo, "Alice", "alice@example.com", model.RoleUser)
	alice := login(t, engine, "alice@example.com")

	w := do(t, engine, "POST", "/api/posts", alice, map[string]string{"title": "Hello", "body": "World"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Every post read requires a token.
	for _, path := range []string{"/api/posts", "/api/posts/1", "/api/posts/1/comments"} {
		w := do(t, engine, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	for _, path := range []string{"/api/posts", "/api/posts/1", "/api/posts/1/comments"} {
		w := do(t, engine, "GET", path, alice, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestUserRoutes(t *testing.T) {
	engine, userRepo := setupTestServer(t)

	seedAccount(t, userRepo, "Alice", "alice@example.com", model.RoleUser)
	seedAccount(t, userRepo, "Admin", "admin@example.com", model.RoleAdmin)

	alice := login(t, engine, "alice@example.com")
	admin := login(t, engine, "admin@example.com")

	// Profile returns the caller's own record.
	w := do(t, engine, "GET", "/api/users/profile", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Data model.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "alice@example.com", profile.Data.Email)

	// Alice cannot promote herself; the admin can.
	w = do(t, engine, "PUT", "/api/users/1", alice, map[string]interface{}{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = do(t, engine, "PUT", "/api/users/1", admin, map[string]interface{}{"role": "admin"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown update fields are rejected outright.
	w = do(t, engine, "PUT", "/api/users/1", admin, map[string]interface{}{"password": "sneaky"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Guests cannot list users.
	w = do(t, engine, "GET", "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserListAndDeleteAreAdminOnly(t *testing.T) {
	engine, userRepo := setupTestServer(t)

	seedAccount(t, userRepo, "Alice", "alice@example.com", model.RoleUser)
	seedAccount(t, userRepo, "Bob", "bob@example.com", model.RoleUser)
	seedAccount(t, userRepo, "Admin", "admin@example.com", model.RoleAdmin)

	alice := login(t, engine, "alice@example.com")
	admin := login(t, engine, "admin@example.com")

	// Listing accounts is an admin operation.
	w := do(t, engine, "GET", "/api/users", alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = do(t, engine, "GET", "/api/users", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// So is deletion; not even the account itself may do it.
	w = do(t, engine, "DELETE", "/api/users/1", alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = do(t, engine, "DELETE", "/api/users/2", alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = do(t, engine, "DELETE", "/api/users/2", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
