package service

import (
	"testing"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	"github.com/andresrv/blogpress-backend/internal/db"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPostServiceTest(t *testing.T) (PostService, repository.UserRepository, repository.PostRepository) {
	testDB := db.SetupTestDB(t)
	userRepo := repository.NewUserRepository(testDB)
	postRepo := repository.NewPostRepository(testDB)
	return NewPostService(postRepo), userRepo, postRepo
}

func TestPostService_CreateAndGet(t *testing.T) {
	svc, userRepo, _ := setupPostServiceTest(t)

	author := createTestUser(t, userRepo, "Author", "author@example.com", "password123", model.RoleUser, true)

	post, err := svc.Create(actorFor(author), &model.CreatePostRequest{
		Title: "  First Post  ",
		Body:  "Hello world",
	})
	require.NoError(t, err)
	assert.Equal(t, "First Post", post.Title)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, 0, post.LikesCount)
	assert.Equal(t, author.Email, post.Author.Email)

	got, err := svc.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostService_Update(t *testing.T) {
	svc, userRepo, _ := setupPostServiceTest(t)

	author := createTestUser(t, userRepo, "Author", "author@example.com", "password123", model.RoleUser, true)
	other := createTestUser(t, userRepo, "Other", "other@example.com", "password123", model.RoleUser, true)
	admin := createTestUser(t, userRepo, "Admin", "admin@example.com", "password123", model.RoleAdmin, true)

	post, err := svc.Create(actorFor(author), &model.CreatePostRequest{Title: "Original", Body: "Body"})
	require.NoError(t, err)

	newTitle := "Edited"

	// Only the author may edit; admins get no bypass on posts.
	for _, actor := range []*model.User{other, admin} {
		_, err := svc.Update(actorFor(actor), post.ID, &model.UpdatePostRequest{Title: &newTitle})
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 403, appErr.Status)
	}

	updated, err := svc.Update(actorFor(author), post.ID, &model.UpdatePostRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, "Body", updated.Body)
}

func TestPostService_Delete(t *testing.T) {
	svc, userRepo, postRepo := setupPostServiceTest(t)

	author := createTestUser(t, userRepo, "Author", "author@example.com", "password123", model.RoleUser, true)
	admin := createTestUser(t, userRepo, "Admin", "admin@example.com", "password123", model.RoleAdmin, true)

	post, err := svc.Create(actorFor(author), &model.CreatePostRequest{Title: "To Delete", Body: "Body"})
	require.NoError(t, err)

	err = svc.Delete(actorFor(admin), post.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Status)

	require.NoError(t, svc.Delete(actorFor(author), post.ID))
	_, err = postRepo.FindByID(post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostService_List(t *testing.T) {
	svc, userRepo, _ := setupPostServiceTest(t)

	author := createTestUser(t, userRepo, "Author", "author@example.com", "password123", model.RoleUser, true)

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := svc.Create(actorFor(author), &model.CreatePostRequest{Title: title, Body: "Body"})
		require.NoError(t, err)
	}

	posts, total, err := svc.List(&model.ListQuery{Page: 1, Limit: 25})
	require.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, author.Email, posts[0].Author.Email)
}
