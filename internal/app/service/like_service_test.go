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

func setupLikeServiceTest(t *testing.T) (LikeService, PostService, repository.UserRepository) {
	testDB := db.SetupTestDB(t)
	userRepo := repository.NewUserRepository(testDB)
	postRepo := repository.NewPostRepository(testDB)
	likeRepo := repository.NewLikeRepository(testDB)
	return NewLikeService(likeRepo, postRepo), NewPostService(postRepo), userRepo
}

func TestLikeService_Like(t *testing.T) {
	likeSvc, postSvc, userRepo := setupLikeServiceTest(t)

	author := createTestUser(t, userRepo, "Author", "author@example.com", "password123", model.RoleUser, true)
	fan := createTestUser(t, userRepo, "Fan", "fan@example.com", "password123", model.RoleUser, true)

	post, err := postSvc.Create(actorFor(author), &model.CreatePostRequest{Title: "Post", Body: "Body"})
	require.NoError(t, err)
	require.Equal(t, 0, post.LikesCount)

	liked, err := likeSvc.Like(actorFor(fan), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikesCount)

	// A second like from the same user is a conflict and the counter
	// stays put.
	_, err = likeSvc.Like(actorFor(fan), post.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, apperrors.LikeAlreadyExists, appErr.Code)

	current, err := postSvc.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.LikesCount)

	// A different user adds a second like.
	liked, err = likeSvc.Like(actorFor(author), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.LikesCount)
}

func TestLikeService_Like_MissingPost(t *testing.T) {
	likeSvc, _, userRepo := setupLikeServiceTest(t)

	fan := createTestUser(t, userRepo, "Fan", "fan@example.com", "password123", model.RoleUser, true)

	_, err := likeSvc.Like(actorFor(fan), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLikeService_Unlike(t *testing.T) {
	likeSvc, postSvc, userRepo := setupLikeServiceTest(t)

	author := createTestUser(t, userRepo, "Author", "author@example.com", "password123", model.RoleUser, true)
	fan := createTestUser(t, userRepo, "Fan", "fan@example.com", "password123", model.RoleUser, true)

	post, err := postSvc.Create(actorFor(author), &model.CreatePostRequest{Title: "Post", Body: "Body"})
	require.NoError(t, err)

	_, err = likeSvc.Like(actorFor(fan), post.ID)
	require.NoError(t, err)

	unliked, err := likeSvc.Unlike(actorFor(fan), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.LikesCount)

	// Removing a like that is not there succeeds and the counter never
	// goes negative.
	unliked, err = likeSvc.Unlike(actorFor(fan), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.LikesCount)

	_, err = likeSvc.Unlike(actorFor(fan), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
