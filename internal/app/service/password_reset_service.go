package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"github.com/andresrv/blogpress-backend/pkg/mailer"
	"github.com/andresrv/blogpress-backend/pkg/util"
	"gorm.io/gorm"
)

const resetTokenBytes = 32

// PasswordResetService issues and consumes single-use password reset tokens.
// Only the SHA-256 digest of a token is ever persisted; the plaintext exists
// solely in the email sent to the account owner.
type PasswordResetService interface {
	RequestReset(email, baseURL string) error
	ResetPassword(token, newPassword string) (*model.User, error)
}

type passwordResetService struct {
	userRepo repository.UserRepository
	mailer   mailer.Mailer
	tokenTTL time.Duration
}

func NewPasswordResetService(userRepo repository.UserRepository, m mailer.Mailer, tokenTTL time.Duration) PasswordResetService {
	return &passwordResetService{
		userRepo: userRepo,
		mailer:   m,
		tokenTTL: tokenTTL,
	}
}

func hashResetToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// RequestReset issues a fresh token for the account and emails the reset
// link. Re-issuing replaces any previous token. An unknown email returns nil
// without any side effect, so the endpoint cannot be used to probe accounts.
func (s *passwordResetService) RequestReset(email, baseURL string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	logger.Debug("Password reset requested", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("Password reset requested for unknown email", map[string]interface{}{
				"email": email,
			})
			return nil
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		logger.Error("Failed to generate reset token", err, nil)
		return err
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	if err := s.userRepo.SetResetToken(user.ID, hashResetToken(token), expiresAt); err != nil {
		return err
	}

	resetURL := strings.TrimSuffix(baseURL, "/") + "/auth/reset-password/" + token
	if err := s.mailer.SendPasswordResetEmail(user.Email, resetURL, s.tokenTTL); err != nil {
		logger.Error("Failed to send password reset email", err, map[string]interface{}{
			"user_id": user.ID,
		})
		// The token is already stored; clear it so a failed send does not
		// leave a live token nobody received.
		if clearErr := s.userRepo.UpdatePasswordAndClearResetToken(user.ID, user.PasswordHash); clearErr != nil {
			logger.Error("Failed to clear reset token after send failure", clearErr, map[string]interface{}{
				"user_id": user.ID,
			})
		}
		return err
	}

	logger.Info("Password reset email sent", map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}

// ResetPassword consumes the token: it must hash to a stored digest whose
// expiry is still in the future. The new password hash and the token
// clearing are written in a single update. Returns the account so the
// caller can echo its identity.
func (s *passwordResetService) ResetPassword(token, newPassword string) (*model.User, error) {
	user, err := s.userRepo.FindByResetToken(hashResetToken(token), time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("Password reset with invalid or expired token", nil)
			return nil, apperrors.NewBadRequest(apperrors.AuthResetTokenInvalid, "Invalid or expired token provided")
		}
		return nil, err
	}

	passwordHash, err := util.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash new password", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, err
	}

	if err := s.userRepo.UpdatePasswordAndClearResetToken(user.ID, passwordHash); err != nil {
		return nil, err
	}

	logger.Info("Password reset completed", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}
