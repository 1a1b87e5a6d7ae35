package repository

import (
	"time"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
	List(query *model.ListQuery) ([]model.User, int64, error)

	// Reset-token state. No other component writes these columns.
	SetResetToken(userID uint, tokenHash string, expiresAt time.Time) error
	FindByResetToken(tokenHash string, now time.Time) (*model.User, error)
	UpdatePasswordAndClearResetToken(userID uint, passwordHash string) error
	ClearExpiredResetTokens(now time.Time) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"email": user.Email,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		logger.Debug("Failed to find user by ID in database", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		logger.Debug("Failed to find user by email in database", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	logger.Debug("Updating user in database", map[string]interface{}{
		"user_id": user.ID,
	})

	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}
	return nil
}

func (r *userRepository) Delete(id uint) error {
	logger.Debug("Deleting user from database", map[string]interface{}{
		"user_id": id,
	})

	result := r.db.Delete(&model.User{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete user from database", result.Error, map[string]interface{}{
			"user_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) List(query *model.ListQuery) ([]model.User, int64, error) {
	var total int64
	if err := r.db.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := r.db.
		Order(sortClause(query.Sort, userSortColumns, "created_at DESC")).
		Limit(query.Limit).
		Offset(query.Offset()).
		Find(&users).Error
	if err != nil {
		logger.Error("Failed to list users from database", err, nil)
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) SetResetToken(userID uint, tokenHash string, expiresAt time.Time) error {
	logger.Debug("Storing reset token hash in database", map[string]interface{}{
		"user_id": userID,
	})

	err := r.db.Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token_hash":       tokenHash,
			"reset_token_expires_at": expiresAt,
		}).Error
	if err != nil {
		logger.Error("Failed to store reset token hash in database", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return err
}

func (r *userRepository) FindByResetToken(tokenHash string, now time.Time) (*model.User, error) {
	var user model.User
	err := r.db.
		Where("reset_token_hash = ? AND reset_token_expires_at > ?", tokenHash, now).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePasswordAndClearResetToken writes the new password hash and clears
// both reset columns in one statement, so a token can never survive a
// successful reset nor be lost on a failed one.
func (r *userRepository) UpdatePasswordAndClearResetToken(userID uint, passwordHash string) error {
	err := r.db.Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash":          passwordHash,
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		}).Error
	if err != nil {
		logger.Error("Failed to update password in database", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return err
}

func (r *userRepository) ClearExpiredResetTokens(now time.Time) (int64, error) {
	result := r.db.Model(&model.User{}).
		Where("reset_token_expires_at IS NOT NULL AND reset_token_expires_at <= ?", now).
		Updates(map[string]interface{}{
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		})
	if result.Error != nil {
		logger.Error("Failed to clear expired reset tokens from database", result.Error, nil)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
