package service

import (
	"strings"

	"github.com/andresrv/blogpress-backend/internal/app/authz"
	"github.com/andresrv/blogpress-backend/internal/app/model"
	"github.com/andresrv/blogpress-backend/internal/app/repository"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
	"github.com/andresrv/blogpress-backend/pkg/logger"
	"github.com/andresrv/blogpress-backend/pkg/util"
)

type UserService interface {
	Create(req *model.CreateUserRequest) (*model.User, error)
	GetByID(actor *authz.Actor, id uint) (*model.User, error)
	Update(actor *authz.Actor, id uint, fields model.UserUpdateFields) (*model.User, error)
	Delete(actor *authz.Actor, id uint) error
	List(query *model.ListQuery) ([]model.User, int64, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(req *model.CreateUserRequest) (*model.User, error) {
	logger.Debug("Creating user", map[string]interface{}{
		"email": req.Email,
	})

	passwordHash, err := util.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err, nil)
		return nil, err
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("User created", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

func (s *userService) GetByID(actor *authz.Actor, id uint) (*model.User, error) {
	if err := authz.Evaluate(actor, authz.ActionSelfOrAdmin, &id); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(id)
}

// Update applies the allow-listed fields after the authorization check.
// Field-level policy lives in the authz package; this method only maps the
// approved fields onto the row.
func (s *userService) Update(actor *authz.Actor, id uint, fields model.UserUpdateFields) (*model.User, error) {
	if err := authz.Evaluate(actor, authz.ActionSelfOrAdmin, &id); err != nil {
		return nil, err
	}
	if err := authz.CheckUserUpdateFields(actor, fields); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	for key, value := range fields {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				user.Name = strings.TrimSpace(v)
			}
		case "email":
			if v, ok := value.(string); ok {
				user.Email = strings.ToLower(strings.TrimSpace(v))
			}
		case "role":
			v, ok := value.(string)
			if !ok || (model.UserRole(v) != model.RoleUser && model.UserRole(v) != model.RoleAdmin) {
				return nil, apperrors.NewBadRequest(apperrors.ValidationInvalidInput, "Role must be either 'user' or 'admin'")
			}
			user.Role = model.UserRole(v)
		case "isActive":
			if v, ok := value.(bool); ok {
				user.IsActive = v
			}
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("User updated", map[string]interface{}{
		"user_id":  user.ID,
		"actor_id": actor.ID,
	})
	return user, nil
}

// Delete is restricted to admins; accounts cannot remove themselves.
func (s *userService) Delete(actor *authz.Actor, id uint) error {
	if err := authz.Evaluate(actor, authz.ActionAdminOnly, nil); err != nil {
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("User deleted", map[string]interface{}{
		"user_id":  id,
		"actor_id": actor.ID,
	})
	return nil
}

func (s *userService) List(query *model.ListQuery) ([]model.User, int64, error) {
	return s.userRepo.List(query)
}
