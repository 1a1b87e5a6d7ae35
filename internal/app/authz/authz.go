// Package authz is the access-control decision layer. Every mutating or
// restricted-read endpoint funnels its permission check through Evaluate so
// the policy lives in one place instead of per-controller conditionals.
//
// The policy is deliberately asymmetric and must stay that way:
// posts may only be mutated by their exact author (admin does NOT bypass
// ownership), while comments may only be mutated by admins (the comment's own
// author is denied).
package authz

import (
	"fmt"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
)

// Action is the closed set of permission checks a service can request.
type Action int

const (
	// ActionUpdateOwnResource allows only the exact owner (posts)
	ActionUpdateOwnResource Action = iota
	// ActionDeleteOwnResource allows only the exact owner (posts)
	ActionDeleteOwnResource
	// ActionSelfOrAdmin allows the owner or any admin (user profiles)
	ActionSelfOrAdmin
	// ActionAdminOnly allows admins regardless of ownership (comment
	// mutation, user listing and deletion)
	ActionAdminOnly
)

// Actor is the authenticated identity a decision is made for.
type Actor struct {
	ID     uint
	Role   model.UserRole
	Active bool
}

// Evaluate decides whether actor may perform action on a resource owned by
// resourceOwnerID (nil when the action has no single owner). It is a pure
// function: the only outputs are nil (allow) or a typed Unauthorized or
// Forbidden error. Logging is the caller's business.
//
// Rules in priority order:
//  1. missing or inactive actor         -> Unauthorized
//  2. admin-only action, non-admin      -> Forbidden
//  3. self-or-admin: owner or admin     -> allow, else Forbidden
//  4. own-resource: exact owner only    -> allow, else Forbidden (no admin bypass)
func Evaluate(actor *Actor, action Action, resourceOwnerID *uint) error {
	if actor == nil || !actor.Active {
		return apperrors.NewUnauthorized(apperrors.AuthUnauthorized, "Not authorized")
	}

	switch action {
	case ActionAdminOnly:
		if actor.Role != model.RoleAdmin {
			return apperrors.NewForbidden(apperrors.AuthzAdminOnly, "User is not authorized to access this resource")
		}
		return nil

	case ActionSelfOrAdmin:
		if actor.Role == model.RoleAdmin {
			return nil
		}
		if resourceOwnerID != nil && actor.ID == *resourceOwnerID {
			return nil
		}
		return apperrors.NewForbidden(apperrors.AuthzForbidden, "Not authorized to access this user profile")

	case ActionUpdateOwnResource, ActionDeleteOwnResource:
		if resourceOwnerID != nil && actor.ID == *resourceOwnerID {
			return nil
		}
		return apperrors.NewForbidden(apperrors.AuthzOwnerOnly, "User is not allowed to modify this resource")
	}

	return apperrors.NewForbidden(apperrors.AuthzForbidden, "Access denied")
}

var (
	userUpdateAllowList = map[string]bool{
		"name":     true,
		"email":    true,
		"role":     true,
		"isActive": true,
	}
	userUpdateAdminOnly = map[string]bool{
		"role":     true,
		"isActive": true,
	}
)

// CheckUserUpdateFields applies the field-level profile-update policy:
// any field outside the allow-list is rejected outright, even for admins,
// and role/isActive may only be set by an admin.
func CheckUserUpdateFields(actor *Actor, fields model.UserUpdateFields) error {
	if actor == nil || !actor.Active {
		return apperrors.NewUnauthorized(apperrors.AuthUnauthorized, "Not authorized")
	}

	for field := range fields {
		if !userUpdateAllowList[field] {
			return apperrors.NewForbidden(
				apperrors.AuthzFieldForbidden,
				fmt.Sprintf("'%s' is not allowed for update", field),
			)
		}
		if userUpdateAdminOnly[field] && actor.Role != model.RoleAdmin {
			return apperrors.NewForbidden(
				apperrors.AuthzFieldForbidden,
				fmt.Sprintf("Not authorized to update '%s'", field),
			)
		}
	}

	return nil
}
