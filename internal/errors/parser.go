package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ParseError converts store and driver errors into AppErrors so that the
// response boundary never leaks raw database detail. Known AppErrors are
// returned unchanged.
func ParseError(err error, context string) *AppError {
	if err == nil {
		return NewInternal("")
	}

	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFound(ResourceNotFound, notFoundMessage(context))
	}

	errStr := strings.ToLower(err.Error())

	// Unique constraint violations (Postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// Foreign key violations (Postgres 23503)
	if strings.Contains(errStr, "foreign key constraint") {
		return NewNotFound(ResourceNotFound, "Referenced resource does not exist")
	}

	// Not-null violations (Postgres 23502)
	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return NewBadRequest(ValidationRequired, "A required field is missing")
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return NewInternal("A backing service is unavailable, please try again later")
	}

	return NewInternal(err.Error())
}

func parseDuplicateKeyError(errStr string) *AppError {
	if strings.Contains(errStr, "email") {
		return NewConflict(AuthEmailAlreadyExists, "Email already exists")
	}
	if strings.Contains(errStr, "post_id") && strings.Contains(errStr, "user_id") {
		return NewConflict(LikeAlreadyExists, "This user has liked this post already")
	}
	return NewConflict(ResourceAlreadyExists, "Resource already exists")
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "user"):
		return "User not found"
	case strings.Contains(contextLower, "post"):
		return "Post not found"
	case strings.Contains(contextLower, "comment"):
		return "Comment not found"
	case strings.Contains(contextLower, "like"):
		return "Like not found"
	default:
		return "Resource not found"
	}
}
