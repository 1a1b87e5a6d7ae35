package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL, mapped to messages by API clients.

const (
	// Authentication (AUTH_)
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"       // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"      // token expired
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"      // malformed or tampered token
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"      // token blacklisted by logout
	AuthAccountInactive    = "AUTH_ACCOUNT_INACTIVE"   // account deactivated
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"       // duplicate email
	AuthResetTokenInvalid  = "AUTH_RESET_TOKEN_INVALID" // invalid, expired or reused reset token

	// Authorization (AUTHZ_)
	AuthzForbidden      = "AUTHZ_FORBIDDEN"       // no access to resource
	AuthzAdminOnly      = "AUTHZ_ADMIN_ONLY"      // admin role required
	AuthzOwnerOnly      = "AUTHZ_OWNER_ONLY"      // resource owner required
	AuthzFieldForbidden = "AUTHZ_FIELD_FORBIDDEN" // field not permitted for this actor

	// Validation (VALIDATION_)
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // bad request body
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // malformed id in path
	ValidationRequired     = "VALIDATION_REQUIRED"      // required field missing

	// Resources (RESOURCE_)
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // resource absent
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // uniqueness conflict
	UserNotFound          = "USER_NOT_FOUND"
	PostNotFound          = "POST_NOT_FOUND"
	CommentNotFound       = "COMMENT_NOT_FOUND"
	LikeAlreadyExists     = "LIKE_ALREADY_EXISTS" // one like per (user, post)

	// Internal (INTERNAL_)
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalMailError     = "INTERNAL_MAIL_ERROR"
)
