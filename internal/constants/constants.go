package constants

const (
	// Session and context keys
	ContextKeyUserID  = "user_id"
	ContextKeyUser    = "current_user"
	ContextKeyProject = "project"
	SessionCookieName = "migration_session"

	// Pagination
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Users
	MinPasswordLength = 4
	MinUsernameLength = 3
	MaxUsernameLength = 50

	// Projects
	MinEstimatedDays        = 1
	MaxEstimatedDays        = 365
	DefaultEstimatedDays    = 30
	MaxProjectNameLength    = 255
	MaxIDAllocationAttempts = 3
)
