package errors

// Generic error codes
const (
	ErrInternalServer  = "ERR_INTERNAL_SERVER"
	ErrTooManyRequests = "ERR_TOO_MANY_REQUESTS"
)

// User error codes
const (
	ErrUserNotFound       = "ERR_USER_NOT_FOUND"
	ErrInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrUserDisabled       = "ERR_USER_DISABLED"
	ErrEmailTaken         = "ERR_EMAIL_TAKEN"
)

// Resource error codes
const (
	ErrArticleNotFound  = "ERR_ARTICLE_NOT_FOUND"
	ErrFileNotFound     = "ERR_FILE_NOT_FOUND"
	ErrCategoryNotFound = "ERR_CATEGORY_NOT_FOUND"
	ErrEmptyUpdate      = "ERR_EMPTY_UPDATE"
)
