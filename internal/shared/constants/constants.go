package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers        = "users"
	TableTickets      = "tickets"
	TableComments     = "comments"
	TableCategories   = "categories"
	TableRoleRequests = "role_requests"
	TableTicketVotes  = "ticket_votes"
	TableCommentVotes = "comment_votes"

	// Field length limits shared between validation and schema
	MaxNameLength         = 50
	MaxSubjectLength      = 200
	MaxDescriptionLength  = 2000
	MaxCommentLength      = 2000
	MaxReasonLength       = 500
	MaxCategoryNameLength = 50
	MaxCategoryDescLength = 200

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
