// PrinceMahmood | 2026
// context.go

package middleware

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UserEmailKey contextKey = "user_email"
	UserNameKey  contextKey = "user_name"
	TokenIDKey   contextKey = "token_id"
)
