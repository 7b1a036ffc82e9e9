package middleware

// contextKey is a private type for context keys defined in this package.
type contextKey string
