package utils

// ContextKey keys request-scoped values set by middleware (user id, email).
type ContextKey string
