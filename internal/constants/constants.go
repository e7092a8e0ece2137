package constants

import "time"

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"
	// ContextKeyUserRole is the gin context key holding the authenticated user's role.
	ContextKeyUserRole = "user_role"

	MinPasswordLength = 8

	// TokenExpiry is the fixed lifetime of issued JWTs.
	TokenExpiry = 24 * time.Hour

	// Pagination bounds for list endpoints.
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// CatalogCacheTTL bounds staleness of the in-process skill/job-title cache.
	CatalogCacheTTL = 10 * time.Minute

	// ExplanationTimeout caps each per-mentor text-generation call.
	ExplanationTimeout = 15 * time.Second

	// SweepInterval is how often expired active mentorships are completed.
	SweepInterval = time.Hour
)
