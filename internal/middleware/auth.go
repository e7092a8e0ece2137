package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink/mentorship-api/internal/constants"
	apierrors "github.com/mentorlink/mentorship-api/internal/errors"
	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/utils"
)

// RequireAuth verifies the bearer token and stores the caller's identity in
// the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserRole, claims.Role)
		c.Next()
	}
}

// RequireRole restricts a route to callers with the given role. Must run
// after RequireAuth.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := GetUserRole(c)
		if !exists || current != role {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetUserRole retrieves the current user's role from context
func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	value, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return "", false
	}

	role, ok := value.(models.UserRole)
	if !ok {
		return "", false
	}
	return role, true
}
