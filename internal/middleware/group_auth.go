package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink/mentorship-api/internal/database"
	"github.com/mentorlink/mentorship-api/internal/models"
)

// RequireGroupAccess resolves the :id route parameter to a group and stores
// it in the request context.
func RequireGroupAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupIDStr := c.Param("id")
		groupID, err := strconv.ParseUint(groupIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid group ID",
			})
			c.Abort()
			return
		}

		var group models.Group
		if err := database.GetDB().First(&group, groupID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Group not found",
			})
			c.Abort()
			return
		}

		c.Set("group", group)
		c.Next()
	}
}

// RequireGroupCreator checks that the caller created the group loaded by
// RequireGroupAccess.
func RequireGroupCreator() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupInterface, exists := c.Get("group")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Group access required",
			})
			c.Abort()
			return
		}

		group, ok := groupInterface.(models.Group)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Invalid group data",
			})
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists || group.CreatorID != userID {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the group creator can perform this action",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
