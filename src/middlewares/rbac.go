package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles ensures the requester's role is one of the allowed roles.
// Usage: group.Use(RequireRoles("pandit"))
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString("role")
		if role == "" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}
		for _, r := range roles {
			if role == r {
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
	}
}
