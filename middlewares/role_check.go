package middlewares

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fausse-reservations/failure"
	"github.com/yeremiapane/fausse-reservations/models"
	"github.com/yeremiapane/fausse-reservations/utils"
)

// RequireRole lets the request through when the authenticated role is one of
// roles. Admins are always allowed. Must run after StaffAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			utils.RespondFailure(c, failure.Unauthorized("unauthorized"))
			c.Abort()
			return
		}

		if role == models.RoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondFailure(c, failure.Forbidden(fmt.Sprintf("role %q may not access this resource", role)))
		c.Abort()
	}
}
