package middleware

import (
	"net/http"

	"thanawyia/models"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole allows the request through only for the listed roles.
// It must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, r := range roles {
			if string(r) == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
			Error:   utils.KindForbidden,
			Message: "You do not have access to this resource",
		})
	}
}
