package middleware

import (
	accountRepo "thanawyia/database/repository/account"
	"thanawyia/models"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware authenticates the caller and requires the admin role.
func JWTAuthAdminMiddleware(accounts accountRepo.AccountRepository) []gin.HandlerFunc {
	return []gin.HandlerFunc{JWTAuthMiddleware(accounts), RequireRole(models.RoleAdmin)}
}
