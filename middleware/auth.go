package middleware

import (
	"net/http"
	"strings"

	accountRepo "thanawyia/database/repository/account"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextAccountID = "accountID"
	ContextRole      = "role"
)

// JWTAuthMiddleware validates the bearer token and checks that its account still exists.
func JWTAuthMiddleware(accounts accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		accountID, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		account, err := accounts.GetByID(c.Request.Context(), accountID)
		if err != nil {
			if utils.IsKind(err, utils.KindNotFound) {
				abortUnauthorized(c, "Account not found")
				return
			}
			utils.RespondError(c, err)
			c.Abort()
			return
		}
		if string(account.Role) != role {
			abortUnauthorized(c, "Token role mismatch")
			return
		}

		c.Set(ContextAccountID, account.ID)
		c.Set(ContextRole, string(account.Role))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Error: utils.KindUnauthorized, Message: message})
}
