package handlers

import (
	"net/http"

	"thanawyia/middleware"
	"thanawyia/models"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondOK writes the success envelope {"success": true, key: value}.
func respondOK(c *gin.Context, status int, key string, value any) {
	c.JSON(status, gin.H{"success": true, key: value})
}

// bindJSON decodes the request body, writing a validation failure on error.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		getLogger(c).Debug("Invalid request body", zap.Error(err))
		utils.RespondError(c, utils.Validation("invalid request body"))
		return false
	}
	return true
}

// caller returns the authenticated account id and role set by JWTAuthMiddleware.
func caller(c *gin.Context) (string, models.Role) {
	return c.GetString(middleware.ContextAccountID), models.Role(c.GetString(middleware.ContextRole))
}

func forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, utils.ErrorResponse{Error: utils.KindForbidden, Message: message})
}
