package handlers

import (
	"errors"
	"net/http"

	"thanawyia/models"
	"thanawyia/services/account"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	AccountService account.AccountService
}

func NewAuthHandler(as account.AccountService) *AuthHandler {
	return &AuthHandler{AccountService: as}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.AccountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("Account registered", zap.String("id", created.ID), zap.String("role", string(created.Role)))
	respondOK(c, http.StatusCreated, "user", created)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.AccountService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: utils.KindUnauthorized, Message: account.ErrInvalidCredentials.Message})
			return
		}
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": resp.Token, "user": resp.Account})
}
