package handlers

import (
	"net/http"
	"strconv"

	"thanawyia/models"
	"thanawyia/services/account"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves profile, tutor directory and favorites endpoints.
type AccountHandler struct {
	AccountService account.AccountService
}

func NewAccountHandler(as account.AccountService) *AccountHandler {
	return &AccountHandler{AccountService: as}
}

// GetMeHandler handles GET /api/users/me.
func (h *AccountHandler) GetMeHandler(c *gin.Context) {
	id, _ := caller(c)
	acc, err := h.AccountService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "user", acc)
}

// UpdateMeHandler handles PATCH /api/users/me.
func (h *AccountHandler) UpdateMeHandler(c *gin.Context) {
	id, _ := caller(c)
	var patch models.AccountPatch
	if !bindJSON(c, &patch) {
		return
	}

	acc, err := h.AccountService.Update(c.Request.Context(), id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "user", acc)
}

// GetAccountByIDHandler handles GET /api/users/:id.
func (h *AccountHandler) GetAccountByIDHandler(c *gin.Context) {
	acc, err := h.AccountService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "user", acc)
}

// ListTutorsHandler handles GET /api/tutors with an optional approved filter.
func (h *AccountHandler) ListTutorsHandler(c *gin.Context) {
	var approved *bool
	if raw := c.Query("approved"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, utils.Validation("approved must be true or false"))
			return
		}
		approved = &v
	}

	tutors, err := h.AccountService.ListTutors(c.Request.Context(), approved)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "tutors", tutors)
}

// GetFavoritesHandler handles GET /api/users/me/favorites.
func (h *AccountHandler) GetFavoritesHandler(c *gin.Context) {
	id, _ := caller(c)
	favorites, err := h.AccountService.GetFavorites(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "favorites", favorites)
}

// ToggleFavoriteHandler handles POST /api/users/me/favorites/:tutorId.
func (h *AccountHandler) ToggleFavoriteHandler(c *gin.Context) {
	id, _ := caller(c)
	favorites, err := h.AccountService.ToggleFavorite(c.Request.Context(), id, c.Param("tutorId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "favoritesTutors", favorites)
}
