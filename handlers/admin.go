package handlers

import (
	"net/http"

	"thanawyia/models"
	"thanawyia/services/account"
	"thanawyia/services/report"
	"thanawyia/services/settings"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations and platform settings.
type AdminHandler struct {
	AccountService  account.AccountService
	SettingsService settings.SettingsService
	ReportService   report.ReportService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as account.AccountService, ss settings.SettingsService, rs report.ReportService) *AdminHandler {
	return &AdminHandler{
		AccountService:  as,
		SettingsService: ss,
		ReportService:   rs,
	}
}

// GetAllUsersHandler returns all accounts (credentials excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.AccountService.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "users", users)
}

// GetAllStudentsHandler returns every student account.
func (ah *AdminHandler) GetAllStudentsHandler(c *gin.Context) {
	students, err := ah.AccountService.ListStudents(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "students", students)
}

// SetTutorApprovalHandler handles PUT /api/admin/tutors/:id/approval.
func (ah *AdminHandler) SetTutorApprovalHandler(c *gin.Context) {
	var req models.ApprovalRequest
	if !bindJSON(c, &req) {
		return
	}
	tutor, err := ah.AccountService.SetApproval(c.Request.Context(), c.Param("id"), req.Approved)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("Tutor approval changed", zap.String("tutorID", tutor.ID), zap.Bool("approved", req.Approved))
	respondOK(c, http.StatusOK, "user", tutor)
}

// GetSettingsHandler handles GET /api/settings.
func (ah *AdminHandler) GetSettingsHandler(c *gin.Context) {
	s, err := ah.SettingsService.Get(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "settings", s)
}

// UpdateSettingsHandler handles PUT /api/admin/settings.
func (ah *AdminHandler) UpdateSettingsHandler(c *gin.Context) {
	var req models.Settings
	if !bindJSON(c, &req) {
		return
	}
	s, err := ah.SettingsService.Update(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "settings", s)
}

// GetStatsHandler handles GET /api/admin/reports/stats.
func (ah *AdminHandler) GetStatsHandler(c *gin.Context) {
	stats, err := ah.ReportService.PlatformStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "stats", stats)
}
