// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JonathanMaverick/split-chain-backend/internal/i18n"
	"github.com/JonathanMaverick/split-chain-backend/internal/models"
	"github.com/JonathanMaverick/split-chain-backend/internal/services"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	stats, err := h.adminService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	settings, err := h.adminService.GetSettings()
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, settings)
}

// PUT /admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	settings, err := h.adminService.UpdateSettings(&req)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyAdminSettingsUpdated),
		"settings": settings,
	})
}

// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminService.ListUsers(params)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	result := utils.CreatePaginationResult(users, total, params)
	utils.SetPaginationHeaders(c, result)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/users/:walletAddress/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		Status models.UserStatus `json:"status" validate:"required,oneof=active suspended"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.adminService.SetUserStatus(c.Param("walletAddress"), req.Status)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, user)
}
