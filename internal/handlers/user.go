// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JonathanMaverick/split-chain-backend/internal/i18n"
	"github.com/JonathanMaverick/split-chain-backend/internal/services"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

type UserHandler struct {
	userService         *services.UserService
	notificationService *services.NotificationService
}

func NewUserHandler(userService *services.UserService, notificationService *services.NotificationService) *UserHandler {
	return &UserHandler{
		userService:         userService,
		notificationService: notificationService,
	}
}

// GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	user, err := h.userService.GetUser(wallet)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, user)
}

// GET /users/:walletAddress
func (h *UserHandler) GetUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	user, err := h.userService.GetUser(c.Param("walletAddress"))
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, user)
}

// GET /users/me/notifications?unread=true
func (h *UserHandler) GetNotifications(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notificationService.GetNotifications(wallet, unreadOnly)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"notifications": notifications,
	})
}

// POST /users/me/notifications/read
func (h *UserHandler) MarkNotificationsRead(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	if err := h.notificationService.MarkAllRead(wallet); err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySuccess),
	})
}
