// internal/handlers/friend.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JonathanMaverick/split-chain-backend/internal/i18n"
	"github.com/JonathanMaverick/split-chain-backend/internal/services"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

type FriendHandler struct {
	friendService *services.FriendService
}

func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// POST /friends
func (h *FriendHandler) AddFriend(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	var req services.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	friend, err := h.friendService.AddFriend(wallet, &req)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFriendAdded),
		"friend":  friend,
	})
}

// GET /friends
func (h *FriendHandler) GetFriends(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	friends, err := h.friendService.GetFriends(wallet)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"friends": friends,
	})
}

// PUT /friends/:walletAddress
func (h *FriendHandler) UpdateNickname(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)
	friendWallet := c.Param("walletAddress")

	var req services.UpdateFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	friend, err := h.friendService.UpdateNickname(wallet, friendWallet, &req)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFriendUpdated),
		"friend":  friend,
	})
}

// DELETE /friends/:walletAddress
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)
	friendWallet := c.Param("walletAddress")

	if err := h.friendService.RemoveFriend(wallet, friendWallet); err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFriendRemoved),
	})
}
