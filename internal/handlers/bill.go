// internal/handlers/bill.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JonathanMaverick/split-chain-backend/internal/i18n"
	"github.com/JonathanMaverick/split-chain-backend/internal/services"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

type BillHandler struct {
	billService  *services.BillService
	shareService *services.ShareService
}

func NewBillHandler(billService *services.BillService, shareService *services.ShareService) *BillHandler {
	return &BillHandler{
		billService:  billService,
		shareService: shareService,
	}
}

// POST /bills
func (h *BillHandler) CreateBill(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	var req services.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	bill, err := h.billService.CreateBill(wallet, &req)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBillCreated),
		"bill":    bill,
	})
}

// GET /bills/:billId
func (h *BillHandler) GetBill(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "bill id"), nil)
		return
	}

	bill, err := h.billService.GetBill(billID)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, bill)
}

// GET /bills/created — bills the caller owns
func (h *BillHandler) GetCreatedBills(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)
	params := utils.GetPaginationParams(c)

	bills, total, err := h.billService.GetBillsByCreator(wallet, params)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	result := utils.CreatePaginationResult(bills, total, params)
	utils.SetPaginationHeaders(c, result)
	utils.PaginatedResponse(c, result)
}

// GET /bills/shared — bills the caller appears on but does not own
func (h *BillHandler) GetSharedBills(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)
	params := utils.GetPaginationParams(c)

	bills, total, err := h.billService.GetBillsByParticipant(wallet, params)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	result := utils.CreatePaginationResult(bills, total, params)
	utils.SetPaginationHeaders(c, result)
	utils.PaginatedResponse(c, result)
}

// PUT /bills/:billId
func (h *BillHandler) UpdateBill(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "bill id"), nil)
		return
	}

	var req services.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	bill, err := h.billService.UpdateBill(billID, wallet, &req)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBillUpdated),
		"bill":    bill,
	})
}

// DELETE /bills/:billId
func (h *BillHandler) DeleteBill(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "bill id"), nil)
		return
	}

	if err := h.billService.DeleteBill(billID, wallet); err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBillDeleted),
	})
}

// POST /bills/:billId/participants
func (h *BillHandler) AssignParticipant(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "bill id"), nil)
		return
	}

	var req services.AssignParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	bill, err := h.billService.AssignParticipant(billID, wallet, &req)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBillUpdated),
		"bill":    bill,
	})
}

// DELETE /bills/:billId/participants
func (h *BillHandler) UnassignParticipant(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "bill id"), nil)
		return
	}

	var req services.AssignParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	bill, err := h.billService.UnassignParticipant(billID, wallet, &req)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBillUpdated),
		"bill":    bill,
	})
}

// GET /bills/:billId/shares
func (h *BillHandler) GetShares(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "bill id"), nil)
		return
	}

	shares, err := h.shareService.GetShares(c.Request.Context(), billID, wallet)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, shares)
}

// GET /bills/:billId/participants
func (h *BillHandler) GetParticipants(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "bill id"), nil)
		return
	}

	participants, err := h.shareService.GetParticipants(billID, wallet)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"participants": participants,
	})
}
