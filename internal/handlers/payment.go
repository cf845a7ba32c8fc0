// internal/handlers/payment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JonathanMaverick/split-chain-backend/internal/i18n"
	"github.com/JonathanMaverick/split-chain-backend/internal/services"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

type PaymentHandler struct {
	settlementService *services.SettlementService
	rateService       *services.RateService
}

func NewPaymentHandler(settlementService *services.SettlementService, rateService *services.RateService) *PaymentHandler {
	return &PaymentHandler{
		settlementService: settlementService,
		rateService:       rateService,
	}
}

// POST /bills/:billId/pay
// The wallet has already signed and submitted the transfer; the body carries
// the resulting transaction id for verification.
func (h *PaymentHandler) SettleBill(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	wallet, _ := utils.GetWalletFromContext(c)

	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "bill id"), nil)
		return
	}

	var req services.SettleBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.settlementService.SettleBill(c.Request.Context(), billID, wallet, &req)
	if err != nil {
		respondServiceError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyPaymentSuccess),
		"settlement": result,
	})
}

// GET /rate
func (h *PaymentHandler) GetRate(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	rate, err := h.rateService.HbarPerUSD(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "RATE_UNAVAILABLE", i18n.T(lang, i18n.KeyRateUnavailable), nil)
		return
	}

	utils.SuccessResponse(c, rate)
}
