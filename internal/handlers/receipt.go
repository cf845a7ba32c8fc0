// internal/handlers/receipt.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JonathanMaverick/split-chain-backend/internal/i18n"
	"github.com/JonathanMaverick/split-chain-backend/internal/services"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

type ReceiptHandler struct {
	receiptService *services.ReceiptService
}

func NewReceiptHandler(receiptService *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// POST /receipts/scan — multipart upload, field name "file"
func (h *ReceiptHandler) ScanReceipt(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "file"), err.Error())
		return
	}

	draft, err := h.receiptService.ProcessReceipt(c.Request.Context(), fileHeader)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyReceiptUploadFailed), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReceiptScanned),
		"draft":   draft,
	})
}
