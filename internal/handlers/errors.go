// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JonathanMaverick/split-chain-backend/internal/i18n"
	"github.com/JonathanMaverick/split-chain-backend/internal/services"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

// respondServiceError translates service sentinel errors into the HTTP
// envelope. Unknown errors become a 500 with a generic message so internal
// details never leak to clients.
func respondServiceError(c *gin.Context, lang string, err error) {
	switch {
	case errors.Is(err, services.ErrBillNotFound):
		utils.NotFoundResponse(c, "bill")
	case errors.Is(err, services.ErrUserNotFound):
		utils.NotFoundResponse(c, "user")
	case errors.Is(err, services.ErrFriendNotFound):
		utils.NotFoundResponse(c, "friend")
	case errors.Is(err, services.ErrNotCreator):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyBillNotCreator))
	case errors.Is(err, services.ErrBillLocked):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyBillLocked))
	case errors.Is(err, services.ErrItemOutOfRange):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBillItemOutOfRange), nil)
	case errors.Is(err, services.ErrClaimPaid):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyPaymentAlreadyPaid))
	case errors.Is(err, services.ErrFriendExists):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyFriendExists))
	case errors.Is(err, services.ErrSelfFriend):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "friend"), nil)
	case errors.Is(err, services.ErrOwnerExempt):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyPaymentOwnerExempt), nil)
	case errors.Is(err, services.ErrNotParticipant):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyPaymentNotParticipant))
	case errors.Is(err, services.ErrAlreadyPaid):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyPaymentAlreadyPaid))
	case errors.Is(err, services.ErrVerificationFailed):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyPaymentVerificationFailed), nil)
	default:
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyError))
	}
}
