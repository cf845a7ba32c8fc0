// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAccessDenied           = "auth.access_denied"

	// Users
	KeyUserRegistered = "user.registered"
	KeyUserNotFound   = "user.not_found"
	KeyUserExists     = "user.exists"

	// Bills
	KeyBillCreated        = "bill.created"
	KeyBillUpdated        = "bill.updated"
	KeyBillDeleted        = "bill.deleted"
	KeyBillNotFound       = "bill.not_found"
	KeyBillLocked         = "bill.locked"
	KeyBillNotCreator     = "bill.not_creator"
	KeyBillItemOutOfRange = "bill.item_out_of_range"

	// Payments
	KeyPaymentSuccess            = "payment.success"
	KeyPaymentFailed             = "payment.failed"
	KeyPaymentAlreadyPaid        = "payment.already_paid"
	KeyPaymentNotParticipant     = "payment.not_participant"
	KeyPaymentOwnerExempt        = "payment.owner_exempt"
	KeyPaymentVerificationFailed = "payment.verification_failed"

	// Friends
	KeyFriendAdded    = "friend.added"
	KeyFriendExists   = "friend.exists"
	KeyFriendNotFound = "friend.not_found"
	KeyFriendRemoved  = "friend.removed"
	KeyFriendUpdated  = "friend.updated"

	// Receipts
	KeyReceiptScanned      = "receipt.scanned"
	KeyReceiptUploadFailed = "receipt.upload_failed"

	// Exchange rate
	KeyRateUnavailable = "rate.unavailable"

	// Admin
	KeyAdminSettingsUpdated = "admin.settings_updated"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
