// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Hedera-style account ids: shard.realm.num, e.g. "0.0.6331448".
var accountIDPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

// Wallet SDK transaction ids: payer@seconds.nanos.
var transactionIDPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+[@-][0-9]+[.-][0-9]+$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("wallet_address", validateWalletAddress)
	validate.RegisterValidation("transaction_id", validateTransactionID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateWalletAddress(fl validator.FieldLevel) bool {
	return accountIDPattern.MatchString(fl.Field().String())
}

func validateTransactionID(fl validator.FieldLevel) bool {
	return transactionIDPattern.MatchString(fl.Field().String())
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "wallet_address":
		return e.Field() + " must be a ledger account id like 0.0.12345"
	case "transaction_id":
		return e.Field() + " must be a ledger transaction id like 0.0.12345@1700000000.000000001"
	default:
		return e.Field() + " is invalid"
	}
}
