// internal/services/errors.go
package services

import "errors"

// Sentinel errors the handlers translate into HTTP responses.
var (
	ErrBillNotFound   = errors.New("bill not found")
	ErrNotCreator     = errors.New("only the bill creator can do this")
	ErrBillLocked     = errors.New("bill cannot be modified after a participant has paid")
	ErrItemOutOfRange = errors.New("item index out of range")
	ErrClaimPaid      = errors.New("participant has already paid for this item")

	ErrUserNotFound = errors.New("user not found")

	ErrFriendExists   = errors.New("friend already exists")
	ErrFriendNotFound = errors.New("friend not found")
	ErrSelfFriend     = errors.New("cannot add yourself as a friend")

	ErrOwnerExempt        = errors.New("bill owner does not pay their own bill")
	ErrNotParticipant     = errors.New("wallet is not assigned to any item on this bill")
	ErrAlreadyPaid        = errors.New("wallet has already paid this bill")
	ErrVerificationFailed = errors.New("transaction could not be verified on the ledger")
)
