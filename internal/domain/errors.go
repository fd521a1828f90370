package domain

import (
	"errors"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrUnknown             = errors.New("unknown error")

	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrInsufficientAssetQuantity = errors.New("insufficient asset quantity")
	ErrQuoteUnavailable          = errors.New("quote unavailable")
	ErrTransactionFailed         = errors.New("transaction failed")

	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidOrderSide = errors.New("invalid order side")
)
