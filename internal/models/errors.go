package models

import "errors"

// Domain error kinds. Services return these (possibly wrapped); the HTTP
// layer matches with errors.Is and maps each kind to a status code.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrNotOwner         = errors.New("member does not own this resource")
	ErrInvalidCartItems = errors.New("invalid cart item ids")
	ErrAlreadyIssued    = errors.New("coupon already issued to this member")
	ErrAlreadyUsed      = errors.New("coupon already used or expired")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrAuthentication   = errors.New("invalid credentials")
	ErrNameTaken        = errors.New("member name already taken")
)
