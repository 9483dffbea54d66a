package store

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateSKU         = errors.New("duplicate sku")
	ErrInvalidProduct       = errors.New("invalid product")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrProductExpired       = errors.New("product is expired")
	ErrOutOfStock           = errors.New("product is out of stock")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOptimisticLockFailed = errors.New("optimistic lock failed")
)
