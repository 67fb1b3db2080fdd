package cart

import "errors"

var (
	errEmptyCart = errors.New("cart is empty")
)
