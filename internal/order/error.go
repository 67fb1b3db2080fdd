package order

import "errors"

var (
	errOrderNotFound = errors.New("order not found")
)
