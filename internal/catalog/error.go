package catalog

import "errors"

var (
	errProductNotFound = errors.New("product not found")
)
