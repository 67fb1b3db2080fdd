package content

import "errors"

var (
	errEntryNotFound   = errors.New("feed entry not found")
	errNoImageSupplied = errors.New("no image supplied")
)
