package reservation

import "errors"

// ErrMissingField aborts a submission with an incomplete form.
var ErrMissingField = errors.New("missing required field")
