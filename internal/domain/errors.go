package domain

import "errors"

// ErrUnknownProduct is returned when a product name does not match any
// entry of the template catalog. It is a caller error and is surfaced,
// unlike generation failures which degrade to a fallback notification.
var ErrUnknownProduct = errors.New("unknown product")
