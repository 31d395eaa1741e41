package auth

import "errors"

// ErrMissingSecret indicates the signing secret was not configured.
var ErrMissingSecret = errors.New("auth secret is not configured")
