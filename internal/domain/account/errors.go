package account

import "errors"

var (
	// ErrInvalidCredentials deliberately covers unknown emails, wrong
	// passwords and disabled accounts alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
)
