package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error a use case returns on purpose wraps one of them,
// the REST layer maps kinds to status codes.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrMissingToken  = fmt.Errorf("%w: authorization token is missing", ErrUnauthenticated)
	ErrTokenInvalid  = fmt.Errorf("%w: invalid or expired token", ErrUnauthenticated)
	ErrTokenNotFound = fmt.Errorf("%w: token is not registered", ErrUnauthenticated)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)

	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrOfferNotFound = fmt.Errorf("offer %w", ErrNotFound)

	ErrInvalidID             = fmt.Errorf("%w: malformed identifier", ErrBadRequest)
	ErrInvalidFavoriteStatus = fmt.Errorf("%w: status must be 0 or 1", ErrBadRequest)
	ErrInvalidComment        = fmt.Errorf("%w: invalid comment", ErrBadRequest)
	ErrInvalidOffer          = fmt.Errorf("%w: invalid offer", ErrBadRequest)
	ErrInvalidUser           = fmt.Errorf("%w: invalid user", ErrBadRequest)

	ErrEmailInUse = fmt.Errorf("%w: email already in use", ErrConflict)
)
