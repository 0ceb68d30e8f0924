package reactmount

import "errors"

// Sentinel errors for registry, container, and state token operations.
var (
	ErrInvalidArgument   = errors.New("reactmount: invalid argument")
	ErrInvalidContainer  = errors.New("reactmount: invalid container value")
	ErrReservedAttribute = errors.New("reactmount: reserved container attribute")
	ErrNoStateKey        = errors.New("reactmount: registry has no state key")
	ErrInvalidFormat     = errors.New("reactmount: invalid state token format")
	ErrSignatureInvalid  = errors.New("reactmount: state token signature verification failed")
	ErrDecryptFailed     = errors.New("reactmount: state token decryption failed")
)

// IsInvalidArgument checks if err is a registry argument validation error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidContainer checks if err is a container validation error.
func IsInvalidContainer(err error) bool {
	return errors.Is(err, ErrInvalidContainer) || errors.Is(err, ErrReservedAttribute)
}

// IsStateTokenError checks if err is a state token verification or format error.
func IsStateTokenError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrDecryptFailed)
}
