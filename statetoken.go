package reactmount

import (
	"errors"

	"github.com/reactmount/reactmount/lib/statetoken"
)

// Codec is an alias for statetoken.Codec for convenience.
type Codec = statetoken.Codec

// NewCodec creates a state token codec with the given key.
func NewCodec(key []byte) (*Codec, error) {
	return statetoken.NewCodec(key)
}

// OpenState verifies a data-react-state token previously emitted by this
// registry and returns the sealed props. Use it in hydration or callback
// endpoints that receive the token back from the client.
func (reg *Registry) OpenState(token string) (Props, error) {
	if reg.codec == nil {
		return nil, ErrNoStateKey
	}
	props, err := reg.codec.Open(token, reg.sensitive)
	if err != nil {
		return nil, wrapStateTokenError(err)
	}
	return Props(props), nil
}

// wrapStateTokenError maps statetoken package errors to reactmount sentinel
// errors.
func wrapStateTokenError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, statetoken.ErrInvalidFormat) {
		return ErrInvalidFormat
	}
	if errors.Is(err, statetoken.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, statetoken.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
