package eventmgr

import (
	"github.com/pkg/errors"
)

var (
	ErrNilListener     = errors.New("listener must not be nil")
	ErrEmptyIdentifier = errors.New("event identifier is empty")
	ErrEmptyType       = errors.New("event identifier has no type")
)

// ErrRejectedRegistration is returned by Registry.AddListener when a listener could not be registered.
type ErrRejectedRegistration struct {
	err        error
	identifier string
	once       bool
}

func (e ErrRejectedRegistration) Error() string {
	return "cannot register listener for '" + e.identifier + "': " + e.err.Error()
}

func (e ErrRejectedRegistration) Unwrap() error { return e.err }

// Identifier returns the raw identifier the listener was registered with.
func (e ErrRejectedRegistration) Identifier() string { return e.identifier }

// Once reports whether the rejected registration was a one-time listener.
func (e ErrRejectedRegistration) Once() bool { return e.once }

func wrapErrRejectedRegistration(err error, identifier string, once bool) error {
	if err == nil {
		return nil
	}
	return &ErrRejectedRegistration{
		err:        err,
		identifier: identifier,
		once:       once,
	}
}
