package advanced

import "github.com/pkg/errors"

// The building blocks in this package report bad input by panicking, so that
// they compose as plain functions. The facade package recovers the panic and
// converts it to an error. Only panics raised through this file are
// converted. Anything else, such as a runtime error, is a bug and keeps
// panicking.

var ErrInvalidArgument = errors.New("invalid argument")

type hullError struct {
	error
}

func (e hullError) Unwrap() error {
	return e.error
}

// Panic with an error wrapping ErrInvalidArgument.
func invalidArgumentf(format string, args ...interface{}) {
	panic(hullError{errors.Wrapf(ErrInvalidArgument, format, args...)})
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(hullError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
