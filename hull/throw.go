package hull

import "github.com/pkg/errors"

// Threading errors out of the wrap loop and its helpers would add error
// returns to code that can only fail on malformed internal state. Instead,
// deep failures panic, and the public API recovers to convert to an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
