package errors

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kbukum/dbkit/logger"
)

// boundaryLog records the original foreign failure before normalization
// discards its concrete type. Disabled by default.
var boundaryLog = zerolog.Nop()

// SetLogger installs the logger used to record foreign failures intercepted
// at API boundaries. Pass zerolog.Nop() to disable again.
func SetLogger(l zerolog.Logger) { boundaryLog = l }

// Guard runs fn and guarantees that only the uniform kind escapes: a returned
// error is normalized with Wrap, and a panic is intercepted and converted the
// same way. Either way the foreign failure is logged at debug level before
// its concrete type is lost. Guard is meant to wrap the body of every public
// entry point:
//
//	func (s *Session) Close() error {
//	    return errors.Guard(func() error {
//	        return s.conn.shutdown()
//	    })
//	}
func Guard(fn func() error) (err error) {
	defer Recover(&err)
	ferr := fn()
	if ferr != nil && !IsUniform(ferr) {
		logForeign("return", ferr)
	}
	return Wrap(ferr)
}

// Recover is the deferred form of the boundary convention. It converts an
// in-flight panic into the uniform kind and stores it in *errp, leaving an
// already-set uniform error alone. Panics carrying an error use that error's
// message, panics carrying a string use the string, and anything else becomes
// UnknownMessage.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *Error:
		*errp = v
	case error:
		logForeign("panic", v)
		*errp = New(v.Error())
	case string:
		boundaryLog.Debug().Str(logger.FieldOperation, "panic").Str("panic_value", v).
			Msg("foreign failure normalized at api boundary")
		*errp = New(v)
	default:
		boundaryLog.Debug().Str(logger.FieldOperation, "panic").
			Str("foreign_type", fmt.Sprintf("%T", v)).
			Msg("foreign failure normalized at api boundary")
		*errp = New(UnknownMessage)
	}
}

// logForeign records a foreign error with its concrete type, which Wrap is
// about to discard.
func logForeign(op string, err error) {
	boundaryLog.Debug().
		Str(logger.FieldOperation, op).
		Str("foreign_type", fmt.Sprintf("%T", err)).
		Err(err).
		Msg("foreign failure normalized at api boundary")
}
