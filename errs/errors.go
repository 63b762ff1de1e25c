package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per Kind, usable with errors.Is. These mirror the
// teacher's package-level errs.ErrHashCollision / errs.ErrInvalidMetricName
// convention: every *Error returned by this module unwraps to its Kind's
// sentinel, plus its Cause when one is set (build-time errors carry one of
// the build-time sentinels below as Cause), so callers never need to
// inspect Kind directly.
var (
	ErrIO                  = errors.New("bitwire: io")
	ErrUTF8                = errors.New("bitwire: invalid utf-8")
	ErrNulInString         = errors.New("bitwire: embedded nul in string")
	ErrTryFromInt          = errors.New("bitwire: integer conversion out of range")
	ErrBorrow              = errors.New("bitwire: value already borrowed")
	ErrUnknownDiscriminant = errors.New("bitwire: unknown discriminant")
	ErrTagConvert          = errors.New("bitwire: tag conversion failed")
	ErrSliceFromVec        = errors.New("bitwire: wrong element count for fixed array")
	ErrPoison              = errors.New("bitwire: lock poisoned")
	ErrOther               = errors.New("bitwire: codec error")

	// ErrInvalidTag, ErrMissingDiscriminantType and ErrMissingWriteValue are
	// build-time (plan construction) failures raised by internal/attr and
	// internal/plan; they are not wire-level Kinds but are exported here so
	// every error this module can return lives in one package, exactly as
	// the teacher centralizes its sentinels in a single errs package.
	ErrInvalidTag              = errors.New("bitwire: invalid struct tag")
	ErrMissingDiscriminantType = errors.New("bitwire: enum missing discriminant type")
	ErrMissingWriteValue       = errors.New("bitwire: prepended tag missing write_value")
	ErrFlexibleArrayNotLast    = errors.New("bitwire: flexible array member must be the last field")
	ErrStrategyConflict        = errors.New("bitwire: bits/flex/tag are mutually exclusive")
	ErrDiscriminantOverflow    = errors.New("bitwire: discriminant does not fit in declared bit width")
)

// kindSentinel maps a Kind to its sentinel error, used by New to avoid a
// second switch at every call site.
func kindSentinel(k Kind) error {
	switch k {
	case KindIO:
		return ErrIO
	case KindUTF8:
		return ErrUTF8
	case KindNulInString:
		return ErrNulInString
	case KindTryFromInt:
		return ErrTryFromInt
	case KindBorrow:
		return ErrBorrow
	case KindUnknownDiscriminant:
		return ErrUnknownDiscriminant
	case KindTagConvert:
		return ErrTagConvert
	case KindSliceFromVec:
		return ErrSliceFromVec
	case KindPoison:
		return ErrPoison
	default:
		return ErrOther
	}
}

// Error is the one result type that flows through every codec in bitwire.
// It always wraps a Kind sentinel so errors.Is(err, errs.ErrIO) works, while
// Detail carries the human-readable, scenario-specific message.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return kindSentinel(e.Kind).Error()
	}

	return fmt.Sprintf("%s: %s", kindSentinel(e.Kind), e.Detail)
}

// Unwrap exposes both the Kind sentinel (so errors.Is(err, errs.ErrIO)
// matches) and any wrapped cause (e.g. the underlying io.Reader error).
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{kindSentinel(e.Kind), e.Cause}
	}

	return []error{kindSentinel(e.Kind)}
}

// New builds an *Error of the given Kind with a formatted detail message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given Kind around an underlying cause,
// matching the teacher's fmt.Errorf("%w: …", errs.ErrX, …) call sites but
// keeping the cause introspectable via errors.As.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Cause: cause}
}

// IO wraps an underlying stream failure.
func IO(cause error, format string, args ...any) *Error {
	return Wrap(KindIO, cause, format, args...)
}

// UnknownDiscriminant reports a decoded discriminant value with no matching
// variant, printing it the way spec.md's "printed value" requires.
func UnknownDiscriminant(value any) *Error {
	return New(KindUnknownDiscriminant, "value %v matches no variant", value)
}

// TryFromInt reports a narrowing conversion that does not fit the
// destination type, or a nonzero field that decoded to zero.
func TryFromInt(from, to string, value any) *Error {
	return New(KindTryFromInt, "value %v (%s) does not fit in %s", value, from, to)
}

// TagConvert reports a caller-supplied tag of the wrong type for a field's
// strategy.
func TagConvert(got, want string) *Error {
	return New(KindTagConvert, "got tag of type %s, want %s", got, want)
}

// SliceFromVec reports a fixed-size array decode that received the wrong
// number of elements.
func SliceFromVec(want, got int) *Error {
	return New(KindSliceFromVec, "expected %d elements, got %d", want, got)
}

// Other wraps an error surfaced by a user-supplied Decoder/Encoder
// implementation.
func Other(cause error) *Error {
	return Wrap(KindOther, cause, "user codec failed")
}

// Is reports whether err ultimately wraps the sentinel for kind. It is a
// convenience alias over errors.Is for callers that already have a Kind in
// hand (e.g. from a switch over expected failure modes).
func Is(err error, kind Kind) bool {
	return errors.Is(err, kindSentinel(kind))
}
