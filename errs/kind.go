// Package errs defines the single error surface that flows through every
// codec in bitwire. A failure is always a *Error wrapping one of the Kind
// sentinels below, so callers can branch with errors.Is(err, errs.ErrIO)
// while still getting a human-readable message.
package errs

// Kind identifies which of the codec's failure modes produced an error.
type Kind uint8

const (
	// KindIO covers an underlying byte read/write failure or an end-of-stream
	// reached mid-field.
	KindIO Kind = iota + 1
	// KindUTF8 means string bytes were not valid UTF-8.
	KindUTF8
	// KindNulInString means a C-string constructed from a Go string contained
	// an embedded zero byte.
	KindNulInString
	// KindTryFromInt means a narrowing conversion was out of range, or a
	// nonzero-typed field decoded to zero.
	KindTryFromInt
	// KindBorrow means an interior-mutable value was already held for
	// encoding by another in-flight call.
	KindBorrow
	// KindUnknownDiscriminant means no enum variant matched the decoded
	// discriminant value.
	KindUnknownDiscriminant
	// KindTagConvert means a caller-supplied tag failed to convert to the
	// type a field's strategy expects.
	KindTagConvert
	// KindSliceFromVec means a fixed-size array decode received the wrong
	// number of elements.
	KindSliceFromVec
	// KindPoison means a lock guarding a shared-ownership wrapper was held
	// by a goroutine that panicked while encoding.
	KindPoison
	// KindOther wraps an error returned by a user-supplied Decoder/Encoder
	// implementation.
	KindOther
)

// String renders the Kind the way format.EncodingType renders in the
// teacher's codebase: one case per constant, "Unknown" for anything else.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IO"
	case KindUTF8:
		return "UTF8"
	case KindNulInString:
		return "NulInString"
	case KindTryFromInt:
		return "TryFromInt"
	case KindBorrow:
		return "Borrow"
	case KindUnknownDiscriminant:
		return "UnknownDiscriminant"
	case KindTagConvert:
		return "TagConvert"
	case KindSliceFromVec:
		return "SliceFromVec"
	case KindPoison:
		return "Poison"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}
