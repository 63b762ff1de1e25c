package codec

// Option is the Go realization of Rust's Option<T>, per spec.md §4.1's
// `Option<T>` row: present selects whether Value was decoded/is written.
// internal/derive drives decode/encode through Decoder/Encoder-aware
// reflection rather than a method on Option itself, since T is only known
// through the field's declared type at plan-build time.
type Option[T any] struct {
	Present bool
	Value   T
}

// Some wraps v as a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{Present: true, Value: v}
}

// None returns an absent Option of T.
func None[T any]() Option[T] {
	return Option[T]{}
}
