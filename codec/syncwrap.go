package codec

import (
	"sync"
	"sync/atomic"

	"github.com/bitwire-go/bitwire/errs"
)

// Mutex is the Go realization of Rust's Mutex<T>, per spec.md §4.1's
// "mutex/rwlock" pass-through row. WithLock holds the lock only for the
// duration of its callback. The derive engine's encode of a Mutex field
// reads Value directly: it does not take the lock and does not check the
// poison flag.
type Mutex[T any] struct {
	mu     sync.Mutex
	poison atomic.Bool
	Value  T
}

// NewMutex wraps v for encoding.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{Value: v}
}

// WithLock runs fn with the mutex held, recovering a panic inside fn into a
// poisoned state so a subsequent call fails fast with errs.ErrPoison rather
// than deadlocking or silently encoding partial state, per spec.md §4.1's
// "locks acquired for the duration of encode" note.
func (m *Mutex[T]) WithLock(fn func(*T) error) (err error) {
	if m.poison.Load() {
		return errs.New(errs.KindPoison, "mutex poisoned by a prior panicking encode")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			m.poison.Store(true)
			err = errs.New(errs.KindPoison, "encode panicked: %v", r)
		}
	}()

	return fn(&m.Value)
}

// RWMutex is the read-write analogue of Mutex, used for fields modeled on
// Rust's RwLock<T>.
type RWMutex[T any] struct {
	mu     sync.RWMutex
	poison atomic.Bool
	Value  T
}

// NewRWMutex wraps v for encoding.
func NewRWMutex[T any](v T) *RWMutex[T] {
	return &RWMutex[T]{Value: v}
}

// WithRLock runs fn with a read lock held, for encode (spec.md models
// RwLock the same as Mutex for wire purposes: the lock's duration covers
// the encode call, never the decode call which constructs a fresh value).
func (m *RWMutex[T]) WithRLock(fn func(*T) error) (err error) {
	if m.poison.Load() {
		return errs.New(errs.KindPoison, "rwlock poisoned by a prior panicking encode")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	defer func() {
		if r := recover(); r != nil {
			m.poison.Store(true)
			err = errs.New(errs.KindPoison, "encode panicked: %v", r)
		}
	}()

	return fn(&m.Value)
}
