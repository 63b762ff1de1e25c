package codec_test

import (
	"errors"
	"testing"

	"github.com/bitwire-go/bitwire/codec"
	"github.com/bitwire-go/bitwire/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutexWithLockRunsFn(t *testing.T) {
	m := codec.NewMutex(5)
	err := m.WithLock(func(v *int) error {
		*v = *v + 1

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, m.Value)
}

func TestMutexPoisonsOnPanic(t *testing.T) {
	m := codec.NewMutex("x")

	err := m.WithLock(func(v *string) error {
		panic("boom")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPoison)

	err = m.WithLock(func(v *string) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPoison)
}

func TestMutexPropagatesFnError(t *testing.T) {
	m := codec.NewMutex(0)
	sentinel := errors.New("fn failed")

	err := m.WithLock(func(v *int) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
}

func TestRWMutexWithRLock(t *testing.T) {
	m := codec.NewRWMutex([]int{1, 2, 3})
	err := m.WithRLock(func(v *[]int) error {
		assert.Len(t, *v, 3)

		return nil
	})
	require.NoError(t, err)
}
