package panicerr

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Recover("f", func() error { return nil }))
	})

	t.Run("error passes through", func(t *testing.T) {
		err := Recover("f", func() error { return errors.New("nope") })
		assert.EqualError(t, err, "nope")
		assert.False(t, IsPanic(err))
		assert.False(t, IsExit(err))
	})

	t.Run("panic", func(t *testing.T) {
		err := Recover("boomer", func() error { panic("boom") })
		require.Error(t, err)
		assert.True(t, IsPanic(err))
		assert.False(t, IsExit(err))
		assert.Contains(t, err.Error(), "boomer paniced: boom")
		assert.NotEmpty(t, PanicStack(err))
		assert.Contains(t, fmt.Sprintf("%+v", err), "Panic stack:")
	})

	t.Run("goexit", func(t *testing.T) {
		err := Recover("quitter", func() error { runtime.Goexit(); return nil })
		require.Error(t, err)
		assert.True(t, IsExit(err))
		assert.False(t, IsPanic(err))
		assert.Contains(t, err.Error(), "quitter called runtime.Goexit")
	})

	t.Run("stack of a plain error is empty", func(t *testing.T) {
		assert.Empty(t, PanicStack(errors.New("plain")))
	})
}
