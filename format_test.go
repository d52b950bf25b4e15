package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gostax/internal/dec"
)

func TestFormatGrid(t *testing.T) {
	num := func(s string) Value {
		d, err := dec.Parse(s)
		if err != nil {
			t.Fatalf("bad test number %q: %v", s, err)
		}
		return numberValue{d}
	}

	t.Run("single empty stack", func(t *testing.T) {
		ss := newStackSet()
		assert.Equal(t, "[ ]\n 0 ", formatGrid(ss))
	})

	t.Run("single value", func(t *testing.T) {
		ss := newStackSet()
		ss.activeStack().push(num("9"))
		assert.Equal(t, "[9]\n 0 ", formatGrid(ss))
	})

	t.Run("width set by widest top", func(t *testing.T) {
		ss := newStackSet()
		ss.activeStack().push(num("7"))
		ss.appendStack().push(num("123.45"))
		assert.Equal(t, "[     7][123.45]\n   0       1    ", formatGrid(ss))
	})

	t.Run("only tops show", func(t *testing.T) {
		ss := newStackSet()
		ss.activeStack().push(num("1"))
		ss.activeStack().push(num("2"))
		assert.Equal(t, "[2]\n 0 ", formatGrid(ss))
	})

	t.Run("empty column between values", func(t *testing.T) {
		ss := newStackSet()
		ss.activeStack().push(num("42"))
		ss.appendStack()
		ss.appendStack().push(num("7"))
		assert.Equal(t, "[42][  ][ 7]\n 0   1   2  ", formatGrid(ss))
	})
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " 0 ", center("0", 3))
	assert.Equal(t, " 0  ", center("0", 4))
	assert.Equal(t, "10", center("10", 2))
	assert.Equal(t, " 10 ", center("10", 4))
}
