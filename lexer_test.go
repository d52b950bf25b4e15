package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	type tok struct {
		kind tokenKind
		pos  int
		text string
	}

	for _, tc := range []struct {
		name string
		in   string
		want []tok
	}{
		{"empty", "", nil},
		{"spaces only", "   \t ", nil},
		{"comment only", "# nothing to see", nil},

		{"numbers and op", "3 3*", []tok{
			{tokNumber, 0, "3"},
			{tokNumber, 2, "3"},
			{tokOp, 3, "*"},
		}},

		{"grouped number", "1_000.5", []tok{
			{tokNumber, 0, "1_000.5"},
		}},

		{"bare block", "[pi]", []tok{
			{tokOpen, 0, "["},
			{tokWord, 1, "pi"},
			{tokClose, 3, "]"},
		}},

		{"quote and def", "'[dup *] 'square def", []tok{
			{tokOp, 0, "'"},
			{tokOpen, 1, "["},
			{tokWord, 2, "dup"},
			{tokOp, 6, "*"},
			{tokClose, 7, "]"},
			{tokOp, 9, "'"},
			{tokWord, 10, "square"},
			{tokWord, 17, "def"},
		}},

		{"trailing comment", "1 2 # 3 4", []tok{
			{tokNumber, 0, "1"},
			{tokNumber, 2, "2"},
		}},

		{"nav ops", "< > % ~", []tok{
			{tokOp, 0, "<"},
			{tokOp, 2, ">"},
			{tokOp, 4, "%"},
			{tokOp, 6, "~"},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := lex(tc.in)
			require.NoError(t, err)
			var got []tok
			for _, tk := range toks {
				got = append(got, tok{tk.kind, tk.pos, tk.text})
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLexErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		pos  int
	}{
		{"invalid character", "1 $ 2", 2},
		{"malformed number", "1.2.3", 0},
		{"bare dot", "3 .", 2},
		{"unmatched close", "]", 0},
		{"unmatched open", "[1 2", 0},
		{"unmatched inner open", "[1 [2]", 0},
		{"close before open", "] [", 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lex(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, Error{Kind: LexError}), "got %v", err)
			var e Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tc.pos, e.Pos)
		})
	}
}

func TestLexNumberValues(t *testing.T) {
	toks, err := lex("3.50 .5 1_000")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "3.5", toks[0].num.String())
	assert.Equal(t, "0.5", toks[1].num.String())
	assert.Equal(t, "1000", toks[2].num.String())
}
