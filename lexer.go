package main

import (
	"unicode"

	"github.com/jcorbin/gostax/internal/dec"
)

type tokenKind int

const (
	tokNumber tokenKind = iota + 1
	tokWord
	tokOp
	tokOpen
	tokClose
)

// A token is one lexical unit of an input line, carrying the rune position
// it started at for diagnostics.
type token struct {
	kind tokenKind
	pos  int
	text string
	num  dec.Dec
}

func (t token) String() string {
	if t.kind == tokNumber {
		return t.num.String()
	}
	return t.text
}

// operators maps every recognized operator symbol to true. The bindings:
//
//	+ - * / ^   binary arithmetic on the active stack
//	<           move the active-stack pointer one stack left
//	>           move the active-stack pointer one stack right, appending
//	            a fresh stack when already rightmost
//	%           copy the active top onto the right neighbor stack
//	~           swap the tops of the active stack and its right neighbor
//	'           quote: push the next block or word as a deferred value
var operators = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true, '^': true,
	'<': true, '>': true, '%': true, '~': true, '\'': true,
}

// lex tokenizes one line of input. It is purely syntactic: identifiers are
// not resolved, blocks are not captured, but bracket nesting is checked so
// an unbalanced line fails before any evaluation happens.
func lex(line string) ([]token, error) {
	var toks []token
	var opens []int
	runes := []rune(line)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case r == '#':
			i = len(runes)

		case r == '[':
			toks = append(toks, token{kind: tokOpen, pos: i, text: "["})
			opens = append(opens, i)
			i++

		case r == ']':
			if len(opens) == 0 {
				return nil, errAt(LexError, i, "unmatched %q", "]")
			}
			toks = append(toks, token{kind: tokClose, pos: i, text: "]"})
			opens = opens[:len(opens)-1]
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.' || runes[i] == '_') {
				i++
			}
			lit := string(runes[start:i])
			d, err := dec.Parse(lit)
			if err != nil {
				return nil, errAt(LexError, start, "%v", err)
			}
			toks = append(toks, token{kind: tokNumber, pos: start, text: lit, num: d})

		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			toks = append(toks, token{kind: tokWord, pos: start, text: string(runes[start:i])})

		case operators[r]:
			toks = append(toks, token{kind: tokOp, pos: i, text: string(r)})
			i++

		default:
			return nil, errAt(LexError, i, "invalid character %q", string(r))
		}
	}

	if len(opens) > 0 {
		return nil, errAt(LexError, opens[0], "unmatched %q", "[")
	}
	return toks, nil
}
