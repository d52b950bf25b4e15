package main

import (
	"context"

	"github.com/jcorbin/gostax/internal/dec"
)

// evaluator drives one input line's token sequence against a session. Each
// top-level token is applied atomically: the session is snapshotted before
// the token and restored when applying it fails, so a failing token leaves
// no partial effect and the rest of the line is discarded. Cancellation is
// only observed between tokens, never inside one.
type evaluator struct {
	ctx   context.Context
	s     *Session
	depth int
}

func (ev *evaluator) evalLine(line string) error {
	toks, err := lex(line)
	if err != nil {
		return err
	}
	for i := 0; i < len(toks); {
		if err := ev.ctx.Err(); err != nil {
			return err
		}
		stacks, dict := ev.s.stacks.snap(), ev.s.dict.snap()
		next, err := ev.evalToken(toks, i)
		if err != nil {
			ev.s.stacks.restore(stacks)
			ev.s.dict.restore(dict)
			return err
		}
		i = next
	}
	return nil
}

// evalSeq evaluates a captured token sequence (a block body); rollback is
// the enclosing top-level token's concern.
func (ev *evaluator) evalSeq(toks []token) error {
	for i := 0; i < len(toks); {
		if err := ev.ctx.Err(); err != nil {
			return err
		}
		next, err := ev.evalToken(toks, i)
		if err != nil {
			return err
		}
		i = next
	}
	return nil
}

// evalToken applies the token at i and returns the index after it; block
// and quote forms consume through their matching close bracket.
func (ev *evaluator) evalToken(toks []token, i int) (int, error) {
	t := toks[i]
	switch t.kind {
	case tokNumber:
		ev.active().push(numberValue{t.num})
		return i + 1, nil

	case tokWord:
		op, ok := ev.s.dict.lookup(t.text)
		if !ok {
			return 0, errAt(UnknownWordError, t.pos, "%q", t.text)
		}
		ev.s.logf("apply %q", t.text)
		if err := op.apply(ev, t.pos); err != nil {
			return 0, err
		}
		return i + 1, nil

	case tokOp:
		return ev.evalOp(toks, i)

	case tokOpen:
		// a bare block evaluates in a fresh stack appended to the set,
		// which becomes active; the previously active stack is untouched
		j := matchClose(toks, i)
		ss := ev.s.stacks
		ss.appendStack()
		ss.active = len(ss.stacks) - 1
		if err := ev.evalBlock(&Block{toks: toks[i+1 : j]}, t.pos); err != nil {
			return 0, err
		}
		return j + 1, nil

	default:
		return 0, errAt(LexError, t.pos, "unexpected %q", t.text)
	}
}

func (ev *evaluator) evalOp(toks []token, i int) (int, error) {
	t := toks[i]
	ss := ev.s.stacks
	switch t.text {
	case "+", "-", "*", "/", "^":
		return i + 1, ev.arith(t)

	case "<":
		if ss.active == 0 {
			return 0, errAt(StackUnderflow, t.pos, "no stack left of index 0")
		}
		ss.active--
		return i + 1, nil

	case ">":
		ss.rightNeighbor()
		ss.active++
		return i + 1, nil

	case "%":
		v, ok := ss.activeStack().top()
		if !ok {
			return 0, errAt(StackUnderflow, t.pos, "nothing to copy on stack %d", ss.active)
		}
		ss.rightNeighbor().push(v)
		return i + 1, nil

	case "~":
		if ss.active == len(ss.stacks)-1 {
			return 0, errAt(StackUnderflow, t.pos, "no stack right of index %d", ss.active)
		}
		a, b := ss.activeStack(), ss.stacks[ss.active+1]
		av, aok := a.peek(1)
		bv, bok := b.peek(1)
		if !aok || !bok {
			return 0, errAt(StackUnderflow, t.pos, "both stacks %d and %d need a top value to swap", ss.active, ss.active+1)
		}
		av[0], bv[0] = bv[0], av[0]
		return i + 1, nil

	case "'":
		return ev.quote(toks, i)

	default:
		return 0, errAt(LexError, t.pos, "unknown operator %q", t.text)
	}
}

// quote pushes the next block or word as a deferred Block value instead of
// evaluating it.
func (ev *evaluator) quote(toks []token, i int) (int, error) {
	t := toks[i]
	if i+1 >= len(toks) {
		return 0, errAt(TypeMismatch, t.pos, "quote needs a block or word to defer")
	}
	next := toks[i+1]
	switch next.kind {
	case tokOpen:
		j := matchClose(toks, i+1)
		ev.active().push(blockValue{block: &Block{toks: toks[i+2 : j]}})
		return j + 1, nil
	case tokWord:
		ev.active().push(blockValue{block: &Block{toks: []token{next}}})
		return i + 2, nil
	default:
		return 0, errAt(TypeMismatch, t.pos, "cannot quote %q", next.text)
	}
}

// arith applies a binary numeric operator to the top of the active stack,
// validating both operands before popping anything.
func (ev *evaluator) arith(t token) error {
	st := ev.active()
	vals, ok := st.peek(2)
	if !ok {
		return errAt(StackUnderflow, t.pos, "%q needs two operands, have %d", t.text, st.len())
	}
	a, err := needNumber(vals[0], t.pos, t.text)
	if err != nil {
		return err
	}
	b, err := needNumber(vals[1], t.pos, t.text)
	if err != nil {
		return err
	}

	var out dec.Dec
	switch t.text {
	case "+":
		out, err = ev.s.numCtx.Add(a, b)
	case "-":
		out, err = ev.s.numCtx.Sub(a, b)
	case "*":
		out, err = ev.s.numCtx.Mul(a, b)
	case "/":
		out, err = ev.s.numCtx.Quo(a, b)
	case "^":
		out, err = ev.s.numCtx.Pow(a, b)
	}
	if err != nil {
		return decErr(err, t.pos)
	}
	st.drop(2)
	st.push(numberValue{out})
	return nil
}

// evalBlock applies a block against the current session: same stack set,
// same dictionary, one deeper on the recursion counter. This is what lets a
// bound block call itself by name.
func (ev *evaluator) evalBlock(b *Block, pos int) error {
	if ev.depth >= ev.s.maxDepth {
		return errAt(RecursionLimitExceeded, pos, "nesting deeper than %d applying %v", ev.s.maxDepth, b)
	}
	ev.depth++
	defer func() { ev.depth-- }()
	return ev.evalSeq(b.toks)
}

func (ev *evaluator) active() *stack { return ev.s.stacks.activeStack() }

// need peeks the top n values of the active stack without popping, failing
// with StackUnderflow when fewer are present.
func (ev *evaluator) need(pos, n int, word string) ([]Value, error) {
	st := ev.active()
	vals, ok := st.peek(n)
	if !ok {
		return nil, errAt(StackUnderflow, pos, "%s needs %d value(s), have %d", word, n, st.len())
	}
	return vals, nil
}

func needNumber(v Value, pos int, word string) (dec.Dec, error) {
	nv, ok := v.(numberValue)
	if !ok {
		return dec.Dec{}, errAt(TypeMismatch, pos, "%s needs a number, got a %s", word, v.typeName())
	}
	return nv.num, nil
}

func needBlock(v Value, pos int, word string) (*Block, error) {
	bv, ok := v.(blockValue)
	if !ok {
		return nil, errAt(TypeMismatch, pos, "%s needs a block, got a %s", word, v.typeName())
	}
	return bv.block, nil
}

// matchClose returns the index of the close bracket matching the open
// bracket at i; the lexer has already guaranteed balance.
func matchClose(toks []token, i int) int {
	depth := 0
	for j := i; j < len(toks); j++ {
		switch toks[j].kind {
		case tokOpen:
			depth++
		case tokClose:
			if depth--; depth == 0 {
				return j
			}
		}
	}
	return len(toks)
}
