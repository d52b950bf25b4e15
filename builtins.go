package main

import "github.com/jcorbin/gostax/internal/dec"

// Core words bound into every new dictionary. Any of them may be overwritten
// by a user definition; lookups always see the latest binding.
//
// Every word validates all of its operands before mutating the active stack,
// so a failed word leaves the stack exactly as it found it.
var coreWords = []builtinOp{
	{"dup", wordDup},     // ( a -- a a )
	{"drop", wordDrop},   // ( a -- )
	{"swap", wordSwap},   // ( a b -- b a )
	{"over", wordOver},   // ( a b -- a b a )
	{"rot", wordRot},     // ( a b c -- b c a )
	{"clear", wordClear}, // ( ... -- )
	{"depth", wordDepth}, // ( -- n )
	{"neg", wordNeg},     // ( a -- -a )
	{"abs", wordAbs},     // ( a -- |a| )
	{"apply", wordApply}, // ( blk -- ... )
	{"def", wordDef},     // ( body name -- )
	{"ifz", wordIfz},     // ( n then else -- ... )
	{"pi", wordPi},       // ( -- pi )
	{"e", wordE},         // ( -- e )
}

func wordDup(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 1, "dup")
	if err != nil {
		return err
	}
	ev.active().push(vals[0])
	return nil
}

func wordDrop(ev *evaluator, pos int) error {
	if _, err := ev.need(pos, 1, "drop"); err != nil {
		return err
	}
	ev.active().drop(1)
	return nil
}

func wordSwap(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 2, "swap")
	if err != nil {
		return err
	}
	vals[0], vals[1] = vals[1], vals[0]
	return nil
}

func wordOver(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 2, "over")
	if err != nil {
		return err
	}
	ev.active().push(vals[0])
	return nil
}

func wordRot(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 3, "rot")
	if err != nil {
		return err
	}
	vals[0], vals[1], vals[2] = vals[1], vals[2], vals[0]
	return nil
}

func wordClear(ev *evaluator, pos int) error {
	st := ev.active()
	st.drop(st.len())
	return nil
}

func wordDepth(ev *evaluator, pos int) error {
	st := ev.active()
	st.push(numberValue{dec.FromInt64(int64(st.len()))})
	return nil
}

func wordNeg(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 1, "neg")
	if err != nil {
		return err
	}
	n, err := needNumber(vals[0], pos, "neg")
	if err != nil {
		return err
	}
	st := ev.active()
	st.drop(1)
	st.push(numberValue{n.Neg()})
	return nil
}

func wordAbs(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 1, "abs")
	if err != nil {
		return err
	}
	n, err := needNumber(vals[0], pos, "abs")
	if err != nil {
		return err
	}
	st := ev.active()
	st.drop(1)
	st.push(numberValue{n.Abs()})
	return nil
}

func wordApply(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 1, "apply")
	if err != nil {
		return err
	}
	b, err := needBlock(vals[0], pos, "apply")
	if err != nil {
		return err
	}
	ev.active().drop(1)
	return ev.evalBlock(b, pos)
}

// wordDef binds a quoted body to a quoted name: 'bodyblock 'name def.
// The name operand must be a block holding exactly one identifier token.
func wordDef(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 2, "def")
	if err != nil {
		return err
	}
	body, err := needBlock(vals[0], pos, "def")
	if err != nil {
		return err
	}
	nameBlock, err := needBlock(vals[1], pos, "def")
	if err != nil {
		return err
	}
	if len(nameBlock.toks) != 1 || nameBlock.toks[0].kind != tokWord {
		return errAt(TypeMismatch, pos, "def needs a quoted name, got %v", nameBlock)
	}
	name := nameBlock.toks[0].text
	ev.active().drop(2)
	ev.s.dict.define(name, userOp{block: body.named(name)})
	ev.s.logf("def %q <- %v", name, body)
	return nil
}

// wordIfz pops an else block, a then block, and a number; it applies the
// then block when the number is zero, the else block otherwise. This is the
// only branching primitive; combined with recursion through named blocks it
// is enough for words like a textbook Ackermann.
func wordIfz(ev *evaluator, pos int) error {
	vals, err := ev.need(pos, 3, "ifz")
	if err != nil {
		return err
	}
	cond, err := needNumber(vals[0], pos, "ifz")
	if err != nil {
		return err
	}
	thenBlock, err := needBlock(vals[1], pos, "ifz")
	if err != nil {
		return err
	}
	elseBlock, err := needBlock(vals[2], pos, "ifz")
	if err != nil {
		return err
	}
	ev.active().drop(3)
	if cond.IsZero() {
		return ev.evalBlock(thenBlock, pos)
	}
	return ev.evalBlock(elseBlock, pos)
}

func wordPi(ev *evaluator, pos int) error {
	ev.active().push(numberValue{ev.s.numCtx.Pi()})
	return nil
}

func wordE(ev *evaluator, pos int) error {
	ev.active().push(numberValue{ev.s.numCtx.E()})
	return nil
}
