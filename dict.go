package main

// An Operation is whatever a dictionary name resolves to: a built-in
// primitive or a user-bound Block. The evaluator applies either through the
// same contract and never cares which it holds.
type Operation interface {
	apply(ev *evaluator, pos int) error
}

type builtinOp struct {
	name string
	fn   func(ev *evaluator, pos int) error
}

func (b builtinOp) apply(ev *evaluator, pos int) error { return b.fn(ev, pos) }

type userOp struct {
	block *Block
}

func (w userOp) apply(ev *evaluator, pos int) error { return ev.evalBlock(w.block, pos) }

// A dictionary is the single flat session-scoped name table. Lookups resolve
// to the most recent binding: a user definition freely overwrites a
// built-in, and nothing is ever shadowed by scope.
type dictionary struct {
	ops map[string]Operation
}

func newDictionary() *dictionary {
	d := &dictionary{ops: make(map[string]Operation)}
	for _, b := range coreWords {
		d.ops[b.name] = b
	}
	return d
}

func (d *dictionary) define(name string, op Operation) { d.ops[name] = op }

func (d *dictionary) lookup(name string) (Operation, bool) {
	op, ok := d.ops[name]
	return op, ok
}

// snap copies the name table so a failing token can be rolled back without
// leaving a partial definition behind.
func (d *dictionary) snap() map[string]Operation {
	ops := make(map[string]Operation, len(d.ops))
	for name, op := range d.ops {
		ops[name] = op
	}
	return ops
}

func (d *dictionary) restore(ops map[string]Operation) { d.ops = ops }
