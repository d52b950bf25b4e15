package main

import "github.com/jcorbin/gostax/internal/dec"

// A Value is either a Number or a Block; nothing else ever lands on a stack.
type Value interface {
	String() string
	typeName() string
}

type numberValue struct{ num dec.Dec }

func (v numberValue) String() string   { return v.num.String() }
func (v numberValue) typeName() string { return "number" }

type blockValue struct{ block *Block }

func (v blockValue) String() string   { return v.block.String() }
func (v blockValue) typeName() string { return "block" }

// A stack is an ordered sequence of Values mutated only at the top
// (the end of the slice).
type stack struct {
	values []Value
}

func (st *stack) push(v Value) { st.values = append(st.values, v) }

func (st *stack) len() int { return len(st.values) }

func (st *stack) top() (Value, bool) {
	if len(st.values) == 0 {
		return nil, false
	}
	return st.values[len(st.values)-1], true
}

// peek returns the top n values in stack order (deepest first) without
// popping them, so operators can validate all operands before mutating.
func (st *stack) peek(n int) ([]Value, bool) {
	if len(st.values) < n {
		return nil, false
	}
	return st.values[len(st.values)-n:], true
}

func (st *stack) drop(n int) { st.values = st.values[:len(st.values)-n] }

// A stackSet is an arena of stacks addressed by stable zero-based index,
// plus the index of the active stack. Stacks are only ever appended at the
// end, so an index never moves once assigned.
type stackSet struct {
	stacks []*stack
	active int
}

func newStackSet() *stackSet {
	return &stackSet{stacks: []*stack{{}}}
}

func (ss *stackSet) activeStack() *stack { return ss.stacks[ss.active] }

func (ss *stackSet) appendStack() *stack {
	st := &stack{}
	ss.stacks = append(ss.stacks, st)
	return st
}

// rightNeighbor returns the stack right of the active one, appending a fresh
// stack when the active stack is rightmost.
func (ss *stackSet) rightNeighbor() *stack {
	if ss.active == len(ss.stacks)-1 {
		return ss.appendStack()
	}
	return ss.stacks[ss.active+1]
}

// snapshot captures the full stack-set state; values are immutable so only
// the slices are copied. restore puts a prior snapshot back, discarding any
// stacks appended since.
type snapshot struct {
	stacks []*stack
	active int
}

func (ss *stackSet) snap() snapshot {
	stacks := make([]*stack, len(ss.stacks))
	for i, st := range ss.stacks {
		stacks[i] = &stack{values: append([]Value(nil), st.values...)}
	}
	return snapshot{stacks: stacks, active: ss.active}
}

func (ss *stackSet) restore(sn snapshot) {
	ss.stacks, ss.active = sn.stacks, sn.active
}
