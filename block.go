package main

import "fmt"

// A Block is an immutable token sequence captured at definition time,
// evaluated on demand. A Block bound into the dictionary carries its bound
// name; anonymous blocks have none. Evaluating a Block never mutates it.
type Block struct {
	name string
	toks []token
}

func (b *Block) String() string {
	if b.name != "" {
		return fmt.Sprintf("<blk %s>", b.name)
	}
	return fmt.Sprintf("<blk/%d>", len(b.toks))
}

// named returns a copy of b bound to name; the token sequence is shared
// since it is immutable.
func (b *Block) named(name string) *Block {
	return &Block{name: name, toks: b.toks}
}
