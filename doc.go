/* Package main: gostax -- a multi-stack decimal calculator language

gostax reads lines of symbolic tokens and evaluates them against a set of
value stacks holding arbitrary-precision decimals and deferred blocks. It is
in the concatenative family: there is no expression grammar, just tokens
applied left to right against the active stack, and a dictionary of words
that users can rebind freely -- built-ins are not special, the latest
binding always wins.

Numbers

Numbers are signed decimals of unbounded size, though literals are always
unsigned: "-" is only ever the subtraction operator, so negative values come
from arithmetic or the neg word. Addition, subtraction, and multiplication
are exact; division and fractional exponentiation round half-up to the
working precision (48 significant digits unless configured otherwise). Any
result whose coefficient digits or decimal places would exceed the
configured ceiling fails the line with a precision error instead of silently
truncating, so a tower like "9 9^ 9^ 9^ 9^" dies loudly rather than eating
all memory.

Stacks

There is always at least one stack, and plain arithmetic targets the active
one. More stacks appear in two ways: the ">" operator moves the active
pointer right, appending a fresh stack when there is nothing to the right;
and a bare block "[ ... ]" evaluates its tokens in a brand new stack
appended at the end, which becomes active -- the previously active stack is
never touched by a bare block, which is what makes "[pi]" materialize the
constant in its own visible column. Stack indices are stable: stacks are
only ever appended, never inserted or removed.

The full operator table:

	+ - * / ^   binary arithmetic on the top two of the active stack
	<           move the active pointer one stack left
	>           move the active pointer one stack right (appending)
	%           copy the active top onto the right neighbor
	~           swap the tops of the active stack and its right neighbor
	'           quote the next block or word as a deferred value

Blocks and words

A quoted block is a value. It lands on the stack unevaluated and can be
applied later ("apply"), chosen between ("ifz"), or bound into the
dictionary ("def"):

	'[dup *] 'square def
	4 square            # leaves 16

A bound block is applied against the current stack set and dictionary, so it
may reference its own name and recurse; a per-line depth limit turns runaway
recursion into an error instead of a hang. With "ifz" as the only branching
primitive, that is enough rope for the classics:

	'[ over '[ swap drop 1 + ] '[ dup '[ drop 1 - 1 ack ] '[ over swap 1 - ack swap 1 - swap ack ] ifz ] ifz ] 'ack def
	2 3 ack             # leaves 9

Lines

Each input line is evaluated as a unit. On success the stack set is printed
as a two-row grid: each stack's top value bracketed in a fixed-width column,
with the stack's index centered beneath. On failure a one-line diagnostic
names the error kind and the offending token's position, the rest of the
line is discarded, and the session is left exactly as it was before the
failing token. Blank lines and lines starting with "#" do nothing.
*/
package main
