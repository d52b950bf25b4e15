// Package fileinput provides line-oriented reading across a queue of one or
// more input streams, tracking stream names and line numbers so diagnostics
// can point at their source.
package fileinput

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gostax/internal/runeio"
)

// Location names a line within an input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input reads lines sequentially through a Queue of input streams, rolling
// over to the next stream at EOF.
type Input struct {
	rr  io.RuneReader
	loc Location

	Queue []io.Reader
}

// ReadLine returns the next input line, without its terminator, along with
// the location it came from. It returns io.EOF only once every queued
// stream is exhausted; a final line without a trailing newline is still
// returned (with a nil error) before that.
func (in *Input) ReadLine() (string, Location, error) {
	if in.rr == nil && !in.nextIn() {
		return "", in.loc, io.EOF
	}

	var sb strings.Builder
	for {
		r, _, err := in.rr.ReadRune()
		switch {
		case err == io.EOF:
			if sb.Len() > 0 {
				loc := in.loc
				in.nextIn()
				return sb.String(), loc, nil
			}
			if !in.nextIn() {
				return "", in.loc, io.EOF
			}
		case err != nil:
			return "", in.loc, err
		case r == '\n':
			loc := in.loc
			in.loc.Line++
			return sb.String(), loc, nil
		case r != '\r':
			sb.WriteRune(r)
		}
	}
}

func (in *Input) nextIn() bool {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.loc = Location{Name: nameOf(r), Line: 1}
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to a reader so Input can report it in
// locations.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{Reader: r, name: name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
