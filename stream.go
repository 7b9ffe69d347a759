package rtfmt

import (
	"io"
	"iter"
)

// WriteIter renders the template once per argument list yielded by seq and
// writes each rendering to w as it is produced. Every list gets a fresh
// implicit cursor, so the template consumes arguments from the start each
// time. No separator is inserted between renderings; put one in the
// template when each record should end a line.
//
// Rendering stops at the first error. Earlier renderings have already been
// written by then; a failing list itself writes nothing.
func (t *Template) WriteIter(w io.Writer, seq iter.Seq[[]Value]) error {
	return t.WriteIterNamed(w, nil, seq)
}

// WriteIterNamed is [Template.WriteIter] with a name table shared by every
// rendering. Positional arguments still vary per yielded list.
func (t *Template) WriteIterNamed(w io.Writer, named map[string]Value, seq iter.Seq[[]Value]) error {
	var iterErr error
	seq(func(args []Value) bool {
		s, err := t.RenderNamed(named, args...)
		if err != nil {
			iterErr = err
			return false
		}
		if _, err := io.WriteString(w, s); err != nil {
			iterErr = err
			return false
		}
		return true
	})
	return iterErr
}

// WriteChan renders the template once per argument list received from ch.
// It is a thin wrapper around [Template.WriteIter].
func (t *Template) WriteChan(w io.Writer, ch <-chan []Value) error {
	return t.WriteIter(w, chanToIter(ch))
}

func chanToIter(ch <-chan []Value) iter.Seq[[]Value] {
	return func(yield func([]Value) bool) {
		for args := range ch {
			if !yield(args) {
				return
			}
		}
	}
}
