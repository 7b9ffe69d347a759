package rtfmt

import (
	"io"
	"strings"
)

// Format parses template and renders it against positional arguments.
func Format(template string, args ...Value) (string, error) {
	return FormatNamed(template, nil, args...)
}

// FormatNamed parses template and renders it against positional arguments
// and a name table. A nil map is an empty table.
func FormatNamed(template string, named map[string]Value, args ...Value) (string, error) {
	t, err := Parse(template)
	if err != nil {
		return "", err
	}
	return t.RenderNamed(named, args...)
}

// Write formats template against positional arguments and writes the
// result to w. Nothing is written when formatting fails.
func Write(w io.Writer, template string, args ...Value) error {
	return WriteNamed(w, template, nil, args...)
}

// WriteNamed formats template against positional and named arguments and
// writes the result to w. Nothing is written when formatting fails.
func WriteNamed(w io.Writer, template string, named map[string]Value, args ...Value) error {
	s, err := FormatNamed(template, named, args...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Render renders the template against positional arguments.
func (t *Template) Render(args ...Value) (string, error) {
	return t.RenderNamed(nil, args...)
}

// RenderNamed renders the template against positional arguments and a name
// table. Rendering is all or nothing: any failure returns an empty string
// and an error wrapping one of the package sentinels.
func (t *Template) RenderNamed(named map[string]Value, args ...Value) (string, error) {
	src := argSource{positional: args, named: named}
	var b strings.Builder
	for i := range t.segs {
		seg := &t.segs[i]
		if seg.spec == nil {
			b.WriteString(seg.text)
			continue
		}
		if err := renderSegment(&b, seg, &src); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Write renders the template against positional arguments and writes the
// result to w. Nothing is written when rendering fails.
func (t *Template) Write(w io.Writer, args ...Value) error {
	return t.WriteNamed(w, nil, args...)
}

// WriteNamed renders the template against positional and named arguments
// and writes the result to w. Nothing is written when rendering fails.
func (t *Template) WriteNamed(w io.Writer, named map[string]Value, args ...Value) error {
	s, err := t.RenderNamed(named, args...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// renderSegment resolves and renders one placeholder. Resolution order
// matters for the implicit cursor: width first, then precision, then the
// value itself, so "{:.*}" takes its precision from the argument before
// the one it formats.
func renderSegment(b *strings.Builder, seg *segment, args *argSource) error {
	spec := seg.spec
	width, hasWidth, err := args.size(spec.Width, seg.pos)
	if err != nil {
		return err
	}
	prec, hasPrec, err := args.size(spec.Precision, seg.pos)
	if err != nil {
		return err
	}
	val, err := args.resolve(spec.Arg, seg.pos)
	if err != nil {
		return err
	}
	p, rerr := renderValue(val, spec, prec, hasPrec)
	if rerr != nil {
		return errBadVerb(seg.pos, spec.Verb, val)
	}
	assemble(b, p, spec, width, hasWidth, prec, hasPrec)
	return nil
}
