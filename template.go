package rtfmt

import "strings"

// segment is one run of a parsed template: literal text when spec is nil,
// otherwise a placeholder. pos is the template byte offset of the opening
// brace, carried for render-time errors.
type segment struct {
	text string
	spec *Spec
	pos  int
}

// Template is a parsed format template. A Template is immutable and may be
// rendered any number of times, including concurrently; every render owns
// its own implicit-argument cursor and output buffer.
type Template struct {
	segs []segment
}

// Parse tokenizes template into literal and placeholder segments, parsing
// each placeholder body into a [Spec]. "{{" and "}}" are literal braces.
// No arguments are consulted; references are resolved per render.
func Parse(template string) (*Template, error) {
	t := &Template{}
	rest := template
	for len(rest) > 0 {
		i := strings.IndexAny(rest, "{}")
		if i < 0 {
			t.addText(rest)
			break
		}
		if i > 0 {
			t.addText(rest[:i])
			rest = rest[i:]
		}
		pos := len(template) - len(rest)
		if len(rest) >= 2 && rest[1] == rest[0] {
			t.addText(rest[:1])
			rest = rest[2:]
			continue
		}
		if rest[0] == '}' {
			return nil, errUnmatched(pos)
		}
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, errUnterminated(pos)
		}
		spec, serr := parseSpecBody(rest[1:end])
		if serr != nil {
			return nil, errSyntax(pos, serr.off, serr.msg)
		}
		t.segs = append(t.segs, segment{spec: &spec, pos: pos})
		rest = rest[end+1:]
	}
	return t, nil
}

// addText appends literal text, merging adjacent literal segments so that
// unescaped runs around "{{" and "}}" stay contiguous.
func (t *Template) addText(s string) {
	if s == "" {
		return
	}
	if n := len(t.segs); n > 0 && t.segs[n-1].spec == nil {
		t.segs[n-1].text += s
		return
	}
	t.segs = append(t.segs, segment{text: s})
}

var braceEscaper = strings.NewReplacer("{", "{{", "}", "}}")

// String reconstructs the template source in canonical form: literal braces
// re-escaped and each placeholder rendered through [Spec.String].
func (t *Template) String() string {
	var b strings.Builder
	for i := range t.segs {
		if seg := &t.segs[i]; seg.spec == nil {
			b.WriteString(braceEscaper.Replace(seg.text))
		} else {
			b.WriteByte('{')
			b.WriteString(seg.spec.String())
			b.WriteByte('}')
		}
	}
	return b.String()
}
