package rtfmt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Verb selects how a placeholder renders its argument. The zero value is
// Display, the plain text form used when a placeholder carries no type
// letter.
type Verb int

const (
	Display  Verb = iota // plain text, no type letter
	Debug                // '?'
	Binary               // 'b'
	Octal                // 'o'
	LowerHex             // 'x'
	UpperHex             // 'X'
	LowerExp             // 'e'
	UpperExp             // 'E'
)

// String returns the type letter the verb is written as in a template.
// Display returns the empty string.
func (v Verb) String() string {
	switch v {
	case Debug:
		return "?"
	case Binary:
		return "b"
	case Octal:
		return "o"
	case LowerHex:
		return "x"
	case UpperHex:
		return "X"
	case LowerExp:
		return "e"
	case UpperExp:
		return "E"
	default:
		return ""
	}
}

// name returns a readable description for error messages.
func (v Verb) name() string {
	switch v {
	case Debug:
		return "debug"
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case LowerHex, UpperHex:
		return "hex"
	case LowerExp, UpperExp:
		return "exponent"
	default:
		return "display"
	}
}

// Alignment controls placeholder text alignment within a width.
type Alignment int

const (
	AlignDefault Alignment = iota // right for numeric renders, left otherwise
	AlignLeft                     // '<'
	AlignCenter                   // '^'
	AlignRight                    // '>'
)

// Sign controls sign display for numeric renders.
type Sign int

const (
	SignDefault Sign = iota // '-' for negative values only
	SignAlways              // '+': every value carries a sign
)

// SelectorKind discriminates the ways a placeholder can address an
// argument.
type SelectorKind int

const (
	SelectorImplicit SelectorKind = iota // next unused positional argument
	SelectorIndex                        // explicit position, e.g. {2}
	SelectorName                         // named argument, e.g. {count}
)

// Selector addresses a single argument: implicitly through the per-render
// cursor, by explicit position, or by name. The zero value is the implicit
// selector.
type Selector struct {
	Kind  SelectorKind
	Index int    // set for SelectorIndex
	Name  string // set for SelectorName
}

// String describes the selector for diagnostics.
func (s Selector) String() string {
	switch s.Kind {
	case SelectorIndex:
		return fmt.Sprintf("position %d", s.Index)
	case SelectorName:
		return fmt.Sprintf("name %q", s.Name)
	default:
		return "implicit"
	}
}

// source returns the selector as it is written inside a placeholder.
func (s Selector) source() string {
	switch s.Kind {
	case SelectorIndex:
		return strconv.Itoa(s.Index)
	case SelectorName:
		return s.Name
	default:
		return ""
	}
}

// SizeKind discriminates how a width or precision is supplied.
type SizeKind int

const (
	SizeNone  SizeKind = iota // directive absent
	SizeFixed                 // literal number in the template
	SizeArg                   // another argument's value, e.g. 1$ or count$
	SizeNext                  // '*': next implicit argument (precision only)
)

// Size is a width or precision directive. The zero value means the
// directive is absent.
type Size struct {
	Kind SizeKind
	Num  int      // set for SizeFixed
	Ref  Selector // set for SizeArg
}

// Spec is the parsed form of a single placeholder: which argument to render
// and how. Specs hold unresolved references; arguments are looked up per
// render.
type Spec struct {
	Arg       Selector
	Align     Alignment
	Sign      Sign
	Alt       bool // '#': base prefix for b/o/x/X, expanded debug form
	ZeroPad   bool // '0': fill numeric renders with zeros inside the width
	Width     Size
	Precision Size
	Verb      Verb
}

// ParseSpec parses the text between a placeholder's braces into a [Spec].
// No arguments are consulted. On failure the returned error wraps
// [ErrInvalidSpec] and its BodyPos locates the offending byte in body.
func ParseSpec(body string) (Spec, error) {
	spec, serr := parseSpecBody(body)
	if serr != nil {
		return Spec{}, errSyntax(0, serr.off, serr.msg)
	}
	return spec, nil
}

// String reconstructs the placeholder body in canonical form, such that
// "{" + s.String() + "}" parses back to an equivalent Spec.
func (s Spec) String() string {
	var flags strings.Builder
	switch s.Align {
	case AlignLeft:
		flags.WriteByte('<')
	case AlignCenter:
		flags.WriteByte('^')
	case AlignRight:
		flags.WriteByte('>')
	}
	if s.Sign == SignAlways {
		flags.WriteByte('+')
	}
	if s.Alt {
		flags.WriteByte('#')
	}
	if s.ZeroPad {
		flags.WriteByte('0')
	}
	switch s.Width.Kind {
	case SizeFixed:
		flags.WriteString(strconv.Itoa(s.Width.Num))
	case SizeArg:
		flags.WriteString(s.Width.Ref.source())
		flags.WriteByte('$')
	}
	switch s.Precision.Kind {
	case SizeFixed:
		flags.WriteByte('.')
		flags.WriteString(strconv.Itoa(s.Precision.Num))
	case SizeArg:
		flags.WriteByte('.')
		flags.WriteString(s.Precision.Ref.source())
		flags.WriteByte('$')
	case SizeNext:
		flags.WriteString(".*")
	}
	flags.WriteString(s.Verb.String())
	arg := s.Arg.source()
	if flags.Len() == 0 {
		return arg
	}
	return arg + ":" + flags.String()
}

// specErr is a grammar failure at a byte offset within a placeholder body.
type specErr struct {
	off int
	msg string
}

func parseSpecBody(body string) (Spec, *specErr) {
	var spec Spec
	argText := body
	flags := ""
	hasFlags := false
	if i := strings.IndexByte(body, ':'); i >= 0 {
		argText, flags = body[:i], body[i+1:]
		hasFlags = true
	}
	sel, serr := parseSelector(argText)
	if serr != nil {
		return Spec{}, serr
	}
	spec.Arg = sel
	if !hasFlags {
		return spec, nil
	}
	if serr := parseFlags(&spec, flags, len(body)-len(flags)); serr != nil {
		return Spec{}, serr
	}
	return spec, nil
}

// parseSelector classifies a placeholder's argument part: empty for
// implicit, all digits for positional, identifier for named.
func parseSelector(s string) (Selector, *specErr) {
	if s == "" {
		return Selector{}, nil
	}
	if s[0] >= '0' && s[0] <= '9' {
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return Selector{}, &specErr{off: i, msg: "invalid argument position"}
			}
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Selector{}, &specErr{off: 0, msg: "argument position out of range"}
		}
		return Selector{Kind: SelectorIndex, Index: n}, nil
	}
	if off := identOffset(s); off >= 0 {
		return Selector{}, &specErr{off: off, msg: "invalid argument name"}
	}
	return Selector{Kind: SelectorName, Name: s}, nil
}

// identOffset returns the byte offset of the first rune that disqualifies s
// as an identifier, or -1 when s is a valid identifier. Identifiers start
// with a letter or underscore and continue with letters, digits, or
// underscores.
func identOffset(s string) int {
	if s == "" {
		return 0
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return i
	}
	return -1
}

// parseFlags scans the format portion of a placeholder body (everything
// after the ':'). base is the portion's byte offset within the body, used
// to report error offsets relative to the whole body.
func parseFlags(spec *Spec, flags string, base int) *specErr {
	p := 0
	if p < len(flags) {
		switch flags[p] {
		case '<':
			spec.Align = AlignLeft
			p++
		case '^':
			spec.Align = AlignCenter
			p++
		case '>':
			spec.Align = AlignRight
			p++
		}
	}
	if p < len(flags) && flags[p] == '+' {
		spec.Sign = SignAlways
		p++
	}
	if p < len(flags) && flags[p] == '#' {
		spec.Alt = true
		p++
	}
	// A leading '0' is the zero-pad flag unless it begins an indirect
	// width, as in "0$".
	if p < len(flags) && flags[p] == '0' && !(p+1 < len(flags) && flags[p+1] == '$') {
		spec.ZeroPad = true
		p++
	}
	width, np, serr := parseSize(flags, p, base)
	if serr != nil {
		return serr
	}
	spec.Width = width
	p = np
	if p < len(flags) && flags[p] == '.' {
		dot := p
		p++
		if p < len(flags) && flags[p] == '*' {
			spec.Precision = Size{Kind: SizeNext}
			p++
		} else {
			prec, np, serr := parseSize(flags, p, base)
			if serr != nil {
				return serr
			}
			if prec.Kind == SizeNone {
				return &specErr{off: base + dot, msg: "invalid precision"}
			}
			spec.Precision = prec
			p = np
		}
	}
	if p < len(flags) {
		switch flags[p] {
		case '?':
			spec.Verb = Debug
			p++
		case 'b':
			spec.Verb = Binary
			p++
		case 'o':
			spec.Verb = Octal
			p++
		case 'x':
			spec.Verb = LowerHex
			p++
		case 'X':
			spec.Verb = UpperHex
			p++
		case 'e':
			spec.Verb = LowerExp
			p++
		case 'E':
			spec.Verb = UpperExp
			p++
		}
	}
	if p < len(flags) {
		r, _ := utf8.DecodeRuneInString(flags[p:])
		return &specErr{off: base + p, msg: fmt.Sprintf("unexpected %q", r)}
	}
	return nil
}

// parseSize scans a width or precision at flags[p:]. Literal digits stand
// for themselves; digits or an identifier followed by '$' reference another
// argument. Anything else is not a size: parseSize leaves it unconsumed so
// the caller can try it as a verb.
func parseSize(flags string, p, base int) (Size, int, *specErr) {
	if p >= len(flags) {
		return Size{}, p, nil
	}
	if c := flags[p]; c >= '0' && c <= '9' {
		q := p
		for q < len(flags) && flags[q] >= '0' && flags[q] <= '9' {
			q++
		}
		n, err := strconv.Atoi(flags[p:q])
		if err != nil {
			return Size{}, p, &specErr{off: base + p, msg: "size out of range"}
		}
		if q < len(flags) && flags[q] == '$' {
			ref := Selector{Kind: SelectorIndex, Index: n}
			return Size{Kind: SizeArg, Ref: ref}, q + 1, nil
		}
		return Size{Kind: SizeFixed, Num: n}, q, nil
	}
	r, w := utf8.DecodeRuneInString(flags[p:])
	if r != '_' && !unicode.IsLetter(r) {
		return Size{}, p, nil
	}
	q := p + w
	for q < len(flags) {
		r, w := utf8.DecodeRuneInString(flags[q:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		q += w
	}
	if q < len(flags) && flags[q] == '$' {
		ref := Selector{Kind: SelectorName, Name: flags[p:q]}
		return Size{Kind: SizeArg, Ref: ref}, q + 1, nil
	}
	// An identifier without '$' is not a size. It may still be a verb
	// letter.
	return Size{}, p, nil
}
