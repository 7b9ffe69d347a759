package rtfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. Every error returned by
// this package wraps exactly one of these; match with [errors.Is].
var (
	// ErrUnterminatedPlaceholder reports a '{' with no matching '}'.
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder")
	// ErrUnmatchedBrace reports a '}' outside any placeholder.
	ErrUnmatchedBrace = errors.New("unmatched closing brace")
	// ErrInvalidSpec reports a placeholder body that does not match the
	// format grammar.
	ErrInvalidSpec = errors.New("invalid format spec")
	// ErrMissingArgument reports a positional index or name with no
	// corresponding argument.
	ErrMissingArgument = errors.New("missing argument")
	// ErrArgumentsExhausted reports an implicit reference past the end of
	// the positional arguments.
	ErrArgumentsExhausted = errors.New("positional arguments exhausted")
	// ErrUnsupportedVerb reports a value that cannot render the requested
	// verb.
	ErrUnsupportedVerb = errors.New("unsupported verb")
	// ErrInvalidSize reports a width or precision reference whose argument
	// is not usable as a size.
	ErrInvalidSize = errors.New("invalid size argument")
)

// Error describes a failure to parse or render a template. Pos is always
// set; the other fields are populated according to the wrapped sentinel.
type Error struct {
	// Pos is the byte offset, within the template, of the opening brace of
	// the placeholder the failure belongs to (or of the stray brace
	// itself).
	Pos int

	// BodyPos is the byte offset of the offending character within the
	// placeholder body. Set for ErrInvalidSpec.
	BodyPos int

	// Selector identifies the argument reference that failed. Set for
	// ErrMissingArgument, ErrArgumentsExhausted, and ErrInvalidSize.
	Selector Selector

	// Verb is the rejected conversion. Set for ErrUnsupportedVerb.
	Verb Verb

	err    error
	detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("template offset %d: %s: %s", e.Pos, e.err, e.detail)
	}
	return fmt.Sprintf("template offset %d: %s", e.Pos, e.err)
}

// Unwrap returns the sentinel this error wraps.
func (e *Error) Unwrap() error { return e.err }

func errUnterminated(pos int) *Error {
	return &Error{Pos: pos, err: ErrUnterminatedPlaceholder}
}

func errUnmatched(pos int) *Error {
	return &Error{Pos: pos, err: ErrUnmatchedBrace}
}

func errSyntax(pos, bodyPos int, msg string) *Error {
	return &Error{
		Pos:     pos,
		BodyPos: bodyPos,
		err:     ErrInvalidSpec,
		detail:  fmt.Sprintf("%s at body offset %d", msg, bodyPos),
	}
}

func errMissing(pos int, sel Selector) *Error {
	return &Error{Pos: pos, Selector: sel, err: ErrMissingArgument, detail: sel.String()}
}

func errExhausted(pos int) *Error {
	return &Error{Pos: pos, err: ErrArgumentsExhausted}
}

func errBadSize(pos int, sel Selector, v Value) *Error {
	return &Error{
		Pos:      pos,
		Selector: sel,
		err:      ErrInvalidSize,
		detail:   fmt.Sprintf("%s (%T)", sel, v),
	}
}

func errBadVerb(pos int, verb Verb, v Value) *Error {
	return &Error{
		Pos:    pos,
		Verb:   verb,
		err:    ErrUnsupportedVerb,
		detail: fmt.Sprintf("%s on %T", verb.name(), v),
	}
}
