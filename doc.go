// Package rtfmt formats values using a template parsed at runtime.
//
// Templates use the brace placeholder syntax familiar from Rust's format
// macros: literal text with "{...}" placeholders, "{{" and "}}" for
// literal braces. Because the template is a plain string, it can come from
// configuration, translation bundles, or user input instead of being fixed
// at compile time.
//
//	s, err := rtfmt.Format("{} scored {:>5.1}%", rtfmt.Str("ada"), rtfmt.Float(97.25))
//	// s == "ada scored  97.2%"
//
// The central entry points are [Format], [FormatNamed], [Write], and
// [WriteNamed]. Use [Parse] to parse once and render many times with
// [Template.Render] and friends; a parsed [Template] is immutable and safe
// for concurrent renders.
//
// # Placeholder Syntax
//
// A placeholder is "{argument:spec}" where both parts are optional:
//
//	{}        next positional argument
//	{2}       positional argument 2
//	{count}   named argument "count"
//	{:>8}     next argument, right-aligned in 8 cells
//	{x:#010X} named argument "x", zero-padded upper hex with 0x prefix
//
// The spec part accepts, in order: an alignment ('<', '^', '>'), a sign
// ('+'), the alternate flag ('#'), the zero-pad flag ('0'), a width, a
// precision (".N"), and a verb. Width and precision may also be indirect:
// "N$" or "name$" reads the size from another argument, and the precision
// form ".*" takes it from the next implicit argument. Alignment and width
// count display cells, so East Asian wide runes occupy two.
//
// # Verbs
//
// The verb picks the conversion; without one the argument's plain Display
// form is used:
//
//   - [Display] — plain text (no letter)
//   - [Debug] — '?', source-like form; '#' selects an expanded layout
//   - [Binary], [Octal], [LowerHex], [UpperHex] — 'b', 'o', 'x', 'X';
//     '#' adds the 0b/0o/0x prefix
//   - [LowerExp], [UpperExp] — 'e', 'E', exponent notation like 4.2e1
//
// Negative integers render their magnitude behind a '-' sign in every
// base, so -42 in lower hex is "-2a" rather than a two's complement bit
// pattern.
//
// # Arguments
//
// Arguments are [Value] implementations. The adapters [Int], [Uint],
// [Float], [Str], [Bool], [Rune], and [Any] cover common Go types:
//
//	rtfmt.Format("{0} = {0:#x}", rtfmt.Int(255))   // "255 = 0xff"
//
// Named arguments come from a map passed to the Named variants:
//
//	rtfmt.FormatNamed("{name}: {n}", map[string]rtfmt.Value{
//		"name": rtfmt.Str("retries"),
//		"n":    rtfmt.Int(3),
//	})
//
// Implement [Value] directly to format domain types without converting
// them first: Supports declares the verbs a value accepts, and the
// accessor interfaces ([Displayer], [Debugger], [PrettyDebugger],
// [IntValue], [FloatValue], [Sizer]) supply the data the renderer needs.
//
// # Errors
//
// Every failure wraps one of the package sentinels; match with
// [errors.Is]:
//
//   - [ErrUnterminatedPlaceholder], [ErrUnmatchedBrace], [ErrInvalidSpec]
//     — template syntax
//   - [ErrMissingArgument], [ErrArgumentsExhausted] — unresolved argument
//     references
//   - [ErrInvalidSize] — width or precision reference that is not a usable
//     size
//   - [ErrUnsupportedVerb] — verb the value cannot render
//
// Errors are of type [*Error] and carry the byte offset of the offending
// placeholder. Rendering is all or nothing: a failing placeholder yields
// an error and no output, never partial text.
package rtfmt
