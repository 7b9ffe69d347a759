package rtfmt

// Value is a runtime argument bound to template placeholders. Supports is
// the capability check: it runs before any rendering, and a false return
// surfaces as [ErrUnsupportedVerb] without partial output. The renderer
// obtains the actual data through the accessor interfaces below; a Value
// must implement every accessor its Supports set implies.
//
// The package adapters ([Int], [Uint], [Float], [Str], [Bool], [Rune],
// [Any]) cover the common cases. Implement Value directly to format domain
// types without converting them first.
type Value interface {
	Supports(verb Verb) bool
}

// --- Accessor Interfaces ---

// Displayer provides the plain text form used by the Display verb. Values
// that support Display implement either this or one of the numeric
// accessors; when both are present the text form wins, so a value can pair
// a bespoke Display with numeric base conversions.
type Displayer interface {
	Display() string
}

// Debugger provides the source-like form used by the Debug verb. Values
// that support Debug implement either this or one of the numeric
// accessors; when both are present the text form wins.
type Debugger interface {
	Debug() string
}

// PrettyDebugger optionally provides the expanded multi-line form selected
// by the alternate flag, as in "{:#?}". Without it the Debug form is used.
type PrettyDebugger interface {
	DebugPretty() string
}

// IntValue exposes a sign and magnitude for integer rendering: decimal
// display, base conversions, sign-aware zero padding, and exact exponent
// notation. Negative values report neg true and their absolute value, so
// bases render the magnitude rather than a two's complement bit pattern.
type IntValue interface {
	IntValue() (neg bool, mag uint64)
}

// FloatValue exposes a floating-point value for the float rendering paths.
type FloatValue interface {
	FloatValue() float64
}

// Sizer is implemented by values that can serve as an indirect width or
// precision. AsSize reports false when the value is negative or does not
// fit in an int.
type Sizer interface {
	AsSize() (int, bool)
}
