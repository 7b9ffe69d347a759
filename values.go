package rtfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Int adapts a signed integer. It supports every verb and can serve as a
// width or precision when non-negative.
func Int(v int64) Value { return intVal(v) }

// Uint adapts an unsigned integer. It supports every verb and can serve as
// a width or precision.
func Uint(v uint64) Value { return uintVal(v) }

// Float adapts a floating-point number. It supports Display, Debug, and
// the exponent verbs.
func Float(v float64) Value { return floatVal(v) }

// Str adapts a string. It supports Display and Debug; Debug renders the
// quoted Go form.
func Str(v string) Value { return strVal(v) }

// Bool adapts a bool. It supports Display and Debug, both rendering "true"
// or "false".
func Bool(v bool) Value { return boolVal(v) }

// Rune adapts a single rune. It supports Display and Debug; Debug renders
// the quoted Go form.
func Rune(v rune) Value { return runeVal(v) }

// Any adapts an arbitrary Go value. Display uses [fmt.Stringer] when the
// value implements it and the "%v" form otherwise; Debug uses the "%#v"
// form; the alternate debug form is a multi-line dump with map keys
// sorted for stable output.
func Any(v any) Value { return anyVal{v: v} }

// --- Int ---

type intVal int64

func (v intVal) Supports(Verb) bool { return true }

func (v intVal) IntValue() (bool, uint64) {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}
	return neg, mag
}

func (v intVal) AsSize() (int, bool) {
	if v < 0 || v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// --- Uint ---

type uintVal uint64

func (v uintVal) Supports(Verb) bool { return true }

func (v uintVal) IntValue() (bool, uint64) { return false, uint64(v) }

func (v uintVal) AsSize() (int, bool) {
	if v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// --- Float ---

type floatVal float64

func (v floatVal) Supports(verb Verb) bool {
	switch verb {
	case Display, Debug, LowerExp, UpperExp:
		return true
	default:
		return false
	}
}

func (v floatVal) FloatValue() float64 { return float64(v) }

// --- Str ---

type strVal string

func (v strVal) Supports(verb Verb) bool { return verb == Display || verb == Debug }

func (v strVal) Display() string { return string(v) }

func (v strVal) Debug() string { return strconv.Quote(string(v)) }

// --- Bool ---

type boolVal bool

func (v boolVal) Supports(verb Verb) bool { return verb == Display || verb == Debug }

func (v boolVal) Display() string { return strconv.FormatBool(bool(v)) }

func (v boolVal) Debug() string { return strconv.FormatBool(bool(v)) }

// --- Rune ---

type runeVal rune

func (v runeVal) Supports(verb Verb) bool { return verb == Display || verb == Debug }

func (v runeVal) Display() string { return string(rune(v)) }

func (v runeVal) Debug() string { return strconv.QuoteRune(rune(v)) }

// --- Any ---

var spewCfg = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

type anyVal struct {
	v any
}

func (v anyVal) Supports(verb Verb) bool { return verb == Display || verb == Debug }

func (v anyVal) Display() string {
	if s, ok := v.v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v.v)
}

func (v anyVal) Debug() string { return fmt.Sprintf("%#v", v.v) }

func (v anyVal) DebugPretty() string {
	return strings.TrimRight(spewCfg.Sdump(v.v), "\n")
}
