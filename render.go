package rtfmt

import (
	"math"
	"strconv"
	"strings"
)

// piece is one rendered placeholder before padding. prefix holds the sign
// and any base prefix, body the digits or text; keeping them apart lets the
// assembler zero-fill between them. numeric selects sign-aware zero padding
// and the right-by-default alignment.
type piece struct {
	prefix  string
	body    string
	numeric bool
}

// renderValue renders v according to spec's verb, sign, and alternate
// flags. prec is the resolved precision; width and alignment are applied
// later by the assembler. Returns a bare sentinel on failure; the caller
// attaches position context.
func renderValue(v Value, spec *Spec, prec int, hasPrec bool) (piece, error) {
	if !v.Supports(spec.Verb) {
		return piece{}, ErrUnsupportedVerb
	}
	switch spec.Verb {
	case Display:
		// Text accessors win over numeric ones, so a value can expose
		// both a bespoke Display form and numeric base conversions.
		if d, ok := v.(Displayer); ok {
			return piece{body: d.Display()}, nil
		}
		if iv, ok := v.(IntValue); ok {
			neg, mag := iv.IntValue()
			return numericPiece(neg, spec.Sign, "", strconv.FormatUint(mag, 10)), nil
		}
		if fv, ok := v.(FloatValue); ok {
			return floatPiece(fv.FloatValue(), spec.Sign, prec, hasPrec, false), nil
		}
		return piece{}, ErrUnsupportedVerb
	case Debug:
		if spec.Alt {
			if pd, ok := v.(PrettyDebugger); ok {
				return piece{body: pd.DebugPretty()}, nil
			}
		}
		if d, ok := v.(Debugger); ok {
			return piece{body: d.Debug()}, nil
		}
		if iv, ok := v.(IntValue); ok {
			neg, mag := iv.IntValue()
			return numericPiece(neg, spec.Sign, "", strconv.FormatUint(mag, 10)), nil
		}
		if fv, ok := v.(FloatValue); ok {
			return floatPiece(fv.FloatValue(), spec.Sign, prec, hasPrec, true), nil
		}
		return piece{}, ErrUnsupportedVerb
	case Binary, Octal, LowerHex, UpperHex:
		iv, ok := v.(IntValue)
		if !ok {
			return piece{}, ErrUnsupportedVerb
		}
		neg, mag := iv.IntValue()
		var body, prefix string
		switch spec.Verb {
		case Binary:
			body, prefix = strconv.FormatUint(mag, 2), "0b"
		case Octal:
			body, prefix = strconv.FormatUint(mag, 8), "0o"
		case LowerHex:
			body, prefix = strconv.FormatUint(mag, 16), "0x"
		default:
			body, prefix = strings.ToUpper(strconv.FormatUint(mag, 16)), "0x"
		}
		if !spec.Alt {
			prefix = ""
		}
		return numericPiece(neg, spec.Sign, prefix, body), nil
	case LowerExp, UpperExp:
		upper := spec.Verb == UpperExp
		if iv, ok := v.(IntValue); ok {
			neg, mag := iv.IntValue()
			return numericPiece(neg, spec.Sign, "", intExp(mag, prec, hasPrec, upper)), nil
		}
		fv, ok := v.(FloatValue)
		if !ok {
			return piece{}, ErrUnsupportedVerb
		}
		return floatExpPiece(fv.FloatValue(), spec.Sign, prec, hasPrec, upper), nil
	}
	return piece{}, ErrUnsupportedVerb
}

// numericPiece assembles the sign prefix for a numeric body. Negative
// values always carry '-'; SignAlways adds '+' to the rest.
func numericPiece(neg bool, sign Sign, basePrefix, body string) piece {
	s := ""
	if neg {
		s = "-"
	} else if sign == SignAlways {
		s = "+"
	}
	return piece{prefix: s + basePrefix, body: body, numeric: true}
}

// floatPiece renders a float in decimal notation. Without a precision the
// shortest representation that round-trips is used; debug additionally
// keeps a trailing ".0" on integral values.
func floatPiece(f float64, sign Sign, prec int, hasPrec bool, debug bool) piece {
	if body, neg, ok := nonFinite(f); ok {
		return numericPiece(neg, sign, "", body)
	}
	neg := math.Signbit(f)
	p := -1
	if hasPrec {
		p = prec
	}
	body := strconv.FormatFloat(math.Abs(f), 'f', p, 64)
	if debug && !hasPrec && !strings.Contains(body, ".") {
		body += ".0"
	}
	return numericPiece(neg, sign, "", body)
}

// floatExpPiece renders a float in exponent notation: one leading digit, a
// fraction governed by precision, and a bare exponent with no forced sign
// or leading zeros.
func floatExpPiece(f float64, sign Sign, prec int, hasPrec bool, upper bool) piece {
	if body, neg, ok := nonFinite(f); ok {
		return numericPiece(neg, sign, "", body)
	}
	neg := math.Signbit(f)
	p := -1
	if hasPrec {
		p = prec
	}
	s := strconv.FormatFloat(math.Abs(f), 'e', p, 64)
	return numericPiece(neg, sign, "", normalizeExp(s, upper))
}

// nonFinite reports the special-value body for infinities and NaN.
func nonFinite(f float64) (string, bool, bool) {
	switch {
	case math.IsInf(f, 0):
		return "inf", math.Signbit(f), true
	case math.IsNaN(f):
		return "NaN", false, true
	default:
		return "", false, false
	}
}

// normalizeExp rewrites strconv's exponent field ("e+01") into the bare
// form ("e1"): no sign on non-negative exponents, no leading zeros.
func normalizeExp(s string, upper bool) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i], s[i+1:]
	negExp := false
	switch exp[0] {
	case '+':
		exp = exp[1:]
	case '-':
		negExp = true
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
		negExp = false
	}
	marker := "e"
	if upper {
		marker = "E"
	}
	if negExp {
		return mantissa + marker + "-" + exp
	}
	return mantissa + marker + exp
}

// intExp renders an integer magnitude in exponent notation exactly, by
// working on its decimal digits instead of converting through float64.
// Without a precision the fraction is as short as possible; with one the
// fraction is zero-padded or rounded half-to-even to exactly prec digits.
func intExp(mag uint64, prec int, hasPrec bool, upper bool) string {
	digits := strconv.FormatUint(mag, 10)
	exp := len(digits) - 1
	var frac string
	switch {
	case !hasPrec:
		frac = strings.TrimRight(digits[1:], "0")
	case prec == 0:
		rounded, carried := roundDigits(digits, 1)
		if carried {
			exp++
		}
		digits = rounded
	case len(digits)-1 <= prec:
		frac = digits[1:] + strings.Repeat("0", prec-(len(digits)-1))
	default:
		rounded, carried := roundDigits(digits, prec+1)
		if carried {
			exp++
		}
		digits = rounded
		frac = digits[1:]
	}
	var b strings.Builder
	b.WriteByte(digits[0])
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	if upper {
		b.WriteByte('E')
	} else {
		b.WriteByte('e')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// roundDigits rounds a decimal digit string to keep digits, half-to-even.
// The result always has length keep; carried reports that rounding
// overflowed into a new leading digit (as in 99 -> 10), which raises the
// exponent by one.
func roundDigits(digits string, keep int) (string, bool) {
	if keep >= len(digits) {
		return digits, false
	}
	kept := []byte(digits[:keep])
	rest := digits[keep:]
	up := false
	switch {
	case rest[0] > '5':
		up = true
	case rest[0] == '5':
		if strings.TrimRight(rest[1:], "0") != "" {
			up = true
		} else {
			up = (kept[keep-1]-'0')%2 == 1
		}
	}
	if !up {
		return string(kept), false
	}
	for i := keep - 1; i >= 0; i-- {
		if kept[i] < '9' {
			kept[i]++
			return string(kept), false
		}
		kept[i] = '0'
	}
	return "1" + string(kept[:keep-1]), true
}
