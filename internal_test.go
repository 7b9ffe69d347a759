package rtfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDigits(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		digits      string
		keep        int
		want        string
		wantCarried bool
	}{
		"round down":      {digits: "12345", keep: 3, want: "123"},
		"round up":        {digits: "1290", keep: 2, want: "13"},
		"tie to even":     {digits: "1250", keep: 2, want: "12"},
		"tie to odd up":   {digits: "1350", keep: 2, want: "14"},
		"tie with tail":   {digits: "12501", keep: 2, want: "13"},
		"carry":           {digits: "99", keep: 1, want: "1", wantCarried: true},
		"carry ripple":    {digits: "995", keep: 2, want: "10", wantCarried: true},
		"keep everything": {digits: "42", keep: 2, want: "42"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, carried := roundDigits(tt.digits, tt.keep)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCarried, carried)
		})
	}
}

func TestNormalizeExp(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in    string
		upper bool
		want  string
	}{
		"positive exponent": {in: "4.2e+01", want: "4.2e1"},
		"negative exponent": {in: "4.2e-04", want: "4.2e-4"},
		"zero exponent":     {in: "0e+00", want: "0e0"},
		"large exponent":    {in: "1e+300", want: "1e300"},
		"upper marker":      {in: "4.2e+01", upper: true, want: "4.2E1"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeExp(tt.in, tt.upper))
		})
	}
}

func TestIntExp(t *testing.T) {
	t.Parallel()
	// The no-precision fraction is minimal; the fixed-precision fraction is
	// padded or rounded to length.
	assert.Equal(t, "4.2e1", intExp(42, 0, false, false))
	assert.Equal(t, "1e2", intExp(100, 0, false, false))
	assert.Equal(t, "0e0", intExp(0, 0, false, false))
	assert.Equal(t, "4.20420e4", intExp(42042, 5, true, false))
	assert.Equal(t, "4e1", intExp(42, 0, true, false))
	assert.Equal(t, "4.2042E4", intExp(42042, 0, false, true))
}

func TestIdentOffset(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want int
	}{
		"simple":         {in: "name", want: -1},
		"underscore":     {in: "_x", want: -1},
		"digits inside":  {in: "x0", want: -1},
		"unicode":        {in: "уникод", want: -1},
		"empty":          {in: "", want: 0},
		"leading digit":  {in: "0x", want: 0},
		"slash":          {in: "a/b", want: 1},
		"space":          {in: "a b", want: 1},
		"unicode offset": {in: "уникод!", want: 12},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, identOffset(tt.in))
		})
	}
}

func TestAssembleZeroPadKeepsPrefix(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	p := piece{prefix: "-0x", body: "ff", numeric: true}
	assemble(&b, p, &Spec{ZeroPad: true}, 8, true, 0, false)
	assert.Equal(t, "-0x000ff", b.String())
}

func TestAssembleTruncatesTextOnly(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	assemble(&b, piece{body: "hello"}, &Spec{}, 0, false, 2, true)
	assert.Equal(t, "he", b.String())

	b.Reset()
	// Numeric bodies are never truncated; precision was consumed upstream.
	assemble(&b, piece{body: "12345", numeric: true}, &Spec{}, 0, false, 2, true)
	assert.Equal(t, "12345", b.String())
}

func TestSelectorString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "implicit", Selector{}.String())
	assert.Equal(t, "position 3", Selector{Kind: SelectorIndex, Index: 3}.String())
	assert.Equal(t, `name "w"`, Selector{Kind: SelectorName, Name: "w"}.String())
}

func TestVerbString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", Display.String())
	assert.Equal(t, "?", Debug.String())
	assert.Equal(t, "b", Binary.String())
	assert.Equal(t, "o", Octal.String())
	assert.Equal(t, "x", LowerHex.String())
	assert.Equal(t, "X", UpperHex.String())
	assert.Equal(t, "e", LowerExp.String())
	assert.Equal(t, "E", UpperExp.String())
}
