package rtfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rtfmt "github.com/vstojkovic/rt-format"
)

func TestParseLiterals(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		template string
		want     string
	}{
		"plain text":      {template: "hello world", want: "hello world"},
		"empty":           {template: "", want: ""},
		"escaped open":    {template: "a {{ b", want: "a { b"},
		"escaped close":   {template: "a }} b", want: "a } b"},
		"escaped pair":    {template: "{{}}", want: "{}"},
		"double escape":   {template: "{{{{", want: "{{"},
		"trailing escape": {template: "x{{", want: "x{"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.Format(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		template string
		sentinel error
		pos      int
	}{
		"unterminated at end":   {template: "foo {", sentinel: rtfmt.ErrUnterminatedPlaceholder, pos: 4},
		"unterminated mid":      {template: "foo { bar", sentinel: rtfmt.ErrUnterminatedPlaceholder, pos: 4},
		"unmatched close":       {template: "bar } baz", sentinel: rtfmt.ErrUnmatchedBrace, pos: 4},
		"lone close":            {template: "}", sentinel: rtfmt.ErrUnmatchedBrace, pos: 0},
		"close after spec":      {template: "{}}", sentinel: rtfmt.ErrUnmatchedBrace, pos: 2},
		"bad verb":              {template: "foo {:Z} bar", sentinel: rtfmt.ErrInvalidSpec, pos: 4},
		"bad argument":          {template: "{foo/bar}", sentinel: rtfmt.ErrInvalidSpec, pos: 0},
		"brace in body":         {template: "{a{b}", sentinel: rtfmt.ErrInvalidSpec, pos: 0},
		"bare dot":              {template: "{:.}", sentinel: rtfmt.ErrInvalidSpec, pos: 0},
		"named width no dollar": {template: "{:foo}", sentinel: rtfmt.ErrInvalidSpec, pos: 0},
		"trailing junk":         {template: "{:<>}", sentinel: rtfmt.ErrInvalidSpec, pos: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := rtfmt.Parse(tt.template)
			require.ErrorIs(t, err, tt.sentinel)
			var ferr *rtfmt.Error
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.pos, ferr.Pos)
		})
	}
}

func TestParseSpec(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		body string
		want rtfmt.Spec
	}{
		"empty": {body: "", want: rtfmt.Spec{}},
		"everything": {
			body: ":>+#042.17E",
			want: rtfmt.Spec{
				Align:     rtfmt.AlignRight,
				Sign:      rtfmt.SignAlways,
				Alt:       true,
				ZeroPad:   true,
				Width:     rtfmt.Size{Kind: rtfmt.SizeFixed, Num: 42},
				Precision: rtfmt.Size{Kind: rtfmt.SizeFixed, Num: 17},
				Verb:      rtfmt.UpperExp,
			},
		},
		"positional argument": {
			body: "2",
			want: rtfmt.Spec{Arg: rtfmt.Selector{Kind: rtfmt.SelectorIndex, Index: 2}},
		},
		"named argument": {
			body: "count",
			want: rtfmt.Spec{Arg: rtfmt.Selector{Kind: rtfmt.SelectorName, Name: "count"}},
		},
		"unicode name": {
			body: "уникод",
			want: rtfmt.Spec{Arg: rtfmt.Selector{Kind: rtfmt.SelectorName, Name: "уникод"}},
		},
		"underscore name": {
			body: "_leading_underscore",
			want: rtfmt.Spec{Arg: rtfmt.Selector{Kind: rtfmt.SelectorName, Name: "_leading_underscore"}},
		},
		"bare colon": {body: ":", want: rtfmt.Spec{}},
		"debug verb": {body: ":?", want: rtfmt.Spec{Verb: rtfmt.Debug}},
		"verb only": {
			body: ":x",
			want: rtfmt.Spec{Verb: rtfmt.LowerHex},
		},
		"width from positional": {
			body: ":1$",
			want: rtfmt.Spec{Width: rtfmt.Size{Kind: rtfmt.SizeArg, Ref: rtfmt.Selector{Kind: rtfmt.SelectorIndex, Index: 1}}},
		},
		"width from name": {
			body: ":w$",
			want: rtfmt.Spec{Width: rtfmt.Size{Kind: rtfmt.SizeArg, Ref: rtfmt.Selector{Kind: rtfmt.SelectorName, Name: "w"}}},
		},
		"width from argument zero": {
			body: ":0$",
			want: rtfmt.Spec{Width: rtfmt.Size{Kind: rtfmt.SizeArg, Ref: rtfmt.Selector{Kind: rtfmt.SelectorIndex, Index: 0}}},
		},
		"zero pad then indirect width": {
			body: ":00$",
			want: rtfmt.Spec{
				ZeroPad: true,
				Width:   rtfmt.Size{Kind: rtfmt.SizeArg, Ref: rtfmt.Selector{Kind: rtfmt.SelectorIndex, Index: 0}},
			},
		},
		"precision next": {
			body: ":.*",
			want: rtfmt.Spec{Precision: rtfmt.Size{Kind: rtfmt.SizeNext}},
		},
		"precision from name": {
			body: ":.p$",
			want: rtfmt.Spec{Precision: rtfmt.Size{Kind: rtfmt.SizeArg, Ref: rtfmt.Selector{Kind: rtfmt.SelectorName, Name: "p"}}},
		},
		"exp width by name": {
			body: ":e$",
			want: rtfmt.Spec{Width: rtfmt.Size{Kind: rtfmt.SizeArg, Ref: rtfmt.Selector{Kind: rtfmt.SelectorName, Name: "e"}}},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.ParseSpec(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		body    string
		bodyPos int
	}{
		"leading digit name":  {body: "0leading_digit", bodyPos: 1},
		"invalid character":   {body: "invalid/character", bodyPos: 7},
		"brace in body":       {body: "a{b", bodyPos: 1},
		"bad verb":            {body: ":Z", bodyPos: 1},
		"dot without number":  {body: ":.", bodyPos: 1},
		"precision name bare": {body: ":.foo", bodyPos: 1},
		"junk after verb":     {body: ":ex", bodyPos: 2},
		"align twice":         {body: ":<<", bodyPos: 2},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := rtfmt.ParseSpec(tt.body)
			require.ErrorIs(t, err, rtfmt.ErrInvalidSpec)
			var ferr *rtfmt.Error
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.bodyPos, ferr.BodyPos)
		})
	}
}

func TestSpecString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		body string
		want string
	}{
		"empty":          {body: "", want: ""},
		"bare colon":     {body: ":", want: ""},
		"sign alt octal": {body: ":+#o", want: ":+#o"},
		"full":           {body: ":^042.17E", want: ":^042.17E"},
		"argument":       {body: "2:>5", want: "2:>5"},
		"named":          {body: "count:.*?", want: "count:.*?"},
		"indirect sizes": {body: ":1$.w$", want: ":1$.w$"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			spec, err := rtfmt.ParseSpec(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.String())

			// The canonical form must parse back to the same spec.
			again, err := rtfmt.ParseSpec(spec.String())
			require.NoError(t, err)
			assert.Equal(t, spec, again)
		})
	}
}

func TestTemplateString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		template string
		want     string
	}{
		"literal":     {template: "plain", want: "plain"},
		"escapes":     {template: "{{{0:b}}}", want: "{{{0:b}}}"},
		"canonical":   {template: "{:}", want: "{}"},
		"placeholder": {template: "x {n:>+8.2e} y", want: "x {n:>+8.2e} y"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tmpl, err := rtfmt.Parse(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tmpl.String())
		})
	}
}

func TestParseDoesNotResolveArguments(t *testing.T) {
	t.Parallel()
	// Missing arguments are a render error, not a parse error.
	tmpl, err := rtfmt.Parse("{9} {missing} {:.*}")
	require.NoError(t, err)
	_, err = tmpl.Render()
	require.Error(t, err)
}
