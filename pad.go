package rtfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// assemble applies precision truncation, width, and alignment to a
// rendered piece and appends the result to b. Widths and precisions count
// display cells, so East Asian wide runes occupy two.
func assemble(b *strings.Builder, p piece, spec *Spec, width int, hasWidth bool, prec int, hasPrec bool) {
	body := p.body
	if !p.numeric && hasPrec {
		body = runewidth.Truncate(body, prec, "")
	}
	pad := 0
	if hasWidth {
		total := runewidth.StringWidth(p.prefix) + runewidth.StringWidth(body)
		pad = width - total
	}
	if pad <= 0 {
		b.WriteString(p.prefix)
		b.WriteString(body)
		return
	}
	if p.numeric && spec.ZeroPad {
		// Zeros go between the sign or base prefix and the digits; the
		// alignment directive is ignored.
		b.WriteString(p.prefix)
		b.WriteString(strings.Repeat("0", pad))
		b.WriteString(body)
		return
	}
	align := spec.Align
	if align == AlignDefault {
		if p.numeric {
			align = AlignRight
		} else {
			align = AlignLeft
		}
	}
	switch align {
	case AlignRight:
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(p.prefix)
		b.WriteString(body)
	case AlignCenter:
		// The odd space goes on the right.
		left := pad / 2
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(p.prefix)
		b.WriteString(body)
		b.WriteString(strings.Repeat(" ", pad-left))
	default:
		b.WriteString(p.prefix)
		b.WriteString(body)
		b.WriteString(strings.Repeat(" ", pad))
	}
}
