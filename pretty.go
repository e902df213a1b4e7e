package gainsym

import (
	"strings"
	"unicode/utf8"
)

// ============================================================
// Pretty-print — 2-D layout with stacked fractions
// ============================================================

// box is a block of equal-width text lines; baseline is the row that
// lines up with neighbouring boxes (the fraction bar, for fractions).
type box struct {
	lines    []string
	baseline int
}

func textBox(s string) box { return box{lines: []string{s}} }

func (b box) width() int {
	w := 0
	for _, l := range b.lines {
		if n := utf8.RuneCountInString(l); n > w {
			w = n
		}
	}
	return w
}

func (b box) height() int { return len(b.lines) }

// center pads every line to width w, centering the content.
func (b box) center(w int) box {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		gap := w - utf8.RuneCountInString(l)
		left := gap / 2
		out[i] = strings.Repeat(" ", left) + l + strings.Repeat(" ", gap-left)
	}
	return box{lines: out, baseline: b.baseline}
}

func fracBox(num, den box) box {
	w := num.width()
	if dw := den.width(); dw > w {
		w = dw
	}
	w += 2
	lines := make([]string, 0, num.height()+den.height()+1)
	lines = append(lines, num.center(w).lines...)
	lines = append(lines, strings.Repeat("─", w))
	lines = append(lines, den.center(w).lines...)
	return box{lines: lines, baseline: num.height()}
}

// hcat places boxes side by side with their baselines aligned.
func hcat(bs ...box) box {
	above, below := 0, 0
	for _, b := range bs {
		if b.baseline > above {
			above = b.baseline
		}
		if d := b.height() - b.baseline - 1; d > below {
			below = d
		}
	}
	h := above + below + 1
	rows := make([]strings.Builder, h)
	for _, b := range bs {
		w := b.width()
		top := above - b.baseline
		for r := 0; r < h; r++ {
			line := ""
			if k := r - top; k >= 0 && k < b.height() {
				line = b.lines[k]
			}
			rows[r].WriteString(line + strings.Repeat(" ", w-utf8.RuneCountInString(line)))
		}
	}
	lines := make([]string, h)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return box{lines: lines, baseline: above}
}

func layout(e Expr) box {
	switch v := e.(type) {
	case *Add:
		parts := make([]box, 0, 2*len(v.terms))
		for i, t := range v.terms {
			neg := strings.HasPrefix(t.String(), "-")
			if neg {
				t = Neg(t)
			}
			switch {
			case i == 0 && neg:
				parts = append(parts, textBox("-"))
			case i > 0 && neg:
				parts = append(parts, textBox(" - "))
			case i > 0:
				parts = append(parts, textBox(" + "))
			}
			parts = append(parts, layout(t))
		}
		return hcat(parts...)
	case *Mul:
		return layoutProduct(v)
	case *Pow:
		if en, ok := v.exp.(*Num); ok && en.IsNegative() {
			return layoutProduct(&Mul{factors: []Expr{v}})
		}
	}
	return textBox(e.String())
}

func layoutProduct(m *Mul) box {
	neg, num, den := fractionParts(m)
	if len(den) == 0 {
		return textBox(m.String())
	}
	fb := fracBox(layoutFactors(num), layoutFactors(den))
	if neg {
		return hcat(textBox("-"), fb)
	}
	return fb
}

func layoutFactors(fs []Expr) box {
	switch len(fs) {
	case 0:
		return textBox("1")
	case 1:
		return layout(fs[0])
	}
	return textBox(joinFactors(fs))
}

// Fraction splits e into numerator and denominator as written, moving
// negative integer powers below the bar. Common factors are not cancelled;
// use Together for the reduced form.
func Fraction(e Expr) (num, den Expr) {
	var m *Mul
	switch v := e.(type) {
	case *Mul:
		m = v
	case *Pow:
		m = &Mul{factors: []Expr{v}}
	default:
		return e, N(1)
	}
	neg, n, d := fractionParts(m)
	num = MulOf(n...)
	if neg {
		num = Neg(num)
	}
	return num, MulOf(d...)
}

// PrettyPrint renders e over several lines with fractions stacked.
func PrettyPrint(e Expr) string {
	b := layout(e)
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(strings.TrimRight(l, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrettyPrintMatrix renders m with bracket glyphs and aligned columns.
func PrettyPrintMatrix(m *Matrix) string {
	if m.rows == 0 || m.cols == 0 {
		return "[]\n"
	}
	cells := make([][]box, m.rows)
	colW := make([]int, m.cols)
	for i := 0; i < m.rows; i++ {
		cells[i] = make([]box, m.cols)
		for j := 0; j < m.cols; j++ {
			cells[i][j] = layout(m.data[i][j])
			if w := cells[i][j].width(); w > colW[j] {
				colW[j] = w
			}
		}
	}

	var lines []string
	for i := 0; i < m.rows; i++ {
		row := make([]box, 0, 2*m.cols)
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				row = append(row, textBox("  "))
			}
			row = append(row, cells[i][j].center(colW[j]))
		}
		rb := hcat(row...)
		if i > 0 {
			lines = append(lines, strings.Repeat(" ", rb.width()))
		}
		lines = append(lines, rb.lines...)
	}

	var sb strings.Builder
	for i, l := range lines {
		left, right := "⎢", "⎥"
		switch {
		case len(lines) == 1:
			left, right = "[", "]"
		case i == 0:
			left, right = "⎡", "⎤"
		case i == len(lines)-1:
			left, right = "⎣", "⎦"
		}
		sb.WriteString(left + l + right + "\n")
	}
	return sb.String()
}
