package gainsym

import (
	"fmt"
	"strings"
)

// ============================================================
// Matrix — symbolic matrix
// ============================================================

type Matrix struct {
	rows, cols int
	data       [][]Expr
}

func NewMatrix(rows, cols int) *Matrix {
	data := make([][]Expr, rows)
	for i := range data {
		data[i] = make([]Expr, cols)
		for j := range data[i] {
			data[i][j] = N(0)
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

func MatrixFromSlice(rows, cols int, entries []Expr) *Matrix {
	if len(entries) != rows*cols {
		panic(fmt.Sprintf("gainsym: MatrixFromSlice needs %d entries, got %d", rows*cols, len(entries)))
	}
	m := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i][j] = entries[i*cols+j]
		}
	}
	return m
}

// ColumnVector builds an n×1 matrix.
func ColumnVector(entries ...Expr) *Matrix { return MatrixFromSlice(len(entries), 1, entries) }

func (m *Matrix) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("gainsym: matrix index out of range [%d,%d] for %dx%d", row, col, m.rows, m.cols))
	}
}

func (m *Matrix) Get(row, col int) Expr {
	m.checkBounds(row, col)
	return m.data[row][col]
}
func (m *Matrix) Set(row, col int, val Expr) {
	m.checkBounds(row, col)
	m.data[row][col] = val
}
func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i][j].String())
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

func (m *Matrix) LaTeX() string {
	var sb strings.Builder
	sb.WriteString("\\begin{pmatrix}")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(" \\\\ ")
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(m.data[i][j].LaTeX())
		}
	}
	sb.WriteString("\\end{pmatrix}")
	return sb.String()
}

func (m *Matrix) MatSub(other *Matrix) *Matrix {
	if m.rows != other.rows || m.cols != other.cols {
		panic("gainsym: matrix dimension mismatch in MatSub")
	}
	result := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.data[i][j] = Minus(m.data[i][j], other.data[i][j])
		}
	}
	return result
}

func (m *Matrix) MatMul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic("gainsym: matrix dimension mismatch in MatMul")
	}
	result := NewMatrix(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			terms := make([]Expr, m.cols)
			for k := 0; k < m.cols; k++ {
				terms[k] = MulOf(m.data[i][k], other.data[k][j])
			}
			result.data[i][j] = AddOf(terms...)
		}
	}
	return result
}

func (m *Matrix) Transpose() *Matrix {
	result := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.data[j][i] = m.data[i][j]
		}
	}
	return result
}

// Simplify returns a copy with every entry in canonical form.
func (m *Matrix) Simplify() *Matrix {
	return m.mapEntries(Simplify)
}

func (m *Matrix) mapEntries(f func(Expr) Expr) *Matrix {
	result := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.data[i][j] = f(m.data[i][j])
		}
	}
	return result
}

// Equivalent reports whether m and other have the same shape and
// entrywise equivalent expressions.
func (m *Matrix) Equivalent(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !Equivalent(m.data[i][j], other.data[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) ratEntries() ([][]*ratFunc, error) {
	out := make([][]*ratFunc, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]*ratFunc, m.cols)
		for j := 0; j < m.cols; j++ {
			r, err := toRatFunc(m.data[i][j].Simplify())
			if err != nil {
				return nil, fmt.Errorf("entry [%d,%d]: %w", i, j, err)
			}
			out[i][j] = r
		}
	}
	return out, nil
}

// Det returns the determinant. Rational entries are eliminated over the
// field of rational functions; anything else uses cofactor expansion.
func (m *Matrix) Det() Expr {
	if m.rows != m.cols {
		panic("gainsym: Det requires a square matrix")
	}
	a, err := m.ratEntries()
	if err != nil {
		return matDet(m.data, m.rows)
	}
	n := m.rows
	det := ratOne()
	for col := 0; col < n; col++ {
		pivot := findPivot(a, col)
		if pivot < 0 {
			return N(0)
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			det = det.neg()
		}
		p := a[col][col]
		det = det.mul(p)
		for r := col + 1; r < n; r++ {
			if a[r][col].isZero() {
				continue
			}
			f, _ := a[r][col].quo(p)
			for j := col; j < n; j++ {
				a[r][j] = a[r][j].sub(f.mul(a[col][j]))
			}
		}
	}
	return det.expr()
}

func matDet(data [][]Expr, n int) Expr {
	if n == 1 {
		return data[0][0].Simplify()
	}
	if n == 2 {
		return AddOf(
			MulOf(data[0][0], data[1][1]),
			MulOf(N(-1), MulOf(data[0][1], data[1][0])),
		)
	}
	terms := make([]Expr, n)
	for j := 0; j < n; j++ {
		minor := makeMinor(data, n, 0, j)
		sign := N(1)
		if j%2 == 1 {
			sign = N(-1)
		}
		terms[j] = MulOf(sign, data[0][j], matDet(minor, n-1))
	}
	return AddOf(terms...)
}

func makeMinor(data [][]Expr, n, skipRow, skipCol int) [][]Expr {
	minor := make([][]Expr, n-1)
	mi := 0
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		minor[mi] = make([]Expr, n-1)
		mj := 0
		for j := 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			minor[mi][mj] = data[i][j]
			mj++
		}
		mi++
	}
	return minor
}

func findPivot(a [][]*ratFunc, col int) int {
	for r := col; r < len(a); r++ {
		if !a[r][col].isZero() {
			return r
		}
	}
	return -1
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination over the field of
// rational functions. Entries of the result are in canonical form.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("inverse of %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}
	a, err := m.ratEntries()
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	n := m.rows
	inv := make([][]*ratFunc, n)
	for i := range inv {
		inv[i] = make([]*ratFunc, n)
		for j := range inv[i] {
			inv[i][j] = ratZero()
		}
		inv[i][i] = ratOne()
	}

	for col := 0; col < n; col++ {
		pivot := findPivot(a, col)
		if pivot < 0 {
			return nil, fmt.Errorf("inverse: no non-zero pivot in column %d: %w", col, ErrSingular)
		}
		a[pivot], a[col] = a[col], a[pivot]
		inv[pivot], inv[col] = inv[col], inv[pivot]

		p := a[col][col]
		for j := 0; j < n; j++ {
			if a[col][j], err = a[col][j].quo(p); err != nil {
				return nil, fmt.Errorf("inverse: %w", err)
			}
			if inv[col][j], err = inv[col][j].quo(p); err != nil {
				return nil, fmt.Errorf("inverse: %w", err)
			}
		}
		for r := 0; r < n; r++ {
			if r == col || a[r][col].isZero() {
				continue
			}
			f := a[r][col]
			for j := 0; j < n; j++ {
				a[r][j] = a[r][j].sub(f.mul(a[col][j]))
				inv[r][j] = inv[r][j].sub(f.mul(inv[col][j]))
			}
		}
	}

	result := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			result.data[i][j] = inv[i][j].expr()
		}
	}
	return result, nil
}

func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i][i] = N(1)
	}
	return m
}
