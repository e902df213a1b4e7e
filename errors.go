package gainsym

import "errors"

// Every message is prefixed with "gainsym:". Callers match with errors.Is;
// operations wrap these with fmt.Errorf("...: %w", ErrX) to add context.
var (
	// ErrSingular is returned when a square matrix has no non-zero pivot in
	// some column, i.e. its determinant simplifies to zero.
	ErrSingular = errors.New("gainsym: matrix is singular")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("gainsym: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("gainsym: dimension mismatch")

	// ErrNonLinear is returned by LinearEqToMatrix when a coefficient of an
	// unknown depends on an unknown.
	ErrNonLinear = errors.New("gainsym: equation is not linear in the unknowns")

	// ErrNoUnknowns is returned by LinearEqToMatrix for an empty unknown list.
	ErrNoUnknowns = errors.New("gainsym: no unknowns given")

	// ErrNotRational marks an expression outside the field of rational
	// functions (symbolic exponents, ln, non-integer powers).
	ErrNotRational = errors.New("gainsym: expression is not a rational function")

	// ErrDivisionByZero is returned when a denominator simplifies to zero.
	ErrDivisionByZero = errors.New("gainsym: division by zero")

	// ErrInvalidJSON is returned by FromJSON for malformed expression trees.
	ErrInvalidJSON = errors.New("gainsym: invalid expression JSON")
)
