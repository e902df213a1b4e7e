// Package derive runs the gain-network derivation on top of the gainsym
// kernel.
//
// Steps
//
//   - DeriveRatios  builds g1..g8 and the simplified ratios e1..e4
//   - SolveSystem   builds equ1..equ4, converts them to T1·u = x1,
//     simplifies T1 to T2 and inverts it to T3
//   - Verify        re-derives the equations from T1 and checks T2·T3 = I
//
// # Output
//
// WriteRatios and WriteSystem render results as 2-D text, LaTeX or JSON.
// Text output prints e1..e4 in order, then T3ᵀ followed by x1.
package derive
