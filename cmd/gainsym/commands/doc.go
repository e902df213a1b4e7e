// Package commands defines the gainsym CLI.
//
// Commands
//
//   - (none)   Derive the ratios, then solve the linear system
//   - ratios   Print e1..e4
//   - system   Print T3ᵀ and x1
//   - check    Solve the system and verify T1·u = x1 and T2·T3 = I
//
// # Flags
//
// --format selects text (2-D pretty print), latex or json output.
// --verbose traces each derivation step on stderr.
package commands
