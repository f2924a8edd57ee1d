// Package stairs counts the ways to climb a staircase in strides of 1, 2 or 3
// steps.
//
// The repository is split into:
//
//   - stairs: the counting strategies (naive recursion, iterative table,
//     arbitrary precision), a strategy registry and a timing wrapper
//   - config: defaults, environment and flags for the command
//   - cmd/stairs: times one count and prints the result and the duration
//
// Import
//
//	"github.com/sghaida/stairs/stairs"
package stairs
