// Package stairs counts the ways to climb a staircase of n steps when every
// stride covers 1, 2 or 3 steps.
//
// The count is the number of ordered compositions of n with parts in {1,2,3}:
//
//	count(n) = count(n-1) + count(n-2) + count(n-3)   for n > 0
//	count(0) = 1
//	count(n) = 0                                      for n < 0
//
// so count(0..4) = 1, 1, 2, 4, 7.
//
// Three strategies are provided:
//
//   - Count: the plain triple recursion. No memoization, O(3^n) calls and a
//     call stack as deep as n. This is the reference behavior.
//   - Table: an iterative table over the last three values. O(n) time,
//     constant stack, and an OverflowError once the count leaves int64.
//   - Big: the same table in math/big. Never overflows.
//
// Count does no validation and returns 0 for negative inputs. Table and Big
// reject them with NegativeStepsError.
//
// Strategies are looked up by name through a Registry, and Measure / Timed
// wrap a single call with a wall-clock measurement.
//
// Import
//
//	"github.com/sghaida/stairs/stairs"
package stairs
