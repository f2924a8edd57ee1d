// Command stairs counts the ways to climb a staircase in strides of 1, 2 or 3
// steps and reports how long the count took.
//
// With no arguments it counts 30 steps using plain recursion and prints two
// lines to stdout: the count, then the elapsed time as a Go duration string.
//
//	$ stairs
//	53798080
//	284.107ms
//
// Flags
//
//	-n, --steps int          number of steps to climb (default 30)
//	-s, --strategy string    naive, table or big (default "naive")
//	-v, --verbose            log the run to stderr
//	-h, --help               print usage
//
// STAIRS_STEPS and STAIRS_STRATEGY set the same values from the environment;
// flags take precedence. The no-argument output above assumes both are unset.
//
// Strategies
//
//   - naive: triple recursion without memoization. Exponential time; keep
//     steps in the low thirties.
//   - table: iterative, linear time. Fails past 72 steps because the count
//     no longer fits in an int64.
//   - big: iterative with arbitrary precision. Any non-negative step count.
//
// Exit codes
//
//	0  success, or --help
//	1  the count failed (int64 overflow with the table strategy)
//	2  bad flags, environment or strategy name
package main
