// Package intmath provides the exact integer arithmetic the coincidence
// search relies on: a greatest-common-divisor over a list of integers,
// and 2x2/3x3 integer determinants. Every computation here stays in
// int64; nothing is routed through a floating-point intermediate.
package intmath
