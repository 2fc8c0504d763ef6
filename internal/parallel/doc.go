// Package parallel is the single data-parallel-for helper shared by the
// coincidence search and the supercell builder.
//
// The source this repository is descended from used an OpenMP "ordered"
// parallel-for to push results into a shared vector from every worker.
// That relies on a construct Go doesn't have and, more importantly, pays
// for an ordering guarantee nothing downstream needs. Instead, Map
// partitions the outer index range across a bounded pool of goroutines
// managed by golang.org/x/sync/errgroup, gives each worker a private
// output slice, and concatenates the slices after every worker returns.
// Result order is unspecified by design (see Map, and
// supercell.BuildInterfaces).
package parallel
