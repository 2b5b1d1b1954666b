// Package gen generates random weighted directed graphs as test fixtures.
//
// A [Generator] expands a [gr.Spec] into an in-memory [gr.Graph]: edge
// sources walk the node range in order, targets and weights are drawn from
// a pseudo-random source. Generation is unseeded by default, so two runs
// with identical parameters produce different graphs; [WithSeed] opts into
// reproducible output.
//
// No validation is performed on the generated edge set: duplicates and
// self-loops are allowed, matching what shortest-path implementations must
// tolerate in real inputs.
package gen
