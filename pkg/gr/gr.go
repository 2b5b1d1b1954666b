package gr

import (
	"errors"
	"fmt"
	"math"
)

// MaxEdges bounds the derived edge count. Without it, a huge Nodes ×
// EdgesPerNode product overflows int and EdgeCount goes negative.
const MaxEdges = 100_000_000

var (
	// ErrInvalidNodeCount is returned by [Spec.Validate] when the node count
	// is zero or negative.
	ErrInvalidNodeCount = errors.New("node count must be positive")

	// ErrInvalidEdgeRatio is returned by [Spec.Validate] when the
	// edges-per-node ratio is zero or negative.
	ErrInvalidEdgeRatio = errors.New("edges-per-node ratio must be positive")

	// ErrInvalidMaxWeight is returned by [Spec.Validate] when the maximum
	// edge weight is zero or negative.
	ErrInvalidMaxWeight = errors.New("max weight must be positive")

	// ErrTooManyEdges is returned by [Spec.Validate] when the derived edge
	// count exceeds [MaxEdges].
	ErrTooManyEdges = errors.New("derived edge count too large")
)

// Spec describes a graph to be generated: how many nodes it has, how many
// edges each node contributes on average, and the weight range of its edges.
//
// The target edge count is derived, not stored: int(Nodes × EdgesPerNode).
// A fractional ratio (e.g. 1.25) therefore caps the edge set below a full
// round of per-node edges.
type Spec struct {
	// Nodes is the number of nodes. IDs run from 1 to Nodes.
	Nodes int

	// EdgesPerNode is the average out-degree used to size the edge set.
	EdgesPerNode float64

	// MaxWeight is the inclusive upper bound for edge weights.
	// Weights are sampled uniformly from [1, MaxWeight].
	MaxWeight int

	// Comment is the free text written on the leading comment line.
	Comment string
}

// EdgeCount returns the target edge count, int(Nodes × EdgesPerNode).
func (s Spec) EdgeCount() int {
	return int(float64(s.Nodes) * s.EdgesPerNode)
}

// Validate checks that the spec describes a generatable graph.
func (s Spec) Validate() error {
	if s.Nodes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidNodeCount, s.Nodes)
	}
	if s.EdgesPerNode <= 0 || math.IsNaN(s.EdgesPerNode) {
		return fmt.Errorf("%w: got %g", ErrInvalidEdgeRatio, s.EdgesPerNode)
	}
	if s.MaxWeight <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxWeight, s.MaxWeight)
	}
	if target := float64(s.Nodes) * s.EdgesPerNode; target > MaxEdges {
		return fmt.Errorf("%w: %d nodes at %g edges per node exceeds %d",
			ErrTooManyEdges, s.Nodes, s.EdgesPerNode, MaxEdges)
	}
	return nil
}

// Edge is a directed weighted edge. Endpoints are 1-based node IDs.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Graph is the in-memory form of a .gr file.
//
// Declared is the edge count stated on the problem line, which may differ
// from len(Edges) in hand-edited files; [Read] preserves both so callers
// can report the discrepancy.
type Graph struct {
	NumNodes int
	Declared int
	Edges    []Edge
}

// WeightRange returns the minimum and maximum edge weight present.
// It returns (0, 0) for a graph with no edges.
func (g *Graph) WeightRange() (min, max int) {
	if len(g.Edges) == 0 {
		return 0, 0
	}
	min, max = g.Edges[0].Weight, g.Edges[0].Weight
	for _, e := range g.Edges[1:] {
		if e.Weight < min {
			min = e.Weight
		}
		if e.Weight > max {
			max = e.Weight
		}
	}
	return min, max
}
