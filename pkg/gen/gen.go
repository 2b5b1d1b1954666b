package gen

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/grfixtures/grgen/pkg/gr"
)

// cancelCheckInterval is how many edges are generated between context checks.
const cancelCheckInterval = 4096

// Generator produces random graphs from a spec.
// It is not safe for concurrent use; each goroutine should create its own.
type Generator struct {
	spec gr.Spec
	rng  *rand.Rand
	ring bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic: the same spec and seed always
// produce the same graph. Without this option the generator is seeded from
// the current time.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRingTargets makes each node's edges point at its successor,
// (i mod N)+1, instead of a uniformly random node. Combined with a
// fractional edges-per-node ratio this yields the tiny, predictable
// topologies used for smoke-test fixtures.
func WithRingTargets() Option {
	return func(g *Generator) {
		g.ring = true
	}
}

// New creates a Generator for the given spec.
// The spec must be valid; see [gr.Spec.Validate].
func New(spec gr.Spec, opts ...Option) *Generator {
	g := &Generator{
		spec: spec,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Spec returns the spec this generator was created with.
func (g *Generator) Spec() gr.Spec { return g.spec }

// Graph generates a graph. The edge count is capped at the spec's target,
// int(Nodes × EdgesPerNode), so a fractional ratio truncates the last round
// of per-node edges. The context is checked periodically; generation of
// large graphs stops early with ctx.Err() on cancellation.
func (g *Generator) Graph(ctx context.Context) (*gr.Graph, error) {
	if err := g.spec.Validate(); err != nil {
		return nil, err
	}

	// Each node contributes up to ceil(EdgesPerNode) edges; the overall cap
	// truncates the final partial round so the target is hit exactly.
	target := g.spec.EdgeCount()
	perNode := int(math.Ceil(g.spec.EdgesPerNode))

	out := &gr.Graph{
		NumNodes: g.spec.Nodes,
		Declared: target,
		Edges:    make([]gr.Edge, 0, target),
	}

	for i := 1; i <= g.spec.Nodes && len(out.Edges) < target; i++ {
		for j := 0; j < perNode && len(out.Edges) < target; j++ {
			if len(out.Edges)%cancelCheckInterval == 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				default:
				}
			}
			out.Edges = append(out.Edges, gr.Edge{
				From:   i,
				To:     g.target(i),
				Weight: 1 + g.rng.Intn(g.spec.MaxWeight),
			})
		}
	}
	return out, nil
}

// target picks the destination node for an edge leaving node i.
func (g *Generator) target(i int) int {
	if g.ring {
		return (i % g.spec.Nodes) + 1
	}
	return 1 + g.rng.Intn(g.spec.Nodes)
}
