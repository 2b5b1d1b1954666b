package gen

import (
	"errors"
	"fmt"

	"github.com/grfixtures/grgen/pkg/gr"
)

// ErrUnknownPreset is returned by [Preset] for an unrecognized preset name.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names accepted by [Preset] and the CLI.
const (
	PresetSmall   = "small"
	PresetMedium  = "medium"
	PresetLarge   = "large"
	PresetMassive = "massive"
)

// Size bundles a named preset: the spec to generate, the generation
// strategy, and the conventional output filename.
type Size struct {
	Name     string
	Spec     gr.Spec
	Ring     bool   // use ring targets instead of uniform random ones
	Filename string // default output filename
}

// Generator creates a generator for this preset. Extra options (e.g.
// [WithSeed]) are applied after the preset's own strategy.
func (s Size) Generator(opts ...Option) *Generator {
	all := make([]Option, 0, len(opts)+1)
	if s.Ring {
		all = append(all, WithRingTargets())
	}
	all = append(all, opts...)
	return New(s.Spec, all...)
}

// presets is the ordered preset table. The small preset uses ring targets
// and a fractional ratio so the resulting 5-edge graph is predictable
// enough to eyeball; the rest draw targets uniformly.
var presets = []Size{
	{
		Name:     PresetSmall,
		Spec:     gr.Spec{Nodes: 4, EdgesPerNode: 1.25, MaxWeight: 20, Comment: "Small test graph"},
		Ring:     true,
		Filename: "test.gr",
	},
	{
		Name:     PresetMedium,
		Spec:     gr.Spec{Nodes: 100, EdgesPerNode: 5, MaxWeight: 50, Comment: "Medium test graph"},
		Filename: "large_graph.gr",
	},
	{
		Name:     PresetLarge,
		Spec:     gr.Spec{Nodes: 1000, EdgesPerNode: 5, MaxWeight: 100, Comment: "Large test graph"},
		Filename: "huge_graph.gr",
	},
	{
		Name:     PresetMassive,
		Spec:     gr.Spec{Nodes: 5000, EdgesPerNode: 10, MaxWeight: 100, Comment: "Massive test graph"},
		Filename: "massive_graph.gr",
	},
}

// Presets returns all presets in size order.
func Presets() []Size {
	out := make([]Size, len(presets))
	copy(out, presets)
	return out
}

// Preset looks up a preset by name.
func Preset(name string) (Size, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Size{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
