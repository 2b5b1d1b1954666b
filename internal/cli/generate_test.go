package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/grfixtures/grgen/internal/config"
	"github.com/grfixtures/grgen/pkg/gen"
	"github.com/grfixtures/grgen/pkg/gr"
)

// newTestCLI creates a CLI with logging discarded and all lookup paths
// redirected into temp directories.
func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	return New(io.Discard, LogInfo)
}

func TestSelectSizes(t *testing.T) {
	opts := &generateOpts{nodes: 7, edgesPerNode: 2, maxWeight: 30}

	sizes, err := selectSizes([]string{"small", "large"}, opts)
	if err != nil {
		t.Fatalf("selectSizes() error: %v", err)
	}
	if len(sizes) != 2 || sizes[0].Name != "small" || sizes[1].Name != "large" {
		t.Errorf("selectSizes() = %+v", sizes)
	}

	sizes, err = selectSizes([]string{"all"}, opts)
	if err != nil {
		t.Fatalf("selectSizes(all) error: %v", err)
	}
	if len(sizes) != 4 {
		t.Errorf("all should expand to 4 presets, got %d", len(sizes))
	}

	sizes, err = selectSizes([]string{"custom"}, opts)
	if err != nil {
		t.Fatalf("selectSizes(custom) error: %v", err)
	}
	if sizes[0].Spec.Nodes != 7 || sizes[0].Spec.EdgesPerNode != 2 || sizes[0].Spec.MaxWeight != 30 {
		t.Errorf("custom spec = %+v", sizes[0].Spec)
	}

	if _, err := selectSizes([]string{"gigantic"}, opts); !errors.Is(err, gen.ErrUnknownPreset) {
		t.Errorf("selectSizes(gigantic) = %v, want ErrUnknownPreset", err)
	}
}

func TestRunGenerateWritesFixture(t *testing.T) {
	c := newTestCLI(t)
	outDir := t.TempDir()

	opts := &generateOpts{outputDir: outDir}
	sizes, err := selectSizes([]string{"small"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.runGenerate(context.Background(), sizes, opts); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	g, err := gr.ReadFile(filepath.Join(outDir, "test.gr"))
	if err != nil {
		t.Fatalf("generated file does not parse: %v", err)
	}
	if g.NumNodes != 4 {
		t.Errorf("NumNodes = %d, want 4", g.NumNodes)
	}
	if len(g.Edges) != 5 || g.Declared != 5 {
		t.Errorf("edges = %d declared %d, want 5/5", len(g.Edges), g.Declared)
	}
	for _, e := range g.Edges {
		if e.Weight < 1 || e.Weight > 20 {
			t.Fatalf("weight %d out of range [1, 20]", e.Weight)
		}
	}
}

func TestRunGenerateSeededIsReproducible(t *testing.T) {
	c := newTestCLI(t)

	read := func(dir string) []byte {
		t.Helper()
		opts := &generateOpts{outputDir: dir, seed: 7, seedSet: true}
		sizes, err := selectSizes([]string{"medium"}, opts)
		if err != nil {
			t.Fatal(err)
		}
		if err := c.runGenerate(context.Background(), sizes, opts); err != nil {
			t.Fatalf("runGenerate() error: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "large_graph.gr"))
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	first := read(t.TempDir())
	second := read(t.TempDir()) // served from cache or regenerated, same bytes either way
	if !bytes.Equal(first, second) {
		t.Error("seeded runs should produce identical files")
	}
}

func TestRunGenerateCustomDimensions(t *testing.T) {
	c := newTestCLI(t)
	outDir := t.TempDir()

	opts := &generateOpts{outputDir: outDir, nodes: 30, edgesPerNode: 3, maxWeight: 12}
	sizes, err := selectSizes([]string{"custom"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.runGenerate(context.Background(), sizes, opts); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	g, err := gr.ReadFile(filepath.Join(outDir, "custom_graph.gr"))
	if err != nil {
		t.Fatalf("generated file does not parse: %v", err)
	}
	if g.NumNodes != 30 || len(g.Edges) != 90 {
		t.Errorf("got %d nodes, %d edges; want 30, 90", g.NumNodes, len(g.Edges))
	}
}

func TestRunGenerateInvalidCustomSpec(t *testing.T) {
	c := newTestCLI(t)

	opts := &generateOpts{outputDir: t.TempDir(), nodes: -5, edgesPerNode: 1, maxWeight: 1}
	sizes, err := selectSizes([]string{"custom"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.runGenerate(context.Background(), sizes, opts); !errors.Is(err, gr.ErrInvalidNodeCount) {
		t.Errorf("runGenerate() = %v, want ErrInvalidNodeCount", err)
	}
}
