package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grfixtures/grgen/pkg/cache"
	"github.com/grfixtures/grgen/pkg/gen"
	"github.com/grfixtures/grgen/pkg/gr"
	"github.com/grfixtures/grgen/pkg/observability"
)

// spinnerNodeThreshold is the node count above which generation gets a
// spinner instead of silence.
const spinnerNodeThreshold = 5000

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	outputDir    string  // output directory for generated files
	seed         int64   // RNG seed (only honored when seedSet)
	seedSet      bool    // whether --seed was given
	noCache      bool    // bypass the fixture cache
	nodes        int     // node count (custom)
	edgesPerNode float64 // edges-per-node ratio (custom)
	maxWeight    int     // maximum edge weight (custom)
}

// generateCommand creates the generate command.
//
// Presets follow the conventional fixture sizes; "all" generates every
// preset, and "custom" takes its dimensions from flags. With no arguments
// on a terminal, an interactive preset picker is shown.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{nodes: 1000, edgesPerNode: 5, maxWeight: 100}

	cmd := &cobra.Command{
		Use:   "generate [small|medium|large|massive|custom|all]...",
		Short: "Generate DIMACS shortest-path graph fixtures",
		Long: `Generate randomly weighted directed graphs in DIMACS shortest-path format.

Examples:
  grgen generate small
  grgen generate medium large
  grgen generate all
  grgen generate custom --nodes 10000 --edges-per-node 20
  grgen generate large --seed 7 --output-dir fixtures/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")

			if len(args) == 0 {
				if !isatty.IsTerminal(os.Stdout.Fd()) {
					return cmd.Help()
				}
				name, err := pickPreset()
				if err != nil || name == "" {
					return err
				}
				args = []string{name}
			}

			sizes, err := selectSizes(args, &opts)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), sizes, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default from config, else current dir)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "RNG seed for reproducible output (default: unseeded)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the fixture cache")
	cmd.Flags().IntVar(&opts.nodes, "nodes", opts.nodes, "number of nodes (custom)")
	cmd.Flags().Float64Var(&opts.edgesPerNode, "edges-per-node", opts.edgesPerNode, "edges per node (custom)")
	cmd.Flags().IntVar(&opts.maxWeight, "max-weight", opts.maxWeight, "maximum edge weight (custom)")

	return cmd
}

// selectSizes maps the positional arguments to preset sizes.
// "all" expands to every preset; "custom" builds a size from the flags.
func selectSizes(args []string, opts *generateOpts) ([]gen.Size, error) {
	var sizes []gen.Size
	for _, arg := range args {
		switch arg {
		case "all":
			sizes = append(sizes, gen.Presets()...)
		case "custom":
			sizes = append(sizes, gen.Size{
				Name: "custom",
				Spec: gr.Spec{
					Nodes:        opts.nodes,
					EdgesPerNode: opts.edgesPerNode,
					MaxWeight:    opts.maxWeight,
					Comment:      "Custom test graph",
				},
				Filename: "custom_graph.gr",
			})
		default:
			size, err := gen.Preset(arg)
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, size)
		}
	}
	return sizes, nil
}

// runGenerate generates each requested size sequentially.
func (c *CLI) runGenerate(ctx context.Context, sizes []gen.Size, opts *generateOpts) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	outDir := opts.outputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create output dir %s: %w", outDir, err)
		}
	}

	store := c.newCache(ctx, cfg, opts.noCache || !opts.seedSet)
	defer store.Close()
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour

	for _, size := range sizes {
		if err := c.generateOne(ctx, size, opts, outDir, store, ttl); err != nil {
			return fmt.Errorf("generate %s: %w", size.Name, err)
		}
	}
	return nil
}

// generateOne generates a single fixture and writes it to disk. Seeded
// runs are memoized through the cache; unseeded runs never touch it.
func (c *CLI) generateOne(ctx context.Context, size gen.Size, opts *generateOpts, outDir string, store cache.Cache, ttl time.Duration) error {
	if err := size.Spec.Validate(); err != nil {
		return err
	}

	path := filepath.Join(outDir, size.Filename)
	observability.Generator().OnGenerateStart(ctx, size.Name, size.Spec.Nodes)
	prog := newProgress(c.Logger)
	start := time.Now()

	var key string
	if opts.seedSet {
		key = cache.FixtureKey(size.Spec, opts.seed, size.Ring)
		if data, hit, err := store.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, key)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			edges := size.Spec.EdgeCount()
			if g, err := gr.Read(bytes.NewReader(data)); err == nil {
				edges = len(g.Edges)
			}
			printSuccess("Generated %s graph", size.Name)
			c.reportGenerated(size, edges, path, true)
			return nil
		}
		observability.Cache().OnCacheMiss(ctx, key)
	}

	var spin *Spinner
	if size.Spec.Nodes >= spinnerNodeThreshold {
		spin = newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s graph (%d nodes)...", size.Name, size.Spec.Nodes))
		spin.Start()
	}

	var genOpts []gen.Option
	if opts.seedSet {
		genOpts = append(genOpts, gen.WithSeed(opts.seed))
	}
	g, err := size.Generator(genOpts...).Graph(ctx)
	observability.Generator().OnGenerateComplete(ctx, size.Name, edgeCount(g), time.Since(start), err)
	if err != nil {
		if spin != nil {
			spin.StopWithError(fmt.Sprintf("Generating %s graph failed", size.Name))
		}
		return err
	}
	if spin != nil {
		spin.StopWithSuccess(fmt.Sprintf("Generated %s graph", size.Name))
	}

	var buf bytes.Buffer
	if err := gr.Write(&buf, g, size.Spec.Comment); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	observability.Generator().OnWrite(ctx, path, buf.Len())

	if key != "" {
		if err := store.Set(ctx, key, buf.Bytes(), ttl); err != nil {
			c.Logger.Debugf("Cache store failed: %v", err)
		} else {
			observability.Cache().OnCacheSet(ctx, key, buf.Len())
		}
	}

	prog.done(fmt.Sprintf("Generated %d edges", len(g.Edges)))
	if spin == nil {
		printSuccess("Generated %s graph", size.Name)
	}
	c.reportGenerated(size, len(g.Edges), path, false)
	return nil
}

// reportGenerated prints the per-file detail lines. The headline comes from
// the caller, which knows whether a spinner already announced it.
func (c *CLI) reportGenerated(size gen.Size, edges int, path string, cached bool) {
	printFile(path)
	printGraphStats(size.Spec.Nodes, edges, cached)
}

func edgeCount(g *gr.Graph) int {
	if g == nil {
		return 0
	}
	return len(g.Edges)
}
