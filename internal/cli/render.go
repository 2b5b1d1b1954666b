package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grfixtures/grgen/pkg/gr"
	"github.com/grfixtures/grgen/pkg/render"
)

// maxRenderNodes bounds preview rendering. Graphviz layouts above this get
// slow and unreadable; previews are for the small fixtures anyway.
const maxRenderNodes = 500

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path (derived from input if empty)
	format      string // output format: "svg", "png", or "dot"
	showWeights bool   // label edges with their weights
}

// renderCommand creates the render command for previewing a fixture as an
// image. Rendering happens in-process via Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: "svg", showWeights: true}

	cmd := &cobra.Command{
		Use:   "render <file.gr>",
		Short: "Render a .gr file to SVG, PNG, or DOT for preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.showWeights, "weights", opts.showWeights, "label edges with weights")

	return cmd
}

var validRenderFormats = map[string]bool{"svg": true, "png": true, "dot": true}

func validateRenderFormat(f string) error {
	if !validRenderFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", f)
	}
	return nil
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	c.Logger.Infof("Rendering %s", input)

	g, err := gr.ReadFile(input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded graph: %d nodes, %d edges", g.NumNodes, len(g.Edges))

	if g.NumNodes > maxRenderNodes {
		return fmt.Errorf("graph has %d nodes; preview rendering is limited to %d", g.NumNodes, maxRenderNodes)
	}

	dot := gr.ToDOT(g, gr.DOTOptions{ShowWeights: opts.showWeights})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		if data, err = render.SVG(ctx, dot); err != nil {
			return err
		}
	case "png":
		if data, err = render.PNG(ctx, dot); err != nil {
			return err
		}
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	printSuccess("Rendered %s", input)
	printFile(outputPath)
	return nil
}
