package gr

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write encodes g to w in DIMACS shortest-path format.
//
// The output starts with a comment line (omitted when comment is empty),
// followed by the problem line and one `a` line per edge. The problem line
// reports len(g.Edges), not g.Declared, so written files are always
// internally consistent.
func Write(w io.Writer, g *Graph, comment string) error {
	bw := bufio.NewWriter(w)

	if comment != "" {
		if _, err := fmt.Fprintf(bw, "c %s\n", comment); err != nil {
			return fmt.Errorf("write comment: %w", err)
		}
	}
	if _, err := fmt.Fprintf(bw, "p sp %d %d\n", g.NumNodes, len(g.Edges)); err != nil {
		return fmt.Errorf("write problem line: %w", err)
	}
	for _, e := range g.Edges {
		if _, err := fmt.Fprintf(bw, "a %d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("write edge: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// WriteFile writes g to a file at path, creating it with 0644 permissions.
// This is a convenience wrapper around [Write] for file-based output.
func WriteFile(path string, g *Graph, comment string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, g, comment)
}
