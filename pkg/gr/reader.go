package gr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxDeclaredPrealloc caps the edge slice capacity taken from the problem
// line so a hand-edited declared count can't force a huge allocation.
const maxDeclaredPrealloc = 1 << 20

var (
	// ErrMissingProblemLine is returned by [Read] when the input contains
	// edge lines before a problem line, or no problem line at all.
	ErrMissingProblemLine = errors.New("missing problem line")

	// ErrBadProblemLine is returned by [Read] for a malformed `p` line.
	// The expected form is `p sp <node_count> <edge_count>`.
	ErrBadProblemLine = errors.New("malformed problem line")

	// ErrBadEdgeLine is returned by [Read] for a malformed `a` line.
	// The expected form is `a <source> <target> <weight>`.
	ErrBadEdgeLine = errors.New("malformed edge line")

	// ErrUnknownLineKind is returned by [Read] for a line that starts with
	// something other than `c`, `p`, or `a`.
	ErrUnknownLineKind = errors.New("unknown line kind")
)

// Read decodes a DIMACS shortest-path graph from r.
//
// Comment lines are skipped. The problem line must precede all edge lines.
// The declared edge count is preserved in [Graph.Declared] even when it
// disagrees with the number of `a` lines actually present.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	g := &Graph{}
	sawProblem := false
	lineno := 0

	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c':
			continue
		case 'p':
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "sp" {
				return nil, fmt.Errorf("line %d: %w: %q", lineno, ErrBadProblemLine, line)
			}
			nodes, err1 := strconv.Atoi(fields[2])
			edges, err2 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || nodes < 0 || edges < 0 {
				return nil, fmt.Errorf("line %d: %w: %q", lineno, ErrBadProblemLine, line)
			}
			g.NumNodes = nodes
			g.Declared = edges
			// Declared is untrusted input; don't let it drive allocation.
			g.Edges = make([]Edge, 0, min(edges, maxDeclaredPrealloc))
			sawProblem = true
		case 'a':
			if !sawProblem {
				return nil, fmt.Errorf("line %d: %w", lineno, ErrMissingProblemLine)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: %w: %q", lineno, ErrBadEdgeLine, line)
			}
			from, err1 := strconv.Atoi(fields[1])
			to, err2 := strconv.Atoi(fields[2])
			weight, err3 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("line %d: %w: %q", lineno, ErrBadEdgeLine, line)
			}
			g.Edges = append(g.Edges, Edge{From: from, To: to, Weight: weight})
		default:
			return nil, fmt.Errorf("line %d: %w: %q", lineno, ErrUnknownLineKind, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if !sawProblem {
		return nil, ErrMissingProblemLine
	}
	return g, nil
}

// ReadFile reads a .gr file from path and returns the decoded graph.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
