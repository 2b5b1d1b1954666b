package gr

import (
	"errors"
	"strings"
	"testing"
)

func TestReadValid(t *testing.T) {
	input := `c Small test graph
p sp 4 5
a 1 2 14
a 2 3 7
a 3 4 20
a 4 1 3
a 1 3 9
`
	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if g.NumNodes != 4 {
		t.Errorf("NumNodes = %d, want 4", g.NumNodes)
	}
	if g.Declared != 5 {
		t.Errorf("Declared = %d, want 5", g.Declared)
	}
	if len(g.Edges) != 5 {
		t.Errorf("len(Edges) = %d, want 5", len(g.Edges))
	}
	if g.Edges[0] != (Edge{From: 1, To: 2, Weight: 14}) {
		t.Errorf("first edge = %+v", g.Edges[0])
	}
}

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	input := "c one\n\nc two\np sp 2 1\n\nc interleaved\na 1 2 5\n"
	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(g.Edges) != 1 {
		t.Errorf("len(Edges) = %d, want 1", len(g.Edges))
	}
}

func TestReadPreservesDeclaredMismatch(t *testing.T) {
	// Hand-edited file declaring more edges than it contains.
	input := "p sp 3 10\na 1 2 1\na 2 3 2\n"
	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if g.Declared != 10 {
		t.Errorf("Declared = %d, want 10", g.Declared)
	}
	if len(g.Edges) != 2 {
		t.Errorf("len(Edges) = %d, want 2", len(g.Edges))
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrMissingProblemLine},
		{"edge before problem line", "a 1 2 3\np sp 2 1\n", ErrMissingProblemLine},
		{"problem line wrong type", "p max 4 5\n", ErrBadProblemLine},
		{"problem line missing field", "p sp 4\n", ErrBadProblemLine},
		{"problem line non-numeric", "p sp four 5\n", ErrBadProblemLine},
		{"negative node count", "p sp -4 5\n", ErrBadProblemLine},
		{"negative edge count", "p sp 4 -5\na 1 2 3\n", ErrBadProblemLine},
		{"edge missing weight", "p sp 2 1\na 1 2\n", ErrBadEdgeLine},
		{"edge non-numeric", "p sp 2 1\na 1 two 3\n", ErrBadEdgeLine},
		{"unknown line kind", "p sp 2 1\nx 1 2 3\n", ErrUnknownLineKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Read() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadCapsDeclaredAllocation(t *testing.T) {
	// An absurd declared count parses fine but must not size the edge
	// slice; the value is still preserved for mismatch reporting.
	input := "p sp 2 999999999999\na 1 2 1\n"
	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if g.Declared != 999999999999 {
		t.Errorf("Declared = %d, want 999999999999", g.Declared)
	}
	if cap(g.Edges) > maxDeclaredPrealloc {
		t.Errorf("cap(Edges) = %d, exceeds %d", cap(g.Edges), maxDeclaredPrealloc)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("does-not-exist.gr"); err == nil {
		t.Fatal("ReadFile() on missing file should fail")
	}
}
