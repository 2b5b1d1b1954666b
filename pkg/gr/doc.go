// Package gr implements the DIMACS shortest-path text format (.gr files).
//
// A .gr file contains three kinds of lines, one statement per line:
//
//	c <free text>                  comment
//	p sp <node_count> <edge_count> problem line (exactly one)
//	a <source> <target> <weight>   directed weighted edge
//
// The package provides [Spec] for describing a graph to be generated,
// [Graph] as the in-memory representation, and streaming [Write]/[Read]
// functions that round-trip the format. Node IDs are 1-based, matching
// the DIMACS convention.
package gr
