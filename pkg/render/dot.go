// Package render converts the distribution family tree to Graphviz DOT
// and renders it as SVG or PNG. This replaces the gnuclad/inkscape
// toolchain the project historically shelled out to with an in-process
// renderer.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/distrograph/distrograph/pkg/distro"
	"github.com/distrograph/distrograph/pkg/tree"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes status and first release date in node labels.
	Detailed bool
}

// ToDOT converts records to Graphviz DOT format. Edges follow the based-on
// relationship; records with no resolvable parent appear as disconnected
// roots, matching the textual family tree.
//
// Archive node colors are used as fill colors when present; inactive
// distributions are drawn with dashed outlines.
func ToDOT(records []distro.Record, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph distributions {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	roots := tree.Build(records)
	for _, root := range roots {
		writeNodes(&buf, root, opts)
	}
	buf.WriteString("\n")
	for _, root := range roots {
		writeEdges(&buf, root)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNodes(buf *bytes.Buffer, n *tree.Node, opts Options) {
	fmt.Fprintf(buf, "  %q [%s];\n", n.Record.Name, strings.Join(nodeAttrs(n, opts), ", "))
	for _, child := range n.Children {
		writeNodes(buf, child, opts)
	}
}

func writeEdges(buf *bytes.Buffer, n *tree.Node) {
	for _, child := range n.Children {
		fmt.Fprintf(buf, "  %q -> %q;\n", n.Record.Name, child.Record.Name)
		writeEdges(buf, child)
	}
}

func nodeAttrs(n *tree.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", nodeLabel(n.Record, opts))}
	if n.Record.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.Record.Color), "fontcolor=white")
	}
	if !n.Record.IsActive() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

func nodeLabel(rec distro.Record, opts Options) string {
	if !opts.Detailed {
		return rec.DisplayName()
	}
	parts := []string{rec.DisplayName()}
	if rec.Status != "" {
		parts = append(parts, string(rec.Status))
	}
	if first := rec.FirstRelease(); first != "" {
		parts = append(parts, first)
	}
	return strings.Join(parts, "\n")
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
