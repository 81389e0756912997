// Package tree builds the distribution family tree from a flat record
// collection and renders it as indented text.
//
// The tree is keyed by the "based on" relationship: a node's children are
// exactly the records whose primary parent equals the node's name. Records
// with no resolvable parent (the independence sentinel, or a parent missing
// from the collection) become roots. That fallback is deliberate: the data
// source is uncontrolled third-party content, and a parent filtered out of
// the fetched set should degrade the tree, not break the run.
package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/distrograph/distrograph/pkg/distro"
)

// Status glyphs used in the rendered tree.
const (
	GlyphActive   = "●"
	GlyphInactive = "○"
)

// indentUnit is the spacing prepended per tree depth level.
const indentUnit = "  "

// Node wraps one distribution record plus its ordered children.
type Node struct {
	Record   distro.Record
	Children []*Node
}

// Glyph returns the status marker for this node.
func (n *Node) Glyph() string {
	if n.Record.IsActive() {
		return GlyphActive
	}
	return GlyphInactive
}

// Build constructs the family tree for records and returns the ordered
// roots. Every input record produces exactly one node; sibling order
// preserves input order.
//
// Linking happens in two passes: first an index from name to node, then
// child attachment. Records may reference parents that appear later in the
// sequence, so attachment cannot start before the index is complete.
// Duplicate names are a data-quality issue; the last record wins the index
// slot. Cyclic "based on" chains are malformed input and are not detected,
// except that a record naming itself as parent is treated as a root.
func Build(records []distro.Record) []*Node {
	nodes := make([]*Node, len(records))
	index := make(map[string]*Node, len(records))
	for i, r := range records {
		nodes[i] = &Node{Record: r}
		index[distro.NormalizeName(r.Name)] = nodes[i]
	}

	var roots []*Node
	for _, n := range nodes {
		parent := n.Record.Parent()
		if p, ok := index[parent]; ok && p != n {
			p.Children = append(p.Children, n)
			continue
		}
		roots = append(roots, n)
	}
	return roots
}

// Write renders the tree as indented text lines to w. Each node emits one
// line of the form "{indent}{glyph} {name}", with children nested two
// spaces deeper than their parent.
func Write(w io.Writer, roots []*Node) error {
	for _, root := range roots {
		if err := writeNode(w, root, 0); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the rendered tree as a single string.
func Render(roots []*Node) string {
	var sb strings.Builder
	_ = Write(&sb, roots)
	return sb.String()
}

func writeNode(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat(indentUnit, depth)
	if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, n.Glyph(), n.Record.DisplayName()); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := writeNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the total number of nodes reachable from roots.
func Count(roots []*Node) int {
	total := 0
	for _, root := range roots {
		total += countNode(root)
	}
	return total
}

func countNode(n *Node) int {
	total := 1
	for _, child := range n.Children {
		total += countNode(child)
	}
	return total
}
