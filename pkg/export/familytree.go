package export

import (
	"fmt"
	"io"

	"github.com/distrograph/distrograph/pkg/distro"
	"github.com/distrograph/distrograph/pkg/tree"
)

// WriteFamilyTree writes the family tree export to w: a banner and legend,
// then one indented subtree per root with a blank line between roots.
// Tree construction and line format are [tree.Build] and [tree.Write];
// sibling order follows record order.
func WriteFamilyTree(w io.Writer, records []distro.Record) error {
	if err := banner(w, "Distribution Family Tree"); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s = Active, %s = Inactive\n\n", tree.GlyphActive, tree.GlyphInactive)

	for _, root := range tree.Build(records) {
		if err := tree.Write(w, []*tree.Node{root}); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
