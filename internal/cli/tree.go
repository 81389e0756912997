package cli

import (
	"github.com/spf13/cobra"

	"github.com/distrograph/distrograph/pkg/tree"
)

// newTreeCmd creates the tree command.
func newTreeCmd() *cobra.Command {
	var (
		src    sourceFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the distribution family tree",
		Long: `Print the distribution family tree.

Each distribution appears under the distribution it is based on; independent
distributions form the roots. Active distributions are marked with a filled
bullet, inactive ones with a hollow bullet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			records, err := src.records(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			return tree.Write(out, tree.Build(records))
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the tree to a file instead of stdout")

	return cmd
}
