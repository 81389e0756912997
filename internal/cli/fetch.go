package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// newFetchCmd creates the fetch command.
func newFetchCmd() *cobra.Command {
	var (
		src       sourceFlags
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch distribution metadata and cache it locally",
		Long: `Fetch distribution metadata and cache it locally.

The fetch command queries the distribution index, follows each entry to its
detail page, and writes the combined records to dists.json under the output
directory. Subsequent commands reuse the snapshot until --refresh is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			p := newProgress(loggerFromContext(ctx))
			records, err := src.records(ctx, cfg)
			if err != nil {
				return fmt.Errorf("fetch: %w", err)
			}
			p.done(fmt.Sprintf("Fetched %d distributions", len(records)))

			printSuccess("%d distributions", len(records))
			if src.input == "" {
				printFile(filepath.Join(cfg.OutputDir, recordsFile))
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the snapshot (default from config)")

	return cmd
}
