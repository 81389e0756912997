package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/distrograph/distrograph/pkg/archive"
	"github.com/distrograph/distrograph/pkg/distro"
)

// newCombineCmd creates the combine command.
func newCombineCmd() *cobra.Command {
	var (
		src       sourceFlags
		outputDir string
		stats     bool
	)

	cmd := &cobra.Command{
		Use:   "combine <gldt.csv>",
		Short: "Merge the GLDT archive into the fetched data",
		Long: `Merge the GLDT archive into the fetched data.

The combine command parses the GNU/Linux Distribution Timeline CSV and merges
it into the fetched records: archive data fills in colors, lineage, dates, and
name changes, and distributions only present in the archive are appended. The
combined snapshot replaces dists.json under the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			combiner, err := archive.Load(args[0])
			if err != nil {
				return fmt.Errorf("load archive: %w", err)
			}

			records, err := src.records(ctx, cfg)
			if err != nil {
				return err
			}

			combined := combiner.Combine(records)

			snapshot := filepath.Join(cfg.OutputDir, recordsFile)
			if err := distro.WriteFile(combined, snapshot); err != nil {
				return err
			}

			printSuccess("Combined %d fetched + %d archive entries into %d records",
				len(records), combiner.Len(), len(combined))
			printFile(snapshot)

			if stats {
				printArchiveStats(combiner.Stats())
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the snapshot (default from config)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print archive statistics")

	return cmd
}

func printArchiveStats(s archive.Stats) {
	printInfo("Archive statistics")
	printKeyValue("Total", fmt.Sprintf("%d", s.Total))
	printKeyValue("Active", fmt.Sprintf("%d", s.Active))
	printKeyValue("Inactive", fmt.Sprintf("%d", s.Inactive))
	printKeyValue("With color", fmt.Sprintf("%d", s.WithColor))
	printKeyValue("Renamed", fmt.Sprintf("%d", s.WithNameChanges))
	decades := make([]string, 0, len(s.ByDecade))
	for d := range s.ByDecade {
		decades = append(decades, d)
	}
	sort.Strings(decades)
	for _, decade := range decades {
		printDetail("%s: %d", decade, s.ByDecade[decade])
	}
}
