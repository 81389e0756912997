package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/distrograph/distrograph/pkg/archive"
	"github.com/distrograph/distrograph/pkg/export"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var (
		src        sourceFlags
		outputDir  string
		prefix     string
		formatsStr string
		gldtPath   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection in the offline formats",
		Long: `Export the collection in the offline formats.

The export command writes the fetched records as detailed JSON, a CSV table,
a plain-text list, a summary report, and a rendered family tree. Output files
are timestamped so successive runs never overwrite each other.

Pass --combine to merge the GLDT archive CSV into the records before exporting.`,
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

			formats := parseFormats(formatsStr)

			records, err := src.records(ctx, cfg)
			if err != nil {
				return err
			}

			if gldtPath != "" {
				combiner, err := archive.Load(gldtPath)
				if err != nil {
					return fmt.Errorf("load archive: %w", err)
				}
				records = combiner.Combine(records)
				printInfo("Merged %d archive entries", combiner.Len())
			}

			exporter, err := export.New(cfg.OutputDir)
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(ctx))
			result, err := exporter.Export(records, prefix, formats)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			p.done(fmt.Sprintf("Exported %d distributions", len(records)))

			printSuccess("Exported %d distributions (run %s)", len(records), result.RunID)
			for _, format := range export.AllFormats {
				if path, ok := result.Files[format]; ok {
					printFile(path)
				}
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for export files (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "distros", "file name prefix for export files")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "format(s): json, csv, txt, summary, tree (comma-separated, default all)")
	cmd.Flags().StringVar(&gldtPath, "combine", "", "merge the GLDT archive CSV at this path before exporting")

	return cmd
}

// parseFormats splits a comma-separated format list, trimming whitespace.
// An empty string yields nil, which Export treats as all formats.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var formats []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			formats = append(formats, part)
		}
	}
	return formats
}
