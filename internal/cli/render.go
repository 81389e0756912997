package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/distrograph/distrograph/pkg/errors"
	"github.com/distrograph/distrograph/pkg/render"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var (
		src      sourceFlags
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the family tree as DOT, SVG, or PNG",
		Long: `Render the family tree as DOT, SVG, or PNG.

The render command converts the distribution hierarchy into a Graphviz graph.
Nodes keep their archive colors when available, and inactive distributions are
drawn dashed. DOT output goes to stdout unless --output is given; SVG and PNG
require --output.`,
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

			dot := render.ToDOT(records, render.Options{Detailed: detailed})

			switch format {
			case "dot":
				out, err := openOutput(output)
				if err != nil {
					return err
				}
				defer out.Close()
				_, err = out.Write([]byte(dot))
				return err

			case "svg", "png":
				if output == "" {
					return errors.New(errors.ErrCodeInvalidInput, "--output is required for %s", format)
				}
				var data []byte
				if format == "svg" {
					data, err = render.SVG(dot)
				} else {
					data, err = render.PNG(dot)
				}
				if err != nil {
					return fmt.Errorf("render %s: %w", format, err)
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return err
				}
				printSuccess("Rendered %d distributions", len(records))
				printFile(output)
				return nil

			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want dot, svg, or png)", format)
			}
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout for dot)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include release date and status in node labels")

	return cmd
}
