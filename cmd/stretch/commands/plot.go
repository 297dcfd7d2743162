package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stretch/internal/input"
	"github.com/Sumatoshi-tech/stretch/internal/plotpage"
	"github.com/Sumatoshi-tech/stretch/pkg/alg/partition"
	"github.com/Sumatoshi-tech/stretch/pkg/alg/resample"
)

const (
	opPlot            = "plot"
	defaultPlotOutput = "stretch.html"
)

func newPlotCommand(a *app) *cobra.Command {
	var (
		series seriesOptions
		output string
		theme  string
		parts  int
	)

	cmd := &cobra.Command{
		Use:   "plot [FILE|-]",
		Short: "Render an HTML chart of a resampled series",
		Long: `Resample a series and render an HTML page that overlays the kept samples on
the source, shows the index mapping and, with --parts, the partition sizes.

Examples:
  stretch plot --range 0..275 --length 40 --parts 4 -o stretch.html
  stretch plot series.json -n 100 -o - > page.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, length, err := series.load(cmd, a, args)
			if err != nil {
				return err
			}

			p := plotpage.Plot{
				Title:  fmt.Sprintf("stretch: %d to %d", len(values), length),
				Theme:  plotpage.Theme(theme),
				Source: values,
			}

			err = a.observe(cmd.Context(), opPlot, func(context.Context) (int, error) {
				indices, opErr := resample.Indices(len(values), length)
				if opErr != nil {
					return 0, opErr
				}

				p.Indices = indices

				if parts > 0 {
					p.Bounds, opErr = partition.Bounds(len(values), parts)
					if opErr != nil {
						return 0, opErr
					}
				}

				return len(indices), nil
			})
			if err != nil {
				return fmt.Errorf("plot: %w", err)
			}

			return a.writePlot(cmd, output, p)
		},
	}

	series.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", defaultPlotOutput, "HTML output path, - for stdout")
	cmd.Flags().StringVar(&theme, "theme", string(plotpage.ThemeLight), "chart theme: light, dark")
	cmd.Flags().IntVarP(&parts, "parts", "k", 0, "also chart a split of the source into this many ranges")

	return cmd
}

func (a *app) writePlot(cmd *cobra.Command, output string, p plotpage.Plot) error {
	var out io.Writer = cmd.OutOrStdout()

	if output != input.StdinPath {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create plot file: %w", err)
		}
		defer f.Close()

		out = f
	}

	err := plotpage.Render(out, p)
	if err != nil {
		return err
	}

	if output != input.StdinPath {
		a.logger.InfoContext(cmd.Context(), "plot written", "path", output)
	}

	return nil
}
