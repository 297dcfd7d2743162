package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stretch/internal/input"
	"github.com/Sumatoshi-tech/stretch/internal/report"
	"github.com/Sumatoshi-tech/stretch/pkg/alg/resample"
)

const opResample = "resample"

// ErrLengthRequired is returned when no target length is given by flag or config.
var ErrLengthRequired = errors.New("target length required: use --length or resample.length")

type seriesOptions struct {
	rangeExpr string
	length    int
}

func (o *seriesOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.rangeExpr, "range", "", "generate the series FROM..TO instead of reading JSON")
	cmd.Flags().IntVarP(&o.length, "length", "n", 0, "target length (default resample.length)")
}

// load returns the input series and the target length.
func (o *seriesOptions) load(cmd *cobra.Command, a *app, args []string) ([]float64, int, error) {
	length := o.length
	if !cmd.Flags().Changed("length") {
		length = a.cfg.Resample.Length
	}

	if length == 0 {
		return nil, 0, ErrLengthRequired
	}

	if o.rangeExpr != "" {
		series, err := input.ParseRange(o.rangeExpr)

		return series, length, err
	}

	path := input.StdinPath
	if len(args) > 0 {
		path = args[0]
	}

	series, err := input.ReadFile(path, cmd.InOrStdin())

	return series, length, err
}

func newResampleCommand(a *app) *cobra.Command {
	var opts seriesOptions

	cmd := &cobra.Command{
		Use:   "resample [FILE|-]",
		Short: "Shrink or grow a numeric series, keeping its endpoints",
		Long: `Resample a series to a target length. Shrinking drops samples at evenly
spread positions, growing repeats them; the first and last values are kept.

The series is a JSON array of numbers read from FILE or stdin, or generated
with --range.

Examples:
  stretch resample --range 0..275 --length 201
  echo '[1,2,3,4,5]' | stretch resample -n 3 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, length, err := opts.load(cmd, a, args)
			if err != nil {
				return err
			}

			return a.runResample(cmd, series, length)
		},
	}

	opts.register(cmd)

	return cmd
}

func (a *app) runResample(cmd *cobra.Command, series []float64, length int) error {
	w, err := a.writer(cmd)
	if err != nil {
		return err
	}

	var (
		indices []int
		values  []float64
	)

	err = a.observe(cmd.Context(), opResample, func(ctx context.Context) (int, error) {
		var opErr error

		indices, opErr = resample.Indices(len(series), length)
		if opErr != nil {
			return 0, opErr
		}

		values, opErr = resample.Resample(series, length)
		if opErr != nil {
			return 0, opErr
		}

		a.logger.DebugContext(ctx, "series resampled", "source", len(series), "length", length)

		return len(values), nil
	})
	if err != nil {
		return fmt.Errorf("resample: %w", err)
	}

	return w.WriteResample(report.Resample{
		SourceLength: len(series),
		Length:       length,
		Indices:      indices,
		Values:       values,
	})
}
