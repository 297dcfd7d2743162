package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stretch/internal/report"
	"github.com/Sumatoshi-tech/stretch/pkg/alg/bresenham"
)

const opLine = "line"

func newLineCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "line X1 Y1 X2 Y2",
		Short: "Walk a digital line and print y for every x step",
		Long: `Walk the digital line from (X1,Y1) to (X2,Y2) and print the y value the
line passes through at every integer x, endpoints included.

Examples:
  stretch line 330 8 206 33
  stretch line --format json 0 0 4 10
  stretch line -- 5 -3 0 -9`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords, err := parseInts(args, "x1", "y1", "x2", "y2")
			if err != nil {
				return err
			}

			return a.runLine(cmd, coords[0], coords[1], coords[2], coords[3])
		},
	}
}

func (a *app) runLine(cmd *cobra.Command, x1, y1, x2, y2 int) error {
	w, err := a.writer(cmd)
	if err != nil {
		return err
	}

	var values []int

	err = a.observe(cmd.Context(), opLine, func(ctx context.Context) (int, error) {
		spanErr := bresenham.CheckSpan(x1, y1, x2, y2)
		if spanErr != nil {
			return 0, spanErr
		}

		values = bresenham.Stretch(x1, y1, x2, y2)

		a.logger.DebugContext(ctx, "line walked", "from", []int{x1, y1}, "to", []int{x2, y2}, "steps", len(values))

		return len(values), nil
	})
	if err != nil {
		return err
	}

	return w.WriteLine(report.Line{From: [2]int{x1, y1}, To: [2]int{x2, y2}, Values: values})
}

// parseInts converts args to ints, naming the offending argument on failure.
func parseInts(args []string, names ...string) ([]int, error) {
	out := make([]int, len(args))

	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			name := strconv.Itoa(i)
			if i < len(names) {
				name = names[i]
			}

			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		out[i] = v
	}

	return out, nil
}
