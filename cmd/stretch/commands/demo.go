package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stretch/internal/input"
)

// Worked examples reproduced by the demo command.
const (
	demoRange       = "0..275"
	demoResampleLen = 201
	demoPartitionN  = 55
	demoPartitionK  = 3
	demoLineX1      = 330
	demoLineY1      = 8
	demoLineX2      = 206
	demoLineY2      = 33
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the worked examples",
		Long: `Run the three worked examples: a line walked from (330,8) back to (206,33),
the series 0..275 resampled to 201 values, and 55 elements split into 3 ranges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.runLine(cmd, demoLineX1, demoLineY1, demoLineX2, demoLineY2)
			if err != nil {
				return err
			}

			series, err := input.ParseRange(demoRange)
			if err != nil {
				return err
			}

			err = a.runResample(cmd, series, demoResampleLen)
			if err != nil {
				return err
			}

			return a.runPartition(cmd, demoPartitionN, demoPartitionK, false)
		},
	}
}
