package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stretch/internal/report"
	"github.com/Sumatoshi-tech/stretch/pkg/alg/partition"
)

const opPartition = "partition"

func newPartitionCommand(a *app) *cobra.Command {
	var (
		parts    int
		nonEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "partition N",
		Short: "Split N elements into K near-equal contiguous ranges",
		Long: `Split the indices [0, N) into K contiguous ranges whose sizes differ by at
most one. K defaults to partition.workers, which defaults to the CPU count.

Examples:
  stretch partition 55 --parts 3
  stretch partition 2 --parts 4 --non-empty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInts(args, "n")
			if err != nil {
				return err
			}

			k := parts
			if !cmd.Flags().Changed("parts") {
				k = a.cfg.Partition.Workers
			}

			return a.runPartition(cmd, n[0], k, nonEmpty)
		},
	}

	cmd.Flags().IntVarP(&parts, "parts", "k", 0, "number of ranges (default partition.workers)")
	cmd.Flags().BoolVar(&nonEmpty, "non-empty", false, "omit empty ranges when parts exceed N")

	return cmd
}

func (a *app) runPartition(cmd *cobra.Command, n, k int, nonEmpty bool) error {
	w, err := a.writer(cmd)
	if err != nil {
		return err
	}

	var (
		bounds []int
		ranges []partition.Range
	)

	err = a.observe(cmd.Context(), opPartition, func(ctx context.Context) (int, error) {
		var opErr error

		bounds, opErr = partition.Bounds(n, k)
		if opErr != nil {
			return 0, opErr
		}

		ranges = partition.FromBounds(bounds)
		if nonEmpty {
			ranges = partition.NonEmpty(ranges)
		}

		a.logger.DebugContext(ctx, "indices partitioned", "n", n, "k", k, "ranges", len(ranges))

		return len(bounds), nil
	})
	if err != nil {
		return fmt.Errorf("partition: %w", err)
	}

	return w.WritePartition(report.NewPartition(n, bounds, ranges))
}
