// Package commands implements CLI command handlers for stretch.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stretch/internal/report"
	"github.com/Sumatoshi-tech/stretch/pkg/config"
	"github.com/Sumatoshi-tech/stretch/pkg/observability"
	"github.com/Sumatoshi-tech/stretch/pkg/version"
)

// Environment variables read as fallbacks for the telemetry settings.
const (
	envOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOTLPHeaders  = "OTEL_EXPORTER_OTLP_HEADERS"
)

type rootOptions struct {
	configPath string
	verbose    bool
	quiet      bool
	format     string
	color      string
}

// app carries the state shared by the commands of one invocation.
type app struct {
	opts    rootOptions
	cfg     *config.Config
	obs     observability.Providers
	metrics *observability.OpMetrics
	logger  *slog.Logger
}

// Execute runs the command tree with args and flushes telemetry before
// returning.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{}

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	if a.obs.Shutdown != nil {
		shutdownErr := a.obs.Shutdown(context.Background())
		if shutdownErr != nil {
			err = errors.Join(err, fmt.Errorf("observability shutdown: %w", shutdownErr))
		}
	}

	return err
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stretch",
		Short: "Bresenham line mapping, resampling and range partitioning",
		Long: `stretch maps one integer range onto another with Bresenham arithmetic.

Commands:
  line       Walk a digital line and print y for every x step
  resample   Shrink or grow a numeric series, keeping its endpoints
  partition  Split N elements into K near-equal contiguous ranges
  plot       Render an HTML chart of a resampled series
  demo       Run the worked examples
  mcp        Serve the operations as MCP tools over stdio`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "config file (default ./.stretch.yaml)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&a.opts.quiet, "quiet", "q", false, "only log errors")
	flags.StringVarP(&a.opts.format, "format", "f", config.DefaultOutputFormat, "output format: table, json, yaml")
	flags.StringVar(&a.opts.color, "color", config.DefaultOutputColor, "color mode: auto, always, never")

	rootCmd.AddCommand(
		newLineCommand(a),
		newResampleCommand(a),
		newPartitionCommand(a),
		newPlotCommand(a),
		newDemoCommand(a),
		newMCPCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and initializes
// observability for the command about to run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Output.Format = a.opts.format
	}

	if flags.Changed("color") {
		if !slices.Contains(config.ColorModes, a.opts.color) {
			return fmt.Errorf("%w: %q", config.ErrInvalidColor, a.opts.color)
		}

		cfg.Output.Color = a.opts.color
	}

	level, err := config.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	switch {
	case a.opts.quiet:
		level = slog.LevelError
	case a.opts.verbose:
		level = slog.LevelDebug
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(os.Getenv(envOTLPHeaders))
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.SampleRatio = cfg.Telemetry.SampleRatio
	obsCfg.Prometheus = cfg.Telemetry.Prometheus
	obsCfg.LogLevel = level
	obsCfg.LogJSON = cfg.Logging.JSON
	obsCfg.LogOutput = cmd.ErrOrStderr()
	obsCfg.ShutdownTimeout = cfg.Telemetry.ShutdownTimeout

	if obsCfg.OTLPEndpoint == "" {
		obsCfg.OTLPEndpoint = os.Getenv(envOTLPEndpoint)
	}

	if cmd.Name() == mcpCommandName {
		obsCfg.Mode = observability.ModeMCP
		obsCfg.LogJSON = true

		if addr, _ := flags.GetString(metricsAddrFlag); addr != "" {
			obsCfg.Prometheus = true
		}
	}

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	a.obs = providers

	metrics, err := observability.NewOpMetrics(providers.Meter)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	a.cfg = cfg
	a.metrics = metrics
	a.logger = providers.Logger

	a.logger.DebugContext(cmd.Context(), "configuration loaded",
		"command", cmd.Name(),
		"format", cfg.Output.Format,
		"otlp", obsCfg.OTLPEndpoint != "",
	)

	return nil
}

func (a *app) writer(cmd *cobra.Command) (*report.Writer, error) {
	return report.New(cmd.OutOrStdout(), a.cfg.Output.Format, a.cfg.Output.Color)
}

// observe runs fn as a traced and metered operation.
func (a *app) observe(ctx context.Context, op string, fn func(ctx context.Context) (int, error)) error {
	return observability.Observe(ctx, a.obs.Tracer, a.metrics, op, fn)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())

			return err
		},
	}
}
