package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/spf13/cobra"
)

// ReportService is the part of the report service the CLI drives.
type ReportService interface {
	Definitions() []metrics.Definition
	Metric(ctx context.Context, name string) (models.ResultSet, error)
	Build(ctx context.Context, name string, metricNames []string) (*models.Report, error)
}

// Connector builds a ReportService from a config file. The returned func
// releases its resources.
type Connector func(ctx context.Context, configPath string) (ReportService, func(), error)

// CLI represents the command-line interface
type CLI struct {
	connect    Connector
	output     io.Writer
	configPath string
	timeout    time.Duration
	rootCmd    *cobra.Command
}

// NewCLI creates a new CLI instance
func NewCLI(connect Connector, output io.Writer) *CLI {
	if output == nil {
		output = os.Stdout
	}

	cli := &CLI{connect: connect, output: output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kpictl",
		Short:         "Marketplace KPI reporting tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "config.env", "Path to configuration file")
	cmd.PersistentFlags().DurationVar(&cli.timeout, "timeout", 2*time.Minute, "Overall command timeout")

	cmd.AddCommand(cli.newMetricsCmd())
	cmd.AddCommand(cli.newMetricCmd())
	cmd.AddCommand(cli.newReportCmd())

	return cmd
}

func (cli *CLI) newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List registered metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.withService(cmd, func(ctx context.Context, svc ReportService) error {
				for _, d := range svc.Definitions() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-36s %-22s %s\n", d.Name, d.Aggregation, d.Description)
				}
				return nil
			})
		},
	}
}

func (cli *CLI) newMetricCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metric <name>",
		Short: "Compute one metric and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.withService(cmd, func(ctx context.Context, svc ReportService) error {
				rs, err := svc.Metric(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to compute %s: %w", args[0], err)
				}
				return writeJSON(cmd.OutOrStdout(), rs)
			})
		},
	}
}

func (cli *CLI) newReportCmd() *cobra.Command {
	var metricNames []string

	cmd := &cobra.Command{
		Use:   "report [name]",
		Short: "Build a report and print it as JSON",
		Long: "Build a report over the given metrics, or over the dashboard overview metrics when --metrics is omitted.\n" +
			"Exits with an error when any metric in the report failed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "overview"
			if len(args) == 1 {
				name = args[0]
			}
			if len(metricNames) == 0 {
				metricNames = metrics.DefaultReport
			}

			return cli.withService(cmd, func(ctx context.Context, svc ReportService) error {
				report, err := svc.Build(ctx, name, metricNames)
				if err != nil {
					return fmt.Errorf("failed to build report %s: %w", name, err)
				}
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}

				if failed := report.Failed(); len(failed) > 0 {
					names := make([]string, 0, len(failed))
					for _, e := range failed {
						names = append(names, e.Metric)
					}
					return fmt.Errorf("%d metric(s) failed: %s", len(failed), strings.Join(names, ", "))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&metricNames, "metrics", nil, "Comma separated metric names")
	return cmd
}

func (cli *CLI) withService(cmd *cobra.Command, fn func(ctx context.Context, svc ReportService) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cli.timeout)
	defer cancel()

	svc, closeFn, err := cli.connect(ctx, cli.configPath)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(ctx, svc)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
