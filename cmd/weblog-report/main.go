package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"weblog-analytics/internal/aggregators"
	"weblog-analytics/internal/ingestors"
	"weblog-analytics/internal/models"
	"weblog-analytics/internal/reporters"
	"weblog-analytics/internal/sessions"
	"weblog-analytics/internal/shared/ulid"
)

func main() {
	if err := newReportCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newReportCommand builds the offline analyzer: it runs the same parse and
// aggregation pipeline the server runs, but over local log files, and prints
// the report instead of storing it.
func newReportCommand() *cobra.Command {
	var (
		topN       int
		format     string
		customerID string
	)

	command := &cobra.Command{
		Use:           "weblog-report [log files...]",
		Short:         "Sessionize ELB access log files and print the session report",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(format, topN)
			if err != nil {
				return err
			}

			results, err := parseFiles(args)
			if err != nil {
				return err
			}

			var weblogEvents []*models.LogEvent
			var skippedLines int64
			for _, result := range results {
				weblogEvents = append(weblogEvents, result.Events...)
				skippedLines += result.SkippedLines
			}

			builder := aggregators.NewReportBuilder(
				sessions.NewSessionTagger(sessions.NewQuarterHourAssigner()),
				aggregators.NewHitCountAggregator(),
				aggregators.NewSessionDurationAggregator(),
				aggregators.NewUniqueURLAggregator(),
				aggregators.NewEngagementAggregator(),
				aggregators.NewTrafficSummarizer(),
			)
			report := builder.Build(customerID, ulid.NewULID(), weblogEvents, skippedLines)

			return renderer.Render(cmd.OutOrStdout(), report)
		},
	}

	command.Flags().IntVar(&topN, "top", 0, "Keep only the N highest rows per table in text output, 0 keeps all")
	command.Flags().StringVar(&format, "format", "text", "Output format, text or json")
	command.Flags().StringVar(&customerID, "customer", "local", "Customer ID stamped on the report")
	return command
}

func newRenderer(format string, topN int) (reporters.ReportRenderer, error) {
	switch format {
	case "text":
		return reporters.NewTextRenderer(topN), nil
	case "json":
		return reporters.NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q, expected text or json", format)
	}
}

// parseFiles parses every file concurrently. Results keep the argument order
// so the merged batch, and with it the report, is the same on every run.
func parseFiles(paths []string) ([]*ingestors.ParseResult, error) {
	parser := ingestors.NewELBLogParser()
	results := make([]*ingestors.ParseResult, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			result, err := parser.Parse(file)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
