package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EXinshate/news-scraper/internal/api"
	"github.com/EXinshate/news-scraper/internal/config"
	"github.com/EXinshate/news-scraper/internal/extract"
	collyfetcher "github.com/EXinshate/news-scraper/internal/fetcher/colly"
	"github.com/EXinshate/news-scraper/internal/logging"
	"github.com/EXinshate/news-scraper/internal/progress"
	"github.com/EXinshate/news-scraper/internal/progress/sinks"
	"github.com/EXinshate/news-scraper/internal/report"
	"github.com/EXinshate/news-scraper/internal/scanner"
)

// newScanCmd creates and configures the 'scan' subcommand.
func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scans the configured news listings",
		Long: `Fetches every configured listing page concurrently, extracts article
titles and links, and prints the results. A keyword restricts the output to
titles containing it; without --keyword the command prompts once on stdin.`,

		RunE: runScanCommand,
	}
	cmd.Flags().String("keyword", "", "title keyword to filter by (skips the prompt)")
	return cmd
}

func runScanCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	keyword, err := resolveKeyword(cmd, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	worklist := scanner.BuildWorklist(cfg.Sites.BaseURLs, cfg.Sites.StartPage, cfg.Sites.EndPage)
	runID := uuid.New()

	tracker := progress.NewTracker(runID, len(worklist),
		sinks.NewLogSink(logger, len(worklist)),
		sinks.NewPrometheusSink(),
	)

	if cfg.Metrics.Enabled {
		metricsServer := api.NewServer(cfg.Metrics.Addr, logger)
		metricsServer.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(ctx); err != nil {
				logger.Warn("metrics server shutdown failed", zap.Error(err))
			}
		}()
	}

	fetcher := scanner.NewRetryingFetcher(
		collyfetcher.New(collyfetcher.Config{
			UserAgent: cfg.HTTP.UserAgent,
			Timeout:   cfg.HTTPTimeout(),
		}),
		cfg.Fetch.MaxAttempts,
		cfg.RetryDelay(),
		tracker,
		logger,
	)

	orchestrator := scanner.NewOrchestrator(
		fetcher,
		extract.New(),
		cfg.Scan.Workers,
		tracker,
		logger,
		runID,
	)

	articles := orchestrator.Run(cmd.Context(), worklist)
	filtered := scanner.FilterByKeyword(articles, keyword)

	return report.Render(cmd.OutOrStdout(), filtered)
}

// resolveKeyword returns the --keyword flag when given, otherwise prompts
// once on in. An empty line (or closed stdin) means no filter.
func resolveKeyword(cmd *cobra.Command, in io.Reader, out io.Writer) (string, error) {
	if cmd.Flags().Changed("keyword") {
		return cmd.Flags().GetString("keyword")
	}

	fmt.Fprint(out, "Enter a title keyword (press Enter to skip): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read keyword: %w", err)
	}
	return strings.TrimSpace(line), nil
}
