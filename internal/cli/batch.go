package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prooflab/proofdoc/internal/pipeline"
	"github.com/prooflab/proofdoc/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list-file>",
	Short: "Check multiple proof documents in parallel",
	Long: `Batch checks many documents concurrently:
- A directory argument is walked for *.proof.yaml / *.proof.yml files
- Any other argument is read as a list file (one path or URL per line)
- Documents are checked in parallel with a configurable worker count
- A JSON report is written per document when --output-dir is set

Example:
  proofdoc batch ./proofs
  proofdoc batch documents.txt --concurrency 10 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for per-document JSON reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache (force fresh decodes)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	locations, err := worker.CollectLocations(input)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		return fmt.Errorf("no documents found in %s", input)
	}

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Input:      %s\n", input)
		fmt.Fprintf(os.Stderr, "Documents:  %d\n", len(locations))
		fmt.Fprintf(os.Stderr, "Workers:    %d\n\n", cfg.Concurrency.Workers)
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	checker := pipeline.NewChecker(cfg)
	processor := worker.NewBatchProcessor(checker, cfg.Concurrency.Workers)
	results := processor.ProcessLocations(ctx, locations)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeSummary)

	var valid, invalid, failed int
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Location, result.Error)
			continue
		}

		renderer.RenderSummary(result.Report, os.Stdout)
		if result.Report.Valid {
			valid++
		} else {
			invalid++
		}

		if outputDir != "" {
			path := filepath.Join(outputDir, reportFileName(result.Location))
			if err := renderer.RenderJSON(result.Report, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to write report for %s: %v\n", result.Location, err)
			}
		}
	}

	fmt.Printf("\n%d valid, %d invalid, %d unreadable (of %d)\n", valid, invalid, failed, len(results))

	if invalid > 0 || failed > 0 {
		return fmt.Errorf("%d of %d documents did not check out", invalid+failed, len(results))
	}
	return nil
}

// reportFileName flattens a document location into a report file name
func reportFileName(location string) string {
	name := strings.NewReplacer("://", "_", "/", "_", "\\", "_", ":", "_").Replace(location)
	return name + ".report.json"
}
