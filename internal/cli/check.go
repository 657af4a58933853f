package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/prooflab/proofdoc/internal/pipeline"
)

var (
	outJSON      string
	checkTimeout time.Duration
	noCache      bool
	noSummary    bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file-or-url>",
	Short: "Decode a proof document and report every problem found",
	Long: `Check decodes one proof document and validates its structure:
- YAML surface syntax
- section shapes (statements, orderedSets, atomicArguments, arguments, trees)
- cross-references (statement IDs, ordered set IDs, parent nodes)
- tree attachment positions

All independently fixable problems are reported in a single pass.

Example:
  proofdoc check socrates.proof.yaml
  proofdoc check socrates.proof.yaml --json report.json
  proofdoc check https://example.com/proofs/modus-ponens.proof.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&outJSON, "json", "", "write the JSON report to this path (\"-\" for stdout)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 30*time.Second, "overall check timeout")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache (force a fresh decode)")
	checkCmd.Flags().BoolVar(&noSummary, "no-summary", false, "suppress the entity-count summary")
}

func runCheck(cmd *cobra.Command, args []string) error {
	location := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.IncludeSummary = cfg.Output.IncludeSummary && !noSummary

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", location)
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", cfg.Cache.Enabled)
	}

	checker := pipeline.NewChecker(cfg)
	report, err := checker.CheckDocument(ctx, location)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeSummary)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return err
		}
	}
	renderer.RenderSummary(report, os.Stdout)

	if !report.Valid {
		return fmt.Errorf("document has %d error(s)", len(report.Errors))
	}
	return nil
}
