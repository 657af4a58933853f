package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/model"
)

// Renderer writes check reports as JSON and human-readable summaries
type Renderer struct {
	includeSummary bool
}

// NewRenderer creates a renderer
func NewRenderer(includeSummary bool) *Renderer {
	return &Renderer{includeSummary: includeSummary}
}

// RenderJSON writes the report as indented JSON to path, or to stdout when
// path is "-"
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a human-readable summary of the report
func (r *Renderer) RenderSummary(report *model.Report, w io.Writer) {
	if report.Valid {
		fmt.Fprintf(w, "✓ %s\n", report.Source)
		if !r.includeSummary {
			return
		}
		c := report.Counts
		fmt.Fprintf(w, "  statements: %d, ordered sets: %d, arguments: %d (bootstrap: %d), trees: %d, nodes: %d\n",
			c.Statements, c.OrderedSets, c.AtomicArguments, c.BootstrapArguments, c.Trees, c.Nodes)
		for _, tree := range report.Trees {
			fmt.Fprintf(w, "  tree %s: %d nodes (%d roots)\n", tree.ID, tree.Nodes, tree.Roots)
		}
		return
	}

	fmt.Fprintf(w, "✗ %s: %d error(s)\n", report.Source, len(report.Errors))
	fmt.Fprint(w, diag.FromErrors(report.Errors).Format())
}
