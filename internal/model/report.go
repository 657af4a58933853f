package model

import (
	"sort"
	"time"

	"github.com/prooflab/proofdoc/internal/diag"
)

// Report is the result of checking one document
type Report struct {
	Source    string    `json:"source"`     // File path or URL the document was read from
	CheckedAt time.Time `json:"checked_at"` // When the check ran
	Valid     bool      `json:"valid"`      // True when the document decoded with zero errors

	Counts Counts        `json:"counts"`
	Trees  []TreeStat    `json:"trees,omitempty"`
	Errors []*diag.Error `json:"errors,omitempty"`
}

// TreeStat summarizes one tree in the document
type TreeStat struct {
	ID    string `json:"id"`
	Nodes int    `json:"nodes"`
	Roots int    `json:"roots"`
}

// NewReport builds a report for a successful decode
func NewReport(source string, doc *ProofDocument) *Report {
	r := &Report{
		Source:    source,
		CheckedAt: time.Now().UTC(),
		Valid:     true,
		Counts:    doc.Counts(),
	}

	for _, treeID := range doc.TreeIDs() {
		tree, _ := doc.Tree(treeID)
		stat := TreeStat{ID: treeID, Nodes: tree.NodeCount()}
		for _, nodeID := range tree.NodeIDs() {
			if node, ok := doc.Node(nodeID); ok && node.IsRoot() {
				stat.Roots++
			}
		}
		r.Trees = append(r.Trees, stat)
	}
	sort.Slice(r.Trees, func(i, j int) bool { return r.Trees[i].ID < r.Trees[j].ID })

	return r
}

// NewFailureReport builds a report for a failed decode
func NewFailureReport(source string, errs *diag.List) *Report {
	return &Report{
		Source:    source,
		CheckedAt: time.Now().UTC(),
		Valid:     false,
		Errors:    errs.All(),
	}
}
