// Package pipeline orchestrates the decode phases: generic decoding,
// structure validation, entity building, and integrity checking.
package pipeline

import (
	"github.com/prooflab/proofdoc/internal/build"
	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/model"
	"github.com/prooflab/proofdoc/internal/parser"
	"github.com/prooflab/proofdoc/internal/validate"
)

// Pipeline decodes document text into the structural model. A pipeline is
// stateless between calls: each Decode works on its own intermediate
// collections, so one pipeline may serve concurrent decodes of different
// documents.
type Pipeline struct {
	config *model.Config
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	return &Pipeline{config: cfg}
}

// Decode runs the whole pipeline over one document's text. On success it
// returns the structural model and a nil list; on failure it returns a nil
// model and the non-empty aggregated error list. There is no partial model:
// callers get one or the other.
func (p *Pipeline) Decode(text string) (*model.ProofDocument, *diag.List) {
	// 1. Generic decode. A syntax error is terminal: nothing downstream
	// can be attempted without a parseable tree.
	tree, syntaxErr := parser.Decode(text)
	if syntaxErr != nil {
		errs := diag.NewList()
		errs.Add(syntaxErr)
		return nil, errs
	}

	errs := diag.NewList()

	// 2. Shape validation, accumulating across sections
	raw := validate.Document(tree, errs)

	// 3. Entity construction in dependency order, plus the integrity pass
	doc := build.New(errs, p.config.Limits.MaxStatementLength).Build(raw)

	if !errs.Empty() {
		return nil, errs
	}
	return doc, nil
}
