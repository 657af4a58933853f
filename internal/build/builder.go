// Package build constructs the structural model from the validated raw
// document in dependency order: statements first, then ordered sets and
// atomic arguments (which reference statements), then trees and nodes
// (which reference arguments and each other). Construction errors are
// accumulated; a failed entry is skipped without aborting its siblings.
package build

import (
	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/model"
	"github.com/prooflab/proofdoc/internal/validate"
)

// Builder constructs one ProofDocument. A builder holds per-decode state
// and must not be shared across concurrent decodes.
type Builder struct {
	errs         *diag.List
	doc          *model.ProofDocument
	maxStatement int
}

// New creates a builder that appends construction errors to errs.
// maxStatementLength <= 0 selects the model default.
func New(errs *diag.List, maxStatementLength int) *Builder {
	return &Builder{
		errs:         errs,
		doc:          model.NewProofDocument(),
		maxStatement: maxStatementLength,
	}
}

// Build constructs all entities and runs the final integrity pass. The
// returned document is only usable when the error list stayed empty.
func (b *Builder) Build(raw *validate.RawDocument) *model.ProofDocument {
	b.buildStatements(raw.Statements)
	b.buildOrderedSets(raw.OrderedSets)
	b.buildAtomicArguments(raw.AtomicArguments)
	b.buildVerboseArguments(raw.Arguments)
	b.buildConciseArguments(raw.ConciseArguments)
	b.buildTrees(raw.Trees)
	b.checkIntegrity(raw)
	return b.doc
}

func (b *Builder) buildStatements(stmts []validate.RawStatement) {
	for _, rs := range stmts {
		stmt, err := model.NewStatement(rs.ID, rs.Text, b.maxStatement)
		if err != nil {
			b.errs.Addf(diag.KindInvalidStatement, validate.SectionStatements, rs.ID, "%v", err)
			continue
		}
		if err := b.doc.AddStatement(stmt); err != nil {
			b.errs.Addf(diag.KindInvalidStatement, validate.SectionStatements, rs.ID, "%v", err)
		}
	}
}

func (b *Builder) buildOrderedSets(sets []validate.RawOrderedSet) {
	for _, ro := range sets {
		// Member statement existence is checked by the integrity pass so
		// that a dangling ID is reported exactly once, scoped here.
		set := model.NewOrderedSet(ro.ID, ro.StatementIDs)
		if err := b.doc.AddOrderedSet(set); err != nil {
			b.errs.Addf(diag.KindInvalidOrderedSet, validate.SectionOrderedSets, ro.ID, "%v", err)
		}
	}
}
