package build

import (
	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/validate"
)

// checkIntegrity re-walks cross-document references that construction did
// not check incrementally. This pass is additive: references that already
// produced a construction error (argument statement IDs, parent node IDs,
// named ordered sets) are not re-reported here.
func (b *Builder) checkIntegrity(raw *validate.RawDocument) {
	// A statement that was declared but failed its own construction has
	// already been reported; referencing it is not a second error.
	declared := make(map[string]struct{}, len(raw.Statements))
	for _, rs := range raw.Statements {
		declared[rs.ID] = struct{}{}
	}
	for _, id := range raw.FailedStatementIDs {
		declared[id] = struct{}{}
	}

	// Ordered-set member statement IDs are the one reference class nothing
	// verified during construction.
	for _, ro := range raw.OrderedSets {
		set, ok := b.doc.OrderedSet(ro.ID)
		if !ok {
			continue
		}
		for _, sid := range set.StatementIDs {
			if _, ok := declared[sid]; ok {
				continue
			}
			if _, built := b.doc.Statement(sid); !built {
				b.errs.Addf(diag.KindMissingReference, validate.SectionOrderedSets, ro.ID,
					"statement %q is not declared", sid)
			}
		}
	}
}
