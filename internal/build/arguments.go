package build

import (
	"regexp"
	"strings"

	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/model"
	"github.com/prooflab/proofdoc/internal/validate"
)

// buildAtomicArguments constructs arguments from the legacy form, where
// premises/conclusions name ordered sets and the builder resolves the named
// set's statement list.
func (b *Builder) buildAtomicArguments(args []validate.RawAtomicArgument) {
	for _, ra := range args {
		var premises, conclusions []string
		valid := true

		if ra.PremiseSet != "" {
			set, ok := b.doc.OrderedSet(ra.PremiseSet)
			if !ok {
				b.errs.Addf(diag.KindMissingReference, validate.SectionAtomicArguments, ra.ID,
					"premises reference unknown ordered set %q", ra.PremiseSet)
				valid = false
			} else {
				premises = set.StatementIDs
			}
		}
		if ra.ConclusionSet != "" {
			set, ok := b.doc.OrderedSet(ra.ConclusionSet)
			if !ok {
				b.errs.Addf(diag.KindMissingReference, validate.SectionAtomicArguments, ra.ID,
					"conclusions reference unknown ordered set %q", ra.ConclusionSet)
				valid = false
			} else {
				conclusions = set.StatementIDs
			}
		}

		if !valid {
			continue
		}

		arg := model.NewAtomicArgument(ra.ID, premises, conclusions)
		arg.SideLabel = ra.SideLabel
		if err := b.doc.AddArgument(arg); err != nil {
			b.errs.Addf(diag.KindInvalidAtomicArgument, validate.SectionAtomicArguments, ra.ID, "%v", err)
		}
	}
}

// buildVerboseArguments constructs arguments from the verbose object form,
// where entries directly list premise/conclusion statement IDs. Unresolved
// IDs are reported individually and resolution of the remaining IDs
// continues, so one typo does not mask the rest of the entry.
func (b *Builder) buildVerboseArguments(args []validate.RawArgument) {
	for _, ra := range args {
		premises := b.resolveStatementIDs(validate.SectionArguments, ra.ID, ra.PremiseIDs)
		conclusions := b.resolveStatementIDs(validate.SectionArguments, ra.ID, ra.ConclusionIDs)

		arg := model.NewAtomicArgument(ra.ID, premises, conclusions)
		arg.SideLabel = ra.SideLabel
		if err := b.doc.AddArgument(arg); err != nil {
			b.errs.Addf(diag.KindInvalidArgument, validate.SectionArguments, ra.ID, "%v", err)
		}
	}
}

// buildConciseArguments constructs arguments from the concise sequence
// form: single-key maps whose key encodes the premise ID list and whose
// value is the conclusion ID list. Entries are auto-named arg1, arg2, ...
// in sequence order.
func (b *Builder) buildConciseArguments(args []validate.RawConciseArgument) {
	for _, rc := range args {
		id := validate.AutoArgumentID(rc.Index)

		if rc.Spec.Len() != 1 {
			b.errs.Addf(diag.KindInvalidArgument, validate.SectionArguments, id,
				"concise argument must have exactly one premise-conclusion mapping")
			continue
		}

		key := rc.Spec.Keys()[0]
		premiseIDs := parsePremiseKey(key)

		value, _ := rc.Spec.Get(key)
		conclusionIDs, ok := conclusionList(value)
		if !ok {
			b.errs.Addf(diag.KindInvalidArgument, validate.SectionArguments, id,
				"conclusions must be a list of statement IDs")
			continue
		}

		// The concise form alone runs the identifier-shape check; the
		// verbose and legacy forms do not. Preserved as-is for behavioral
		// compatibility with the source format.
		shapeOK := true
		for _, sid := range append(append([]string{}, premiseIDs...), conclusionIDs...) {
			if !isValidStatementID(sid) {
				b.errs.Addf(diag.KindInvalidArgument, validate.SectionArguments, id,
					"invalid statement identifier %q", sid)
				shapeOK = false
			}
		}
		if !shapeOK {
			continue
		}

		premises := b.resolveStatementIDs(validate.SectionArguments, id, premiseIDs)
		conclusions := b.resolveStatementIDs(validate.SectionArguments, id, conclusionIDs)

		arg := model.NewAtomicArgument(id, premises, conclusions)
		if err := b.doc.AddArgument(arg); err != nil {
			b.errs.Addf(diag.KindInvalidArgument, validate.SectionArguments, id, "%v", err)
		}
	}
}

// resolveStatementIDs checks each ID against the statements collection,
// reporting every unresolved ID and returning the IDs that resolved.
func (b *Builder) resolveStatementIDs(section, ref string, ids []string) []string {
	var resolved []string
	for _, sid := range ids {
		if _, ok := b.doc.Statement(sid); !ok {
			b.errs.Addf(diag.KindMissingReference, section, ref, "statement %q is not declared", sid)
			continue
		}
		resolved = append(resolved, sid)
	}
	return resolved
}

// parsePremiseKey decodes a concise premise key: split on commas if any,
// else one premise if non-empty, else zero premises. Splitting on comma is
// unconditional; a single ID containing a literal comma is indistinguishable
// from a list key and is treated as a list (a known format limitation).
func parsePremiseKey(key string) []string {
	if key == "" {
		return nil
	}
	if !strings.Contains(key, ",") {
		return []string{key}
	}
	parts := strings.Split(key, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, strings.TrimSpace(p))
	}
	return ids
}

func conclusionList(v interface{}) ([]string, bool) {
	if v == nil {
		return nil, true
	}
	seq, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	ids := make([]string, 0, len(seq))
	for _, elem := range seq {
		s, ok := elem.(string)
		if !ok || s == "" {
			return nil, false
		}
		ids = append(ids, s)
	}
	return ids, true
}

var statementIDRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// placeholderPrefixes blocks identifiers that look like leftover template
// text; intended to catch copy-paste mistakes in the terse syntax.
var placeholderPrefixes = []string{"invalid", "example", "test", "placeholder", "sample", "demo"}

func isValidStatementID(id string) bool {
	if !statementIDRe.MatchString(id) {
		return false
	}
	lower := strings.ToLower(id)
	for _, prefix := range placeholderPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}
