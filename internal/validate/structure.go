// Package validate walks the generic value tree and produces a typed but
// still raw intermediate structure, rejecting wrong shapes per section.
// Sections are validated independently so one section's errors never
// suppress another's; every sub-step appends to the shared error list
// rather than returning early.
package validate

import (
	"strconv"

	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/parser"
)

// Section names as they appear in the serialized document
const (
	SectionStatements      = "statements"
	SectionOrderedSets     = "orderedSets"
	SectionAtomicArguments = "atomicArguments"
	SectionArguments       = "arguments"
	SectionTrees           = "trees"
)

// RawDocument is the validated intermediate structure. Slices preserve the
// declaration order of the source document; absent or null sections are
// empty, not errors.
type RawDocument struct {
	Statements       []RawStatement
	OrderedSets      []RawOrderedSet
	AtomicArguments  []RawAtomicArgument
	Arguments        []RawArgument
	ConciseArguments []RawConciseArgument
	Trees            []RawTree

	// FailedStatementIDs lists statement IDs that were declared but failed
	// shape validation. The integrity pass uses this to avoid reporting a
	// second error for references to an ID whose failure is already known.
	FailedStatementIDs []string
}

// RawStatement is one statements entry
type RawStatement struct {
	ID   string
	Text string
}

// RawOrderedSet is one orderedSets entry
type RawOrderedSet struct {
	ID           string
	StatementIDs []string
}

// RawAtomicArgument is one atomicArguments entry (legacy form). Premise and
// conclusion fields name ordered sets; empty means absent.
type RawAtomicArgument struct {
	ID            string
	PremiseSet    string
	ConclusionSet string
	SideLabel     string
}

// RawArgument is one arguments entry in the verbose object form
type RawArgument struct {
	ID            string
	PremiseIDs    []string
	ConclusionIDs []string
	SideLabel     string
}

// RawConciseArgument is one arguments entry in the concise sequence form.
// The spec passes through opaquely; the entity builder interprets its
// single premise-key/conclusion-list mapping. Index is the zero-based
// position in the sequence, which fixes the auto-generated ID.
type RawConciseArgument struct {
	Index int
	Spec  *parser.Object
}

// RawOffset is a tree's validated 2D offset
type RawOffset struct {
	X float64
	Y float64
}

// RawTree is one trees entry. Node specs are passed through opaquely for
// the entity builder to interpret.
type RawTree struct {
	ID     string
	Offset *RawOffset
	Nodes  []RawNode
}

// RawNode is one node spec within a tree
type RawNode struct {
	ID   string
	Spec *parser.Object
}

// Document validates the shape of the generic tree, appending every shape
// error to errs. A nil tree is an empty document. The returned RawDocument
// contains every entry that passed its own shape checks, even when sibling
// entries failed.
func Document(root interface{}, errs *diag.List) *RawDocument {
	raw := &RawDocument{}
	if root == nil {
		return raw
	}

	obj, ok := root.(*parser.Object)
	if !ok {
		errs.Addf(diag.KindInvalidStructure, "", "", "document root must be a mapping")
		return raw
	}

	if v, present := obj.Get(SectionStatements); present && v != nil {
		validateStatements(v, raw, errs)
	}
	if v, present := obj.Get(SectionOrderedSets); present && v != nil {
		validateOrderedSets(v, raw, errs)
	}
	if v, present := obj.Get(SectionAtomicArguments); present && v != nil {
		validateAtomicArguments(v, raw, errs)
	}
	if v, present := obj.Get(SectionArguments); present && v != nil {
		validateArguments(v, raw, errs)
	}
	if v, present := obj.Get(SectionTrees); present && v != nil {
		validateTrees(v, raw, errs)
	}

	return raw
}

func validateStatements(v interface{}, raw *RawDocument, errs *diag.List) {
	obj, ok := v.(*parser.Object)
	if !ok {
		errs.Addf(diag.KindInvalidStructure, SectionStatements, "", "statements section must be a mapping")
		return
	}

	for _, id := range obj.Keys() {
		value, _ := obj.Get(id)
		text, ok := value.(string)
		if !ok {
			errs.Addf(diag.KindInvalidStatement, SectionStatements, id, "statement must be a string")
			raw.FailedStatementIDs = append(raw.FailedStatementIDs, id)
			continue
		}
		if text == "" {
			errs.Addf(diag.KindInvalidStatement, SectionStatements, id, "statement cannot be empty")
			raw.FailedStatementIDs = append(raw.FailedStatementIDs, id)
			continue
		}
		raw.Statements = append(raw.Statements, RawStatement{ID: id, Text: text})
	}
}

func validateOrderedSets(v interface{}, raw *RawDocument, errs *diag.List) {
	obj, ok := v.(*parser.Object)
	if !ok {
		errs.Addf(diag.KindInvalidStructure, SectionOrderedSets, "", "orderedSets section must be a mapping")
		return
	}

	for _, id := range obj.Keys() {
		value, _ := obj.Get(id)
		seq, ok := value.([]interface{})
		if !ok {
			errs.Addf(diag.KindInvalidOrderedSet, SectionOrderedSets, id, "ordered set must be a list of statement IDs")
			continue
		}

		ids, ok := stringList(seq)
		if !ok {
			errs.Addf(diag.KindInvalidOrderedSet, SectionOrderedSets, id, "ordered set entries must be non-empty strings")
			continue
		}
		raw.OrderedSets = append(raw.OrderedSets, RawOrderedSet{ID: id, StatementIDs: ids})
	}
}

func validateAtomicArguments(v interface{}, raw *RawDocument, errs *diag.List) {
	obj, ok := v.(*parser.Object)
	if !ok {
		errs.Addf(diag.KindInvalidStructure, SectionAtomicArguments, "", "atomicArguments section must be a mapping")
		return
	}

	for _, id := range obj.Keys() {
		value, _ := obj.Get(id)

		// A null entry is a bootstrap placeholder
		if value == nil {
			raw.AtomicArguments = append(raw.AtomicArguments, RawAtomicArgument{ID: id})
			continue
		}

		entry, ok := value.(*parser.Object)
		if !ok {
			errs.Addf(diag.KindInvalidAtomicArgument, SectionAtomicArguments, id, "atomic argument must be a mapping")
			continue
		}

		ra := RawAtomicArgument{ID: id}
		valid := true

		if premises, present := entry.Get("premises"); present && premises != nil {
			name, ok := premises.(string)
			if !ok || name == "" {
				errs.Addf(diag.KindInvalidAtomicArgument, SectionAtomicArguments, id, "premises must name an ordered set")
				valid = false
			} else {
				ra.PremiseSet = name
			}
		}
		if conclusions, present := entry.Get("conclusions"); present && conclusions != nil {
			name, ok := conclusions.(string)
			if !ok || name == "" {
				errs.Addf(diag.KindInvalidAtomicArgument, SectionAtomicArguments, id, "conclusions must name an ordered set")
				valid = false
			} else {
				ra.ConclusionSet = name
			}
		}
		if label, present := entry.Get("sideLabel"); present {
			if s, ok := label.(string); ok {
				ra.SideLabel = s
			}
		}

		if valid {
			raw.AtomicArguments = append(raw.AtomicArguments, ra)
		}
	}
}

func validateArguments(v interface{}, raw *RawDocument, errs *diag.List) {
	switch section := v.(type) {
	case *parser.Object:
		validateVerboseArguments(section, raw, errs)
	case []interface{}:
		validateConciseArguments(section, raw, errs)
	default:
		errs.Addf(diag.KindInvalidStructure, SectionArguments, "", "arguments section must be a mapping or a sequence")
	}
}

func validateVerboseArguments(obj *parser.Object, raw *RawDocument, errs *diag.List) {
	for _, id := range obj.Keys() {
		value, _ := obj.Get(id)

		if value == nil {
			raw.Arguments = append(raw.Arguments, RawArgument{ID: id})
			continue
		}

		entry, ok := value.(*parser.Object)
		if !ok {
			errs.Addf(diag.KindInvalidArgument, SectionArguments, id, "argument must be a mapping")
			continue
		}

		ra := RawArgument{ID: id}
		valid := true

		if premises, present := entry.Get("premises"); present && premises != nil {
			ids, ok := idList(premises)
			if !ok {
				errs.Addf(diag.KindInvalidArgument, SectionArguments, id, "premises must be a list of non-empty statement IDs")
				valid = false
			} else {
				ra.PremiseIDs = ids
			}
		}
		if conclusions, present := entry.Get("conclusions"); present && conclusions != nil {
			ids, ok := idList(conclusions)
			if !ok {
				errs.Addf(diag.KindInvalidArgument, SectionArguments, id, "conclusions must be a list of non-empty statement IDs")
				valid = false
			} else {
				ra.ConclusionIDs = ids
			}
		}
		if label, present := entry.Get("sideLabel"); present {
			if s, ok := label.(string); ok {
				ra.SideLabel = s
			}
		}

		if valid {
			raw.Arguments = append(raw.Arguments, ra)
		}
	}
}

func validateConciseArguments(seq []interface{}, raw *RawDocument, errs *diag.List) {
	for i, elem := range seq {
		entry, ok := elem.(*parser.Object)
		if !ok {
			// Auto-generated IDs count every sequence slot, valid or not
			errs.Addf(diag.KindInvalidArgument, SectionArguments, AutoArgumentID(i), "concise argument must be a mapping")
			continue
		}
		raw.ConciseArguments = append(raw.ConciseArguments, RawConciseArgument{Index: i, Spec: entry})
	}
}

func validateTrees(v interface{}, raw *RawDocument, errs *diag.List) {
	obj, ok := v.(*parser.Object)
	if !ok {
		errs.Addf(diag.KindInvalidStructure, SectionTrees, "", "trees section must be a mapping")
		return
	}

	for _, id := range obj.Keys() {
		value, _ := obj.Get(id)

		// A null entry is an empty tree at the origin
		if value == nil {
			raw.Trees = append(raw.Trees, RawTree{ID: id})
			continue
		}

		entry, ok := value.(*parser.Object)
		if !ok {
			errs.Addf(diag.KindInvalidTreeStructure, SectionTrees, id, "tree must be a mapping")
			continue
		}

		rt := RawTree{ID: id}
		valid := true

		if offset, present := entry.Get("offset"); present && offset != nil {
			ro, ok := validateOffset(offset)
			if !ok {
				errs.Addf(diag.KindInvalidTreeStructure, SectionTrees, id, "offset must be a mapping with numeric x and y")
				valid = false
			} else {
				rt.Offset = ro
			}
		}

		if nodes, present := entry.Get("nodes"); present && nodes != nil {
			nodesObj, ok := nodes.(*parser.Object)
			if !ok {
				errs.Addf(diag.KindInvalidTreeStructure, SectionTrees, id, "nodes must be a mapping of node IDs to node specs")
				valid = false
			} else {
				for _, nodeID := range nodesObj.Keys() {
					nodeValue, _ := nodesObj.Get(nodeID)
					spec, ok := nodeValue.(*parser.Object)
					if !ok {
						errs.Addf(diag.KindInvalidTreeStructure, SectionTrees, id+"/"+nodeID, "node %q must be a mapping", nodeID)
						continue
					}
					// Deeper interpretation is deferred to the entity builder
					rt.Nodes = append(rt.Nodes, RawNode{ID: nodeID, Spec: spec})
				}
			}
		}

		if valid {
			raw.Trees = append(raw.Trees, rt)
		}
	}
}

func validateOffset(v interface{}) (*RawOffset, bool) {
	obj, ok := v.(*parser.Object)
	if !ok {
		return nil, false
	}
	x, okX := numeric(valueOf(obj, "x"))
	y, okY := numeric(valueOf(obj, "y"))
	if !okX || !okY {
		return nil, false
	}
	return &RawOffset{X: x, Y: y}, true
}

func valueOf(obj *parser.Object, key string) interface{} {
	v, _ := obj.Get(key)
	return v
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func stringList(seq []interface{}) ([]string, bool) {
	out := make([]string, 0, len(seq))
	for _, elem := range seq {
		s, ok := elem.(string)
		if !ok || s == "" {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// idList accepts a sequence of non-empty strings
func idList(v interface{}) ([]string, bool) {
	seq, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	return stringList(seq)
}

// AutoArgumentID names the Nth concise argument (1-based)
func AutoArgumentID(index int) string {
	return "arg" + strconv.Itoa(index+1)
}
