package diag

import (
	"fmt"
	"strings"
)

// Kind classifies a decode error
type Kind string

const (
	KindYAMLSyntax            Kind = "YAML_SYNTAX"             // Unparseable surface syntax (terminal)
	KindInvalidStructure      Kind = "INVALID_STRUCTURE"       // Wrong shape at the document/section level
	KindInvalidStatement      Kind = "INVALID_STATEMENT"       // Bad statement entry
	KindInvalidOrderedSet     Kind = "INVALID_ORDERED_SET"     // Bad ordered-set entry
	KindInvalidAtomicArgument Kind = "INVALID_ATOMIC_ARGUMENT" // Bad atomic-argument entry (legacy form)
	KindInvalidArgument       Kind = "INVALID_ARGUMENT"        // Bad argument entry (current forms)
	KindInvalidTreeStructure  Kind = "INVALID_TREE_STRUCTURE"  // Bad tree/node/attachment data
	KindMissingReference      Kind = "MISSING_REFERENCE"       // Reference to an entity that does not exist
)

// kindOrder fixes the grouping order used by List.Format
var kindOrder = []Kind{
	KindYAMLSyntax,
	KindInvalidStructure,
	KindInvalidStatement,
	KindInvalidOrderedSet,
	KindInvalidAtomicArgument,
	KindInvalidArgument,
	KindInvalidTreeStructure,
	KindMissingReference,
}

// Error is one structured decode error
type Error struct {
	Kind      Kind   `json:"kind"`
	Message   string `json:"message"`
	Section   string `json:"section,omitempty"`   // Top-level section ("statements", "trees", ...)
	Reference string `json:"reference,omitempty"` // Entry ID within the section
	Line      int    `json:"line,omitempty"`      // 1-based, syntax errors only (0 = unknown)
	Column    int    `json:"column,omitempty"`    // 1-based, syntax errors only (0 = unknown)
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Section != "" {
		b.WriteString(" [" + e.Section)
		if e.Reference != "" {
			b.WriteString("/" + e.Reference)
		}
		b.WriteString("]")
	}
	b.WriteString(": " + e.Message)
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ", column %d", e.Column)
		}
		b.WriteString(")")
	}
	return b.String()
}

// List accumulates structured errors across decode phases.
// The zero value is not usable; create one with NewList.
type List struct {
	errs []*Error
}

// NewList creates an empty error list
func NewList() *List {
	return &List{}
}

// FromErrors creates a list holding the given errors, preserving order
func FromErrors(errs []*Error) *List {
	l := &List{errs: make([]*Error, len(errs))}
	copy(l.errs, errs)
	return l
}

// Add appends an error to the list
func (l *List) Add(e *Error) {
	l.errs = append(l.errs, e)
}

// Addf appends an error built from a format string
func (l *List) Addf(kind Kind, section, reference, format string, args ...interface{}) {
	l.Add(&Error{
		Kind:      kind,
		Message:   fmt.Sprintf(format, args...),
		Section:   section,
		Reference: reference,
	})
}

// Len returns the number of accumulated errors
func (l *List) Len() int {
	return len(l.errs)
}

// Empty reports whether no errors were accumulated
func (l *List) Empty() bool {
	return len(l.errs) == 0
}

// All returns the accumulated errors in insertion order
func (l *List) All() []*Error {
	out := make([]*Error, len(l.errs))
	copy(out, l.errs)
	return out
}

// ByKind returns the errors of the given kind, in insertion order
func (l *List) ByKind(kind Kind) []*Error {
	var out []*Error
	for _, e := range l.errs {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// HasKind reports whether any error of the given kind was accumulated
func (l *List) HasKind(kind Kind) bool {
	for _, e := range l.errs {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Error implements the error interface with a one-line summary
func (l *List) Error() string {
	switch len(l.errs) {
	case 0:
		return "no errors"
	case 1:
		return l.errs[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l.errs[0].Error(), len(l.errs)-1)
	}
}

// Format renders the full list grouped by kind then section, in a fixed
// kind order; within a group, insertion order is preserved.
func (l *List) Format() string {
	if len(l.errs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, kind := range kindOrder {
		group := l.ByKind(kind)
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s (%d):\n", kind, len(group))

		// Preserve first-seen section order within the kind group
		var sections []string
		bySection := map[string][]*Error{}
		for _, e := range group {
			if _, seen := bySection[e.Section]; !seen {
				sections = append(sections, e.Section)
			}
			bySection[e.Section] = append(bySection[e.Section], e)
		}

		for _, section := range sections {
			for _, e := range bySection[section] {
				b.WriteString("  ")
				if e.Section != "" {
					b.WriteString(e.Section)
					if e.Reference != "" {
						b.WriteString("/" + e.Reference)
					}
					b.WriteString(": ")
				}
				b.WriteString(e.Message)
				if e.Line > 0 {
					fmt.Fprintf(&b, " (line %d)", e.Line)
				}
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
