package model

import (
	"fmt"
	"sort"
)

// ProofDocument is the structural model: five identity-keyed collections
// that exclusively own all entities. Entities reference each other only by
// ID, never by embedded pointers, so shared references (an ordered set used
// by two arguments, a node named as another's parent) carry no structural
// duplication. The aggregate is immutable once a decode returns it.
type ProofDocument struct {
	statements  map[string]*Statement
	orderedSets map[string]*OrderedSet
	arguments   map[string]*AtomicArgument
	trees       map[string]*Tree
	nodes       map[string]*Node
}

// NewProofDocument creates an empty structural model
func NewProofDocument() *ProofDocument {
	return &ProofDocument{
		statements:  map[string]*Statement{},
		orderedSets: map[string]*OrderedSet{},
		arguments:   map[string]*AtomicArgument{},
		trees:       map[string]*Tree{},
		nodes:       map[string]*Node{},
	}
}

// AddStatement registers a statement; duplicate IDs are rejected
func (d *ProofDocument) AddStatement(s *Statement) error {
	if _, ok := d.statements[s.ID]; ok {
		return fmt.Errorf("duplicate statement ID %q", s.ID)
	}
	d.statements[s.ID] = s
	return nil
}

// AddOrderedSet registers an ordered set; duplicate IDs are rejected
func (d *ProofDocument) AddOrderedSet(os *OrderedSet) error {
	if _, ok := d.orderedSets[os.ID]; ok {
		return fmt.Errorf("duplicate ordered set ID %q", os.ID)
	}
	d.orderedSets[os.ID] = os
	return nil
}

// AddArgument registers an atomic argument; duplicate IDs are rejected
func (d *ProofDocument) AddArgument(a *AtomicArgument) error {
	if _, ok := d.arguments[a.ID]; ok {
		return fmt.Errorf("duplicate argument ID %q", a.ID)
	}
	d.arguments[a.ID] = a
	return nil
}

// AddTree registers a tree; duplicate IDs are rejected
func (d *ProofDocument) AddTree(t *Tree) error {
	if _, ok := d.trees[t.ID]; ok {
		return fmt.Errorf("duplicate tree ID %q", t.ID)
	}
	d.trees[t.ID] = t
	return nil
}

// AddNode registers a node; duplicate IDs are rejected
func (d *ProofDocument) AddNode(n *Node) error {
	if _, ok := d.nodes[n.ID]; ok {
		return fmt.Errorf("duplicate node ID %q", n.ID)
	}
	d.nodes[n.ID] = n
	return nil
}

// Statement looks up a statement by ID
func (d *ProofDocument) Statement(id string) (*Statement, bool) {
	s, ok := d.statements[id]
	return s, ok
}

// OrderedSet looks up an ordered set by ID
func (d *ProofDocument) OrderedSet(id string) (*OrderedSet, bool) {
	os, ok := d.orderedSets[id]
	return os, ok
}

// Argument looks up an atomic argument by ID
func (d *ProofDocument) Argument(id string) (*AtomicArgument, bool) {
	a, ok := d.arguments[id]
	return a, ok
}

// Tree looks up a tree by ID
func (d *ProofDocument) Tree(id string) (*Tree, bool) {
	t, ok := d.trees[id]
	return t, ok
}

// Node looks up a node by ID
func (d *ProofDocument) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// StatementIDs returns all statement IDs, sorted
func (d *ProofDocument) StatementIDs() []string {
	return sortedKeys(d.statements)
}

// OrderedSetIDs returns all ordered set IDs, sorted
func (d *ProofDocument) OrderedSetIDs() []string {
	return sortedKeys(d.orderedSets)
}

// ArgumentIDs returns all atomic argument IDs, sorted
func (d *ProofDocument) ArgumentIDs() []string {
	return sortedKeys(d.arguments)
}

// TreeIDs returns all tree IDs, sorted
func (d *ProofDocument) TreeIDs() []string {
	return sortedKeys(d.trees)
}

// NodeIDs returns all node IDs, sorted
func (d *ProofDocument) NodeIDs() []string {
	return sortedKeys(d.nodes)
}

// IsEmpty reports whether the document declares no entities at all
func (d *ProofDocument) IsEmpty() bool {
	return len(d.statements) == 0 && len(d.orderedSets) == 0 &&
		len(d.arguments) == 0 && len(d.trees) == 0 && len(d.nodes) == 0
}

// Counts summarizes entity totals for reporting
type Counts struct {
	Statements         int `json:"statements"`
	OrderedSets        int `json:"ordered_sets"`
	AtomicArguments    int `json:"atomic_arguments"`
	BootstrapArguments int `json:"bootstrap_arguments"`
	Trees              int `json:"trees"`
	Nodes              int `json:"nodes"`
}

// Counts returns entity totals for the document
func (d *ProofDocument) Counts() Counts {
	c := Counts{
		Statements:      len(d.statements),
		OrderedSets:     len(d.orderedSets),
		AtomicArguments: len(d.arguments),
		Trees:           len(d.trees),
		Nodes:           len(d.nodes),
	}
	for _, a := range d.arguments {
		if a.IsBootstrap() {
			c.BootstrapArguments++
		}
	}
	return c
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
