package model

import "fmt"

// Offset is a tree's 2D position on the workspace canvas
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tree is a positioned container of nodes forming one proof
type Tree struct {
	ID      string `json:"id"`
	Offset  Offset `json:"offset"`
	nodeIDs []string
	members map[string]struct{}
}

// NewTree creates an empty tree at the given offset
func NewTree(id string, offset Offset) *Tree {
	return &Tree{
		ID:      id,
		Offset:  offset,
		members: map[string]struct{}{},
	}
}

// AddNode registers a node as a member of the tree
func (t *Tree) AddNode(nodeID string) error {
	if _, ok := t.members[nodeID]; ok {
		return fmt.Errorf("node %q is already a member of tree %q", nodeID, t.ID)
	}
	t.members[nodeID] = struct{}{}
	t.nodeIDs = append(t.nodeIDs, nodeID)
	return nil
}

// HasNode reports whether the node is a member of the tree
func (t *Tree) HasNode(nodeID string) bool {
	_, ok := t.members[nodeID]
	return ok
}

// NodeIDs returns the member node IDs in declaration order
func (t *Tree) NodeIDs() []string {
	out := make([]string, len(t.nodeIDs))
	copy(out, t.nodeIDs)
	return out
}

// NodeCount returns the number of member nodes
func (t *Tree) NodeCount() int {
	return len(t.nodeIDs)
}

// Attachment describes how a child node's argument connects to its parent:
// which parent, which premise slot it fills, and optionally which of the
// parent-feeding argument's several conclusions it draws from.
type Attachment struct {
	ParentID     string `json:"parent_id"`
	Position     int    `json:"position"`
	FromPosition *int   `json:"from_position,omitempty"`
}

// NewAttachment creates an attachment, rejecting invalid positions
func NewAttachment(parentID string, position int, fromPosition *int) (*Attachment, error) {
	if parentID == "" {
		return nil, fmt.Errorf("attachment requires a parent node ID")
	}
	if position < 0 {
		return nil, fmt.Errorf("attachment position cannot be negative (%d)", position)
	}
	if fromPosition != nil && *fromPosition < 0 {
		return nil, fmt.Errorf("attachment source position cannot be negative (%d)", *fromPosition)
	}
	return &Attachment{ParentID: parentID, Position: position, FromPosition: fromPosition}, nil
}

// Node is one placement of an atomic argument inside a tree. A node is
// either a root (no attachment) or a child (exactly one attachment); once
// attached, the parent relationship is immutable.
type Node struct {
	ID         string `json:"id"`
	TreeID     string `json:"tree_id"`
	ArgumentID string `json:"argument_id"`
	attachment *Attachment
}

// NewNode creates an unattached node referencing an argument
func NewNode(id, treeID, argumentID string) *Node {
	return &Node{ID: id, TreeID: treeID, ArgumentID: argumentID}
}

// Attach wires the node to its parent; attaching twice is an error
func (n *Node) Attach(a *Attachment) error {
	if n.attachment != nil {
		return fmt.Errorf("node %q is already attached to %q", n.ID, n.attachment.ParentID)
	}
	n.attachment = a
	return nil
}

// IsRoot reports whether the node has no parent
func (n *Node) IsRoot() bool {
	return n.attachment == nil
}

// Attachment returns the node's attachment, or nil for a root
func (n *Node) Attachment() *Attachment {
	return n.attachment
}
