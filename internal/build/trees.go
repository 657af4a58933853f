package build

import (
	"math"
	"strconv"
	"strings"

	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/model"
	"github.com/prooflab/proofdoc/internal/parser"
	"github.com/prooflab/proofdoc/internal/validate"
)

// nodeSpec is the classified interpretation of one node spec mapping.
// Classification happens up front in pass 1; position parsing and parent
// resolution are deferred to pass 2 so that parents declared after their
// children still resolve.
type nodeSpec struct {
	id          string
	root        bool
	argumentID  string
	parentKey   string      // Parent node ID; "" means missing (pass-2 error)
	parentValue interface{} // Value stored under parentKey
	onValue     interface{} // Value of the "on" field when present
	hasOn       bool
}

// classifyNodeSpec decides the interpretation of a node spec. A spec is a
// root iff it has exactly one key named "arg"; otherwise it is a child and
// the argument ID comes from "arg" when present, else from the first key
// whose value is a string (that key being the parent node ID).
func classifyNodeSpec(id string, spec *parser.Object) (*nodeSpec, string) {
	ns := &nodeSpec{id: id}
	ns.onValue, ns.hasOn = spec.Get("on")

	argValue, hasArg := spec.Get("arg")
	if hasArg {
		argID, ok := argValue.(string)
		if !ok || argID == "" {
			return nil, "arg must be a non-empty string"
		}
		ns.argumentID = argID

		if spec.Len() == 1 {
			ns.root = true
			return ns, ""
		}

		for _, key := range spec.Keys() {
			if key == "arg" || key == "on" {
				continue
			}
			ns.parentKey = key
			ns.parentValue, _ = spec.Get(key)
			break
		}
		return ns, ""
	}

	for _, key := range spec.Keys() {
		if key == "on" {
			continue
		}
		value, _ := spec.Get(key)
		if argID, ok := value.(string); ok && argID != "" {
			ns.parentKey = key
			ns.parentValue = value
			ns.argumentID = argID
			break
		}
	}
	if ns.argumentID == "" {
		return nil, "node must reference an argument"
	}
	return ns, ""
}

func (b *Builder) buildTrees(trees []validate.RawTree) {
	for _, rt := range trees {
		offset := model.Offset{}
		if rt.Offset != nil {
			offset = model.Offset{X: rt.Offset.X, Y: rt.Offset.Y}
		}

		tree := model.NewTree(rt.ID, offset)
		if err := b.doc.AddTree(tree); err != nil {
			b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, rt.ID, "%v", err)
			continue
		}

		// Pass 1: create every node as an unattached entity keyed by its
		// declared ID, so pass 2 can look parents up regardless of the
		// order they were declared in.
		var children []*nodeSpec
		for _, rn := range rt.Nodes {
			spec, msg := classifyNodeSpec(rn.ID, rn.Spec)
			if msg != "" {
				b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(rt.ID, rn.ID),
					"node %q: %s", rn.ID, msg)
				continue
			}

			if _, ok := b.doc.Argument(spec.argumentID); !ok {
				b.errs.Addf(diag.KindMissingReference, validate.SectionTrees, nodeRef(rt.ID, rn.ID),
					"node %q references unknown argument %q", rn.ID, spec.argumentID)
				continue
			}

			node := model.NewNode(rn.ID, rt.ID, spec.argumentID)
			if err := b.doc.AddNode(node); err != nil {
				b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(rt.ID, rn.ID), "%v", err)
				continue
			}
			if err := tree.AddNode(rn.ID); err != nil {
				b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(rt.ID, rn.ID), "%v", err)
				continue
			}

			if !spec.root {
				children = append(children, spec)
			}
		}

		// Pass 2: wire attachments now that the whole arena exists
		for _, spec := range children {
			b.attachNode(tree, spec)
		}

		b.checkRooting(tree)
	}
}

// nodeRef scopes an error to one node within a tree
func nodeRef(treeID, nodeID string) string {
	return treeID + "/" + nodeID
}

func (b *Builder) attachNode(tree *model.Tree, spec *nodeSpec) {
	node, ok := b.doc.Node(spec.id)
	if !ok {
		return
	}

	if spec.parentKey == "" {
		b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(tree.ID, spec.id),
			"node %q does not name a parent node", spec.id)
		return
	}

	if spec.parentKey == spec.id {
		b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(tree.ID, spec.id),
			"node %q cannot be attached to itself", spec.id)
		return
	}

	position, from, msg := resolvePosition(spec)
	if msg != "" {
		b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(tree.ID, spec.id),
			"node %q: %s", spec.id, msg)
		return
	}

	if _, exists := b.doc.Node(spec.parentKey); !exists || !tree.HasNode(spec.parentKey) {
		b.errs.Addf(diag.KindMissingReference, validate.SectionTrees, nodeRef(tree.ID, spec.id),
			"node %q references unknown parent node %q", spec.id, spec.parentKey)
		return
	}

	attachment, err := model.NewAttachment(spec.parentKey, position, from)
	if err != nil {
		b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(tree.ID, spec.id),
			"node %q: %v", spec.id, err)
		return
	}
	if err := node.Attach(attachment); err != nil {
		b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(tree.ID, spec.id), "%v", err)
	}
}

// checkRooting verifies that every attachment chain terminates at a root.
// Nodes wired into a cycle can never reach one. Each cycle is reported once,
// against the node that closes it; nodes that merely lead into an already
// reported cycle are marked without a second error.
func (b *Builder) checkRooting(tree *model.Tree) {
	const (
		rooted = iota + 1
		cyclic
	)
	state := map[string]int{}

	for _, start := range tree.NodeIDs() {
		if state[start] != 0 {
			continue
		}

		var path []string
		onPath := map[string]struct{}{}
		current := start
		for {
			node, ok := b.doc.Node(current)
			if !ok || node.IsRoot() {
				state[current] = rooted
				for _, id := range path {
					state[id] = rooted
				}
				break
			}
			if s := state[current]; s != 0 {
				for _, id := range path {
					state[id] = s
				}
				break
			}
			if _, seen := onPath[current]; seen {
				b.errs.Addf(diag.KindInvalidTreeStructure, validate.SectionTrees, nodeRef(tree.ID, current),
					"node %q is part of an attachment cycle", current)
				for _, id := range path {
					state[id] = cyclic
				}
				break
			}
			onPath[current] = struct{}{}
			path = append(path, current)
			current = node.Attachment().ParentID
		}
	}
}

// resolvePosition extracts the target premise position and the optional
// source conclusion position. The "on" field takes precedence: a bare
// number, a numeric string, or a "from:to" string whose to-part is the
// target position. With "on" absent, a numeric value on the parent key
// itself supplies the position (the oldest supported form).
func resolvePosition(spec *nodeSpec) (int, *int, string) {
	if spec.hasOn {
		switch v := spec.onValue.(type) {
		case int64:
			return int(v), nil, ""
		case float64:
			if v != math.Trunc(v) {
				return 0, nil, "position must be an integer"
			}
			return int(v), nil, ""
		case string:
			if strings.Contains(v, ":") {
				parts := strings.SplitN(v, ":", 2)
				from, errFrom := strconv.Atoi(strings.TrimSpace(parts[0]))
				to, errTo := strconv.Atoi(strings.TrimSpace(parts[1]))
				if errFrom != nil || errTo != nil {
					return 0, nil, "position range " + strconv.Quote(v) + " is not numeric"
				}
				return to, &from, ""
			}
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return 0, nil, "position " + strconv.Quote(v) + " is not a number"
			}
			return n, nil, ""
		default:
			return 0, nil, "position must be a number or a from:to string"
		}
	}

	switch v := spec.parentValue.(type) {
	case int64:
		return int(v), nil, ""
	case float64:
		if v != math.Trunc(v) {
			return 0, nil, "position must be an integer"
		}
		return int(v), nil, ""
	default:
		return 0, nil, "node has no resolvable position"
	}
}
