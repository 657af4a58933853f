// Package parser turns serialized document text into a generic, untyped
// value tree. It is the only phase that touches YAML syntax; everything
// downstream works on the tree it produces.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prooflab/proofdoc/internal/diag"
)

// Object is a mapping that preserves the key order of the source document.
// Key order is semantic: child-node specs are interpreted by their first
// string-valued key, and concise-argument IDs are assigned in declaration
// order.
type Object struct {
	keys   []string
	values map[string]interface{}
}

// NewObject creates an empty ordered mapping
func NewObject() *Object {
	return &Object{values: map[string]interface{}{}}
}

// Set stores a value under key, appending the key on first insertion
func (o *Object) Set(key string, value interface{}) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key
func (o *Object) Get(key string) (interface{}, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns the keys in declaration order
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of entries
func (o *Object) Len() int {
	return len(o.keys)
}

// yamlLineRe extracts the 1-based line number that yaml.v3 embeds in its
// parse error strings ("yaml: line 3: ..."). Column is not exposed.
var yamlLineRe = regexp.MustCompile(`(?i)line (\d+):`)

// Decode parses document text into a generic value tree: *Object for
// mappings, []interface{} for sequences, and string/int64/float64/bool/nil
// scalars. An empty or comment-only document decodes to nil with no error.
// A duplicate mapping key is a syntax error. A syntax error is singular and
// terminal: nothing downstream can run without a parseable tree.
func Decode(text string) (interface{}, *diag.Error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, syntaxError(err)
	}

	// yaml.Unmarshal leaves the node zero-valued for empty input
	if root.Kind == 0 {
		return nil, nil
	}

	value, err := convert(&root)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func syntaxError(err error) *diag.Error {
	msg := err.Error()
	line := 0
	if m := yamlLineRe.FindStringSubmatch(msg); m != nil {
		line, _ = strconv.Atoi(m[1])
	}
	return &diag.Error{
		Kind:    diag.KindYAMLSyntax,
		Message: strings.TrimPrefix(msg, "yaml: "),
		Line:    line,
	}
}

func convert(node *yaml.Node) (interface{}, *diag.Error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return convert(node.Content[0])

	case yaml.AliasNode:
		return convert(node.Alias)

	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := convertKey(node.Content[i])
			if err != nil {
				return nil, err
			}
			// yaml.Node decoding does not reject duplicate keys itself;
			// silently letting the last value win would hide a redefinition
			// from every downstream check.
			if obj.Has(key) {
				return nil, &diag.Error{
					Kind:    diag.KindYAMLSyntax,
					Message: fmt.Sprintf("mapping key %q already defined", key),
					Line:    node.Content[i].Line,
				}
			}
			value, err := convert(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		return obj, nil

	case yaml.SequenceNode:
		seq := make([]interface{}, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := convert(child)
			if err != nil {
				return nil, err
			}
			seq = append(seq, value)
		}
		return seq, nil

	case yaml.ScalarNode:
		return convertScalar(node), nil

	default:
		return nil, &diag.Error{
			Kind:    diag.KindYAMLSyntax,
			Message: fmt.Sprintf("unsupported node kind %d", node.Kind),
			Line:    node.Line,
		}
	}
}

// convertKey flattens a mapping key to a string. A sequence-valued key
// ([s1, s2]: ...) is collapsed into a comma-joined string; this makes a
// list key indistinguishable from a single ID containing a literal comma,
// which is a known limitation of the source format.
func convertKey(node *yaml.Node) (string, *diag.Error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.SequenceNode:
		parts := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return "", &diag.Error{
					Kind:    diag.KindYAMLSyntax,
					Message: "mapping key lists may only contain scalars",
					Line:    child.Line,
				}
			}
			parts = append(parts, child.Value)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", &diag.Error{
			Kind:    diag.KindYAMLSyntax,
			Message: "unsupported mapping key",
			Line:    node.Line,
		}
	}
}

func convertScalar(node *yaml.Node) interface{} {
	switch node.Tag {
	case "!!null":
		return nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err == nil {
			return b
		}
		return node.Value
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 0, 64)
		if err == nil {
			return n
		}
		return node.Value
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err == nil {
			return f
		}
		return node.Value
	default:
		return node.Value
	}
}
