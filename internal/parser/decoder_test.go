package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflab/proofdoc/internal/diag"
)

func TestDecodeEmptyDocument(t *testing.T) {
	for _, text := range []string{"", "   \n", "# just a comment\n# another\n"} {
		tree, err := Decode(text)
		require.Nil(t, err)
		assert.Nil(t, tree, "empty/comment-only input must decode to the empty document, not an error")
	}
}

func TestDecodeMapping(t *testing.T) {
	tree, err := Decode("statements:\n  s1: \"All men are mortal\"\n  s2: Socrates is a man\n")
	require.Nil(t, err)

	root, ok := tree.(*Object)
	require.True(t, ok)
	require.Equal(t, []string{"statements"}, root.Keys())

	stmts, _ := root.Get("statements")
	obj, ok := stmts.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"s1", "s2"}, obj.Keys(), "key order must follow the document")

	v, _ := obj.Get("s1")
	assert.Equal(t, "All men are mortal", v)
}

func TestDecodeScalars(t *testing.T) {
	tree, err := Decode("a: 3\nb: 1.5\nc: true\nd: null\ne: \"7\"\n")
	require.Nil(t, err)
	obj := tree.(*Object)

	a, _ := obj.Get("a")
	assert.Equal(t, int64(3), a)
	b, _ := obj.Get("b")
	assert.Equal(t, 1.5, b)
	c, _ := obj.Get("c")
	assert.Equal(t, true, c)
	d, _ := obj.Get("d")
	assert.Nil(t, d)
	e, _ := obj.Get("e")
	assert.Equal(t, "7", e, "quoted scalars stay strings")
}

func TestDecodeSequence(t *testing.T) {
	tree, err := Decode("ids:\n  - s1\n  - s2\n")
	require.Nil(t, err)
	obj := tree.(*Object)
	ids, _ := obj.Get("ids")
	assert.Equal(t, []interface{}{"s1", "s2"}, ids)
}

func TestSequenceKeyCollapsesToCommaJoined(t *testing.T) {
	tree, err := Decode("arguments:\n  - [s1, s2]: [s3]\n")
	require.Nil(t, err)

	obj := tree.(*Object)
	args, _ := obj.Get("arguments")
	seq, ok := args.([]interface{})
	require.True(t, ok)
	require.Len(t, seq, 1)

	entry, ok := seq[0].(*Object)
	require.True(t, ok)
	require.Equal(t, []string{"s1,s2"}, entry.Keys())

	conclusions, _ := entry.Get("s1,s2")
	assert.Equal(t, []interface{}{"s3"}, conclusions)
}

func TestNumericLookingKeysStayStrings(t *testing.T) {
	tree, err := Decode("nodes:\n  n1:\n    on: 2\n")
	require.Nil(t, err)
	obj := tree.(*Object)
	nodes, _ := obj.Get("nodes")
	n1, _ := nodes.(*Object).Get("n1")
	on, _ := n1.(*Object).Get("on")
	assert.Equal(t, int64(2), on)
}

func TestSyntaxErrorIsTerminalWithLine(t *testing.T) {
	tree, err := Decode("statements:\n  s1: \"unterminated\n")
	require.NotNil(t, err)
	assert.Nil(t, tree)
	assert.Equal(t, diag.KindYAMLSyntax, err.Kind)
	assert.Greater(t, err.Line, 0, "yaml parse errors carry a 1-based line")
}

func TestDuplicateMappingKeyRejected(t *testing.T) {
	tree, err := Decode("statements:\n  s1: \"p\"\n  s1: \"q\"\n")
	require.NotNil(t, err, "a redefined key must not silently last-win")
	assert.Nil(t, tree)
	assert.Equal(t, diag.KindYAMLSyntax, err.Kind)
	assert.Contains(t, err.Message, `"s1"`)
	assert.Contains(t, err.Message, "already defined")
	assert.Equal(t, 3, err.Line)
}

func TestSyntaxErrorBadIndentation(t *testing.T) {
	_, err := Decode("a:\n - b\n c: d\n")
	require.NotNil(t, err)
	assert.Equal(t, diag.KindYAMLSyntax, err.Kind)
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", 1)
	obj.Set("a", 2)
	obj.Set("z", 3) // overwrite keeps original slot
	assert.Equal(t, []string{"z", "a"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())
	v, ok := obj.Get("z")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.False(t, obj.Has("missing"))
}
