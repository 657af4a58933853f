package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/parser"
)

func validateText(t *testing.T, text string) (*RawDocument, *diag.List) {
	t.Helper()
	tree, syntaxErr := parser.Decode(text)
	require.Nil(t, syntaxErr)
	errs := diag.NewList()
	raw := Document(tree, errs)
	return raw, errs
}

func TestNilTreeIsEmptyDocument(t *testing.T) {
	errs := diag.NewList()
	raw := Document(nil, errs)
	assert.True(t, errs.Empty())
	assert.Empty(t, raw.Statements)
	assert.Empty(t, raw.Trees)
}

func TestRootMustBeMapping(t *testing.T) {
	raw, errs := validateText(t, "- a\n- b\n")
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, diag.KindInvalidStructure, errs.All()[0].Kind)
	assert.Empty(t, raw.Statements)
}

func TestNullSectionsAreEmpty(t *testing.T) {
	_, errs := validateText(t, "statements:\norderedSets:\ntrees: null\n")
	assert.True(t, errs.Empty(), "null/absent sections are valid and empty")
}

func TestStatementsShape(t *testing.T) {
	raw, errs := validateText(t, "statements:\n  s1: \"fine\"\n  s2: 42\n  s3: \"\"\n")

	require.Len(t, raw.Statements, 1)
	assert.Equal(t, "s1", raw.Statements[0].ID)
	assert.ElementsMatch(t, []string{"s2", "s3"}, raw.FailedStatementIDs)

	bad := errs.ByKind(diag.KindInvalidStatement)
	require.Len(t, bad, 2)
	assert.Equal(t, "statements", bad[0].Section)
}

func TestOrderedSetsShape(t *testing.T) {
	raw, errs := validateText(t, "orderedSets:\n  os1: [s1, s2]\n  os2: not-a-list\n  os3: [s1, 42]\n")

	require.Len(t, raw.OrderedSets, 1)
	assert.Equal(t, []string{"s1", "s2"}, raw.OrderedSets[0].StatementIDs)

	bad := errs.ByKind(diag.KindInvalidOrderedSet)
	require.Len(t, bad, 2)
	assert.Equal(t, "os2", bad[0].Reference)
	assert.Equal(t, "os3", bad[1].Reference)
}

func TestAtomicArgumentsShape(t *testing.T) {
	raw, errs := validateText(t, `atomicArguments:
  a1:
    premises: os1
    conclusions: os2
    sideLabel: "MP"
  a2:
  a3:
    premises: [not, a, string]
`)

	require.Len(t, raw.AtomicArguments, 2)
	assert.Equal(t, "os1", raw.AtomicArguments[0].PremiseSet)
	assert.Equal(t, "MP", raw.AtomicArguments[0].SideLabel)
	assert.Equal(t, "a2", raw.AtomicArguments[1].ID, "a null entry is a bootstrap placeholder")
	assert.Empty(t, raw.AtomicArguments[1].PremiseSet)

	bad := errs.ByKind(diag.KindInvalidAtomicArgument)
	require.Len(t, bad, 1)
	assert.Equal(t, "a3", bad[0].Reference)
}

func TestVerboseArgumentsShape(t *testing.T) {
	raw, errs := validateText(t, `arguments:
  a1:
    premises: [s1, s2]
    conclusions: [s3]
  a2:
    premises: os1
`)

	require.Len(t, raw.Arguments, 1)
	assert.Equal(t, []string{"s1", "s2"}, raw.Arguments[0].PremiseIDs)

	bad := errs.ByKind(diag.KindInvalidArgument)
	require.Len(t, bad, 1)
	assert.Equal(t, "a2", bad[0].Reference)
	assert.Contains(t, bad[0].Message, "list")
}

func TestConciseArgumentsPassThrough(t *testing.T) {
	raw, errs := validateText(t, "arguments:\n  - s1,s2: [s3]\n  - just-a-string\n")

	require.Len(t, raw.ConciseArguments, 1)
	assert.Equal(t, 0, raw.ConciseArguments[0].Index)

	bad := errs.ByKind(diag.KindInvalidArgument)
	require.Len(t, bad, 1)
	assert.Equal(t, "arg2", bad[0].Reference, "auto IDs count every sequence slot")
}

func TestArgumentsSectionWrongKind(t *testing.T) {
	_, errs := validateText(t, "arguments: 17\n")
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, diag.KindInvalidStructure, errs.All()[0].Kind)
}

func TestTreesShape(t *testing.T) {
	raw, errs := validateText(t, `trees:
  t1:
    offset: {x: 100, y: 50}
    nodes:
      n1: {arg: a1}
  t2:
    offset: {x: oops, y: 1}
  t3:
  t4:
    nodes:
      n1: not-a-spec
`)

	ids := map[string]bool{}
	for _, rt := range raw.Trees {
		ids[rt.ID] = true
	}
	assert.True(t, ids["t1"])
	assert.True(t, ids["t3"], "a null tree entry is an empty tree")
	assert.False(t, ids["t2"], "a bad offset rejects the tree entry")

	require.Len(t, raw.Trees[0].Nodes, 1)
	require.NotNil(t, raw.Trees[0].Offset)
	assert.Equal(t, 100.0, raw.Trees[0].Offset.X)

	bad := errs.ByKind(diag.KindInvalidTreeStructure)
	require.Len(t, bad, 2)
	assert.Equal(t, "t2", bad[0].Reference)
	assert.Contains(t, bad[1].Message, "n1")
}

func TestErrorsAccumulateAcrossSections(t *testing.T) {
	_, errs := validateText(t, `statements:
  s1: 42
orderedSets:
  os1: nope
trees:
  t1:
    offset: [1, 2]
`)
	assert.GreaterOrEqual(t, errs.Len(), 3, "one section's errors must not suppress another's")
	assert.True(t, errs.HasKind(diag.KindInvalidStatement))
	assert.True(t, errs.HasKind(diag.KindInvalidOrderedSet))
	assert.True(t, errs.HasKind(diag.KindInvalidTreeStructure))
}
