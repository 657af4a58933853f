package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflab/proofdoc/internal/diag"
	"github.com/prooflab/proofdoc/internal/model"
	"github.com/prooflab/proofdoc/internal/parser"
	"github.com/prooflab/proofdoc/internal/validate"
)

func buildText(t *testing.T, text string) (*model.ProofDocument, *diag.List) {
	t.Helper()
	tree, syntaxErr := parser.Decode(text)
	require.Nil(t, syntaxErr)
	errs := diag.NewList()
	raw := validate.Document(tree, errs)
	doc := New(errs, 0).Build(raw)
	return doc, errs
}

func TestBuildStatements(t *testing.T) {
	doc, errs := buildText(t, `statements:
  s1: "All men are mortal"
  s2: "Socrates is a man"
  s3: "Socrates is mortal"
`)
	assert.True(t, errs.Empty())
	assert.Equal(t, []string{"s1", "s2", "s3"}, doc.StatementIDs())

	s1, ok := doc.Statement("s1")
	require.True(t, ok)
	assert.Equal(t, "All men are mortal", s1.Content)
}

func TestLegacyArgumentsResolveOrderedSets(t *testing.T) {
	doc, errs := buildText(t, `statements:
  s1: "p"
  s2: "q"
  s3: "r"
orderedSets:
  os1: [s1, s2]
  os2: [s3]
atomicArguments:
  a1:
    premises: os1
    conclusions: os2
    sideLabel: "MP"
`)
	require.True(t, errs.Empty(), "unexpected errors: %v", errs)

	a1, ok := doc.Argument("a1")
	require.True(t, ok)
	assert.Equal(t, []string{"s1", "s2"}, a1.PremiseIDs)
	assert.Equal(t, []string{"s3"}, a1.ConclusionIDs)
	assert.Equal(t, "MP", a1.SideLabel)
}

func TestLegacyArgumentMissingOrderedSet(t *testing.T) {
	_, errs := buildText(t, `statements:
  s1: "p"
atomicArguments:
  a1:
    premises: osX
`)
	missing := errs.ByKind(diag.KindMissingReference)
	require.Len(t, missing, 1)
	assert.Equal(t, "atomicArguments", missing[0].Section)
	assert.Equal(t, "a1", missing[0].Reference)
	assert.Contains(t, missing[0].Message, "osX")
}

func TestVerboseArgumentMissingStatementContinues(t *testing.T) {
	doc, errs := buildText(t, `statements:
  s1: "p"
  s2: "q"
arguments:
  a1:
    premises: [s1, sX, s2]
    conclusions: [s2]
`)
	missing := errs.ByKind(diag.KindMissingReference)
	require.Len(t, missing, 1)
	assert.Equal(t, "a1", missing[0].Reference)
	assert.Contains(t, missing[0].Message, "sX")

	// Resolution of the remaining IDs continues
	a1, ok := doc.Argument("a1")
	require.True(t, ok)
	assert.Equal(t, []string{"s1", "s2"}, a1.PremiseIDs)
}

func TestConciseArgumentAutoIDsAndKeyParsing(t *testing.T) {
	doc, errs := buildText(t, `statements:
  s1: "p"
  s2: "q"
  s3: "r"
arguments:
  - s1,s2: [s3]
  - s3: [s1]
  - "": [s2]
`)
	require.True(t, errs.Empty(), "unexpected errors: %v", errs)

	arg1, ok := doc.Argument("arg1")
	require.True(t, ok)
	assert.Equal(t, []string{"s1", "s2"}, arg1.PremiseIDs)
	assert.Equal(t, []string{"s3"}, arg1.ConclusionIDs)

	arg2, ok := doc.Argument("arg2")
	require.True(t, ok)
	assert.Equal(t, []string{"s3"}, arg2.PremiseIDs, "a bare key is a single premise")

	arg3, ok := doc.Argument("arg3")
	require.True(t, ok)
	assert.Empty(t, arg3.PremiseIDs, "an empty key means zero premises")
	assert.Equal(t, []string{"s2"}, arg3.ConclusionIDs)
}

func TestConciseArgumentExactlyOneKey(t *testing.T) {
	_, errs := buildText(t, `statements:
  s1: "p"
  s2: "q"
arguments:
  - s1: [s2]
    s2: [s1]
`)
	bad := errs.ByKind(diag.KindInvalidArgument)
	require.Len(t, bad, 1)
	assert.Equal(t, "arg1", bad[0].Reference)
	assert.Contains(t, bad[0].Message, "exactly one premise-conclusion mapping")
}

func TestConciseIdentifierShapeCheck(t *testing.T) {
	_, errs := buildText(t, `statements:
  s1: "p"
arguments:
  - test1: [s1]
`)
	bad := errs.ByKind(diag.KindInvalidArgument)
	require.Len(t, bad, 1)
	assert.Contains(t, bad[0].Message, "test1")
}

func TestVerboseFormSkipsIdentifierShapeCheck(t *testing.T) {
	// The strictness asymmetry is deliberate: only the concise form runs
	// the placeholder blocklist.
	doc, errs := buildText(t, `statements:
  test1: "p"
arguments:
  a1:
    premises: [test1]
`)
	assert.True(t, errs.Empty(), "unexpected errors: %v", errs)
	a1, _ := doc.Argument("a1")
	assert.Equal(t, []string{"test1"}, a1.PremiseIDs)
}

func TestBootstrapArgumentIsValid(t *testing.T) {
	doc, errs := buildText(t, `atomicArguments:
  a1:
arguments:
  a2: {}
  a3:
    premises: []
    conclusions: []
`)
	require.True(t, errs.Empty(), "bootstrap placeholders are valid: %v", errs)

	for _, id := range []string{"a1", "a2", "a3"} {
		arg, ok := doc.Argument(id)
		require.True(t, ok, id)
		assert.True(t, arg.IsBootstrap(), id)
	}
}

func TestDuplicateArgumentIDReported(t *testing.T) {
	_, errs := buildText(t, `statements:
  s1: "p"
atomicArguments:
  arg1:
arguments:
  - s1: [s1]
`)
	bad := errs.ByKind(diag.KindInvalidArgument)
	require.Len(t, bad, 1)
	assert.Contains(t, bad[0].Message, "duplicate")
}

func TestIsValidStatementID(t *testing.T) {
	valid := []string{"s1", "premise_2", "Socrates", "p"}
	invalid := []string{"", "1s", "s-1", "s 1", "test1", "TestCase", "example_a", "placeholder", "invalidX", "sample2", "demo"}

	for _, id := range valid {
		assert.True(t, isValidStatementID(id), id)
	}
	for _, id := range invalid {
		assert.False(t, isValidStatementID(id), id)
	}
}

func TestParsePremiseKey(t *testing.T) {
	assert.Nil(t, parsePremiseKey(""))
	assert.Equal(t, []string{"s1"}, parsePremiseKey("s1"))
	assert.Equal(t, []string{"s1", "s2"}, parsePremiseKey("s1,s2"))
	assert.Equal(t, []string{"s1", "s2"}, parsePremiseKey("s1, s2"))
	// Splitting is unconditional; a literal comma cannot name one premise
	assert.Equal(t, []string{"a", "b"}, parsePremiseKey("a,b"))
}
