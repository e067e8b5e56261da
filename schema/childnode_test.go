package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
)

func TestChildNodeDefaults(t *testing.T) {
	scope := literal.NewScope("test", literal.WithNamespace("http://x"))
	c := literal.NewChild(scope, "LINE_ITEMS")

	def, err := ChildNode(c)
	require.NoError(t, err)
	assert.Equal(t, "{http://x}lineItems", def.Name)
	assert.False(t, def.AutoCreated)
	assert.False(t, def.SameNameSiblings)
	assert.Empty(t, def.RequiredPrimaryTypeNames)
	assert.Empty(t, def.DefaultPrimaryTypeName)
}

func TestChildNodeRecordApplied(t *testing.T) {
	scope := literal.NewScope("test", literal.WithNamespace("http://x"))
	c := literal.NewChild(scope, "LINE_ITEMS", literal.ChildDef(&literal.ChildNodeDefinition{
		AutoCreated:      true,
		Mandatory:        true,
		Protected:        true,
		SameNameSiblings: true,
		OnParentVersion:  jcr.OnParentVersionVersion,
	}))

	def, err := ChildNode(c)
	require.NoError(t, err)
	assert.True(t, def.AutoCreated)
	assert.True(t, def.Mandatory)
	assert.True(t, def.Protected)
	assert.True(t, def.SameNameSiblings)
	assert.Equal(t, jcr.OnParentVersionVersion, def.OnParentVersion)
}

func TestChildNodeRequiredTypeMerge(t *testing.T) {
	scope := literal.NewScope("test", literal.WithNamespace("http://x"))
	set := literal.NewNodeSet(scope)
	lineItem := set.Define("LINE_ITEM")

	c := literal.NewChild(scope, "LINE_ITEMS",
		literal.ChildDef(&literal.ChildNodeDefinition{
			RequiredPrimaryTypeNames: []string{"nt:unstructured"},
		}),
		literal.RequiredPrimaryTypes(lineItem))

	def, err := ChildNode(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"nt:unstructured", "{http://x}lineItem"}, def.RequiredPrimaryTypeNames,
		"declared names first, contributed after, deduped")
	assert.Empty(t, def.DefaultPrimaryTypeName, "two required types leave the default unset")
}

func TestChildNodeSingleRequiredTypeFallback(t *testing.T) {
	scope := literal.NewScope("test", literal.WithNamespace("http://x"))
	set := literal.NewNodeSet(scope)
	lineItem := set.Define("LINE_ITEM")

	c := literal.NewChild(scope, "LINE_ITEMS", literal.RequiredPrimaryTypes(lineItem))

	def, err := ChildNode(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"{http://x}lineItem"}, def.RequiredPrimaryTypeNames)
	assert.Equal(t, "{http://x}lineItem", def.DefaultPrimaryTypeName,
		"exactly one required type implies the default")
}

func TestChildNodeDefaultTypeResolution(t *testing.T) {
	scope := literal.NewScope("test", literal.WithNamespace("http://x"))
	set := literal.NewNodeSet(scope)
	lineItem := set.Define("LINE_ITEM")

	t.Run("declared only", func(t *testing.T) {
		c := literal.NewChild(scope, "SLOT", literal.ChildDef(&literal.ChildNodeDefinition{
			DefaultPrimaryTypeName: "nt:unstructured",
		}))
		def, err := ChildNode(c)
		require.NoError(t, err)
		assert.Equal(t, "nt:unstructured", def.DefaultPrimaryTypeName)
	})

	t.Run("provided only", func(t *testing.T) {
		c := literal.NewChild(scope, "SLOT", literal.DefaultPrimaryType(lineItem))
		def, err := ChildNode(c)
		require.NoError(t, err)
		assert.Equal(t, "{http://x}lineItem", def.DefaultPrimaryTypeName)
	})

	t.Run("declared and provided agree", func(t *testing.T) {
		c := literal.NewChild(scope, "SLOT",
			literal.ChildDef(&literal.ChildNodeDefinition{
				DefaultPrimaryTypeName: "{http://x}lineItem",
			}),
			literal.DefaultPrimaryType(lineItem))
		def, err := ChildNode(c)
		require.NoError(t, err)
		assert.Equal(t, "{http://x}lineItem", def.DefaultPrimaryTypeName)
	})

	t.Run("declared and provided conflict", func(t *testing.T) {
		c := literal.NewChild(scope, "SLOT",
			literal.ChildDef(&literal.ChildNodeDefinition{
				DefaultPrimaryTypeName: "nt:unstructured",
			}),
			literal.DefaultPrimaryType(lineItem))
		_, err := ChildNode(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrConflictingDefaultPrimaryType))
		assert.Contains(t, err.Error(), "nt:unstructured")
		assert.Contains(t, err.Error(), "{http://x}lineItem")
	})

	t.Run("no default and no required types stays unset", func(t *testing.T) {
		c := literal.NewChild(scope, "SLOT")
		def, err := ChildNode(c)
		require.NoError(t, err)
		assert.Empty(t, def.DefaultPrimaryTypeName)
	})
}
