package jcrbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
	"github.com/mbenson/jcrbox/memory"
)

const testNS = "http://example.com/billing"

func newTestJcr(t *testing.T, opts ...Option) (*Jcr, *memory.Session) {
	t.Helper()
	session := memory.NewSession()
	session.Registry().Register("bil", testNS)
	j, err := New(session, opts...)
	require.NoError(t, err)
	return j, session
}

func TestNewRequiresSession(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestGetOrRegisterNodeType(t *testing.T) {
	j, _ := newTestJcr(t)

	scope := literal.NewScope("billing", literal.WithNamespace(testNS))
	set := literal.NewNodeSet(scope)
	invoice := set.Define("INVOICE")
	orderDate := literal.NewProperty(scope, "ORDER_DATE", &literal.PropertyDefinition{
		RequiredType: jcr.PropertyTypeDate,
	})

	def, err := j.GetOrRegisterNodeType(invoice, func(d *jcr.NodeTypeDefinition) error {
		return AddProperty(d, orderDate)
	})
	require.NoError(t, err)
	assert.Equal(t, "{http://example.com/billing}invoice", def.Name)
	require.Len(t, def.Properties, 1)
	assert.Equal(t, "{http://example.com/billing}orderDate", def.Properties[0].Name)

	// Second call returns the registered definition untouched.
	again, err := j.GetOrRegisterNodeType(invoice, func(d *jcr.NodeTypeDefinition) error {
		t.Fatal("configure must not run when the type exists")
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, def, again)
}

func TestGetOrRegisterNodeTypeMetaUpdates(t *testing.T) {
	j, _ := newTestJcr(t, AllowMetaUpdates())

	scope := literal.NewScope("billing", literal.WithNamespace(testNS))
	set := literal.NewNodeSet(scope)
	invoice := set.Define("INVOICE")

	first, err := j.GetOrRegisterNodeType(invoice)
	require.NoError(t, err)

	second, err := j.GetOrRegisterNodeType(invoice)
	require.NoError(t, err)
	assert.NotSame(t, first, second, "meta updates recompile and re-register")
}

func TestAddChildConfigure(t *testing.T) {
	j, _ := newTestJcr(t)

	scope := literal.NewScope("billing", literal.WithNamespace(testNS))
	set := literal.NewNodeSet(scope)
	invoice := set.Define("INVOICE")
	lineItem := set.Define("LINE_ITEM")
	lineItems := literal.NewChild(scope, "LINE_ITEMS", literal.RequiredPrimaryTypes(lineItem))

	def, err := j.GetOrRegisterNodeType(invoice, func(d *jcr.NodeTypeDefinition) error {
		return AddChild(d, lineItems)
	})
	require.NoError(t, err)
	require.Len(t, def.ChildNodes, 1)
	assert.Equal(t, "{http://example.com/billing}lineItem", def.ChildNodes[0].DefaultPrimaryTypeName)
}

func TestHasNode(t *testing.T) {
	j, session := newTestJcr(t)

	root, err := session.RootNode()
	require.NoError(t, err)
	_, err = root.AddChild("a", "")
	require.NoError(t, err)

	p, err := j.Path("/a")
	require.NoError(t, err)
	has, err := j.HasNode(p)
	require.NoError(t, err)
	assert.True(t, has)

	missing, err := j.Path("/missing")
	require.NoError(t, err)
	has, err = j.HasNode(missing)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestHasNodeOfType(t *testing.T) {
	j, session := newTestJcr(t)

	scope := literal.NewScope("billing", literal.WithNamespace(testNS))
	set := literal.NewNodeSet(scope)
	invoice := set.Define("INVOICE")
	_, err := j.GetOrRegisterNodeType(invoice)
	require.NoError(t, err)

	root, err := session.RootNode()
	require.NoError(t, err)
	_, err = root.AddChild("inv", invoice.Fullname())
	require.NoError(t, err)

	p, err := j.Path("/inv")
	require.NoError(t, err)
	is, err := j.HasNodeOfType(p, invoice)
	require.NoError(t, err)
	assert.True(t, is)

	other := set.Define("OTHER")
	is, err = j.HasNodeOfType(p, other)
	require.NoError(t, err)
	assert.False(t, is)
}

func TestFindOrCreateNode(t *testing.T) {
	j, session := newTestJcr(t)

	scope := literal.NewScope("billing", literal.WithNamespace(testNS))
	set := literal.NewNodeSet(scope)
	folder := set.Define("FOLDER")
	invoice := set.Define("INVOICE")
	for _, n := range []*literal.Node{folder, invoice} {
		_, err := j.GetOrRegisterNodeType(n)
		require.NoError(t, err)
	}

	p, err := j.Path("/bil:folder/bil:invoices/bil:january")
	require.NoError(t, err)

	w, err := j.EnsureNodeAt(p, folder, invoice)
	require.NoError(t, err)
	pt, err := w.Target().PrimaryNodeType()
	require.NoError(t, err)
	assert.Equal(t, invoice.Fullname(), pt, "final step takes the final type")

	mid, err := session.Node("/bil:folder/bil:invoices")
	require.NoError(t, err)
	pt, err = mid.PrimaryNodeType()
	require.NoError(t, err)
	assert.Equal(t, folder.Fullname(), pt, "intermediate steps take the default type")

	// Idempotent: a second walk reaches the same node.
	again, err := j.EnsureNodeAt(p, folder, invoice)
	require.NoError(t, err)
	assert.Equal(t, w.Target().Identifier(), again.Target().Identifier())
}

func TestRemove(t *testing.T) {
	j, session := newTestJcr(t)
	root, err := session.RootNode()
	require.NoError(t, err)
	_, err = root.AddChild("gone", "")
	require.NoError(t, err)

	p, err := j.Path("/gone")
	require.NoError(t, err)
	require.NoError(t, j.Remove(p))

	has, err := j.HasNode(p)
	require.NoError(t, err)
	assert.False(t, has)

	assert.True(t, errors.Is(j.Remove(p), errors.ErrPathNotFound))
}

func TestPathUnresolvedPrefix(t *testing.T) {
	j, _ := newTestJcr(t)
	_, err := j.Path("/nope:thing")
	assert.True(t, errors.Is(err, errors.ErrUnresolvedPrefix))
}
