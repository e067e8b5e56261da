package literal

import "github.com/mbenson/jcrbox/jcr"

// ChildNodeDefinition is the optional declarative record of a child-node
// slot literal.
type ChildNodeDefinition struct {
	AutoCreated bool
	Mandatory   bool
	Protected   bool

	OnParentVersion jcr.OnParentVersion

	// RequiredPrimaryTypeNames declares required primary type names;
	// merged ahead of any programmatically contributed types.
	RequiredPrimaryTypeNames []string

	// DefaultPrimaryTypeName declares the default primary type. A
	// non-blank value is mutually incompatible with a differing
	// programmatic DefaultPrimaryType.
	DefaultPrimaryTypeName string

	SameNameSiblings bool
}

// RequiredPrimaryTypesProvider is the capability interface through which a
// child literal contributes required primary types programmatically.
type RequiredPrimaryTypesProvider interface {
	RequiredPrimaryTypes() []*Node
}

// DefaultPrimaryTypeProvider is the capability interface through which a
// child literal contributes its default primary type programmatically.
type DefaultPrimaryTypeProvider interface {
	DefaultPrimaryType() *Node
}

// Child is a modeled child-node slot literal.
type Child struct {
	ident
	def           *ChildNodeDefinition
	requiredTypes []*Node
	defaultType   *Node
}

// ChildOption configures a Child at construction.
type ChildOption func(*Child)

// ChildDef attaches the declarative definition record.
func ChildDef(def *ChildNodeDefinition) ChildOption {
	return func(c *Child) { c.def = def }
}

// RequiredPrimaryTypes contributes required primary types programmatically;
// they are merged after and deduplicated against the declared names.
func RequiredPrimaryTypes(nodes ...*Node) ChildOption {
	return func(c *Child) { c.requiredTypes = nodes }
}

// DefaultPrimaryType contributes the default primary type programmatically.
func DefaultPrimaryType(node *Node) ChildOption {
	return func(c *Child) { c.defaultType = node }
}

// NewChild creates a child-node slot literal under scope.
func NewChild(scope *Scope, name string, opts ...ChildOption) *Child {
	c := &Child{ident: newIdent(name, scope)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Definition returns the declarative record, or nil.
func (c *Child) Definition() *ChildNodeDefinition {
	return c.def
}

// RequiredPrimaryTypes implements RequiredPrimaryTypesProvider; empty unless
// configured.
func (c *Child) RequiredPrimaryTypes() []*Node {
	return c.requiredTypes
}

// DefaultPrimaryType implements DefaultPrimaryTypeProvider; nil unless
// configured.
func (c *Child) DefaultPrimaryType() *Node {
	return c.defaultType
}
