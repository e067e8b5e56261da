package literal

// NodeDefinition is the optional declarative record of a node-type literal.
// The zero value declares a concrete, queryable primary type with no
// supertypes.
type NodeDefinition struct {
	Abstract            bool
	Mixin               bool
	OrderableChildNodes bool
	PrimaryItemName     string

	// NonQueryable is inverted so the zero record keeps the repository
	// default of queryable node types.
	NonQueryable bool

	// Supertypes declares supertype names; merged ahead of any
	// programmatically contributed supertypes.
	Supertypes []string
}

// SupertypeProvider is the capability interface through which a node-type
// literal contributes supertypes programmatically, in addition to any
// declared in its NodeDefinition.
type SupertypeProvider interface {
	Supertypes() []*Node
}

// Node is a modeled node-type literal. Nodes are declared through a NodeSet
// and are usable as query sources.
type Node struct {
	ident
	set        *NodeSet
	def        *NodeDefinition
	supertypes []*Node
}

// NodeOption configures a Node at construction.
type NodeOption func(*Node)

// NodeDef attaches the declarative definition record.
func NodeDef(def *NodeDefinition) NodeOption {
	return func(n *Node) { n.def = def }
}

// Supertypes contributes supertypes programmatically; they are merged after
// and deduplicated against the declared ones.
func Supertypes(supertypes ...*Node) NodeOption {
	return func(n *Node) { n.supertypes = supertypes }
}

// Definition returns the declarative record, or nil.
func (n *Node) Definition() *NodeDefinition {
	return n.def
}

// Supertypes implements SupertypeProvider; empty unless configured.
func (n *Node) Supertypes() []*Node {
	return n.supertypes
}

// SourceSet returns the declaring enumeration, implementing Source.
func (n *Node) SourceSet() *NodeSet {
	return n.set
}

// NodeSet is an enumeration of node-type literals sharing a declaring
// scope. Constants keep their declaration order; that order is the stable
// iteration order used by selector-name assignment.
type NodeSet struct {
	scope *Scope
	nodes []*Node
}

// NewNodeSet creates an enumeration of node-type literals under scope.
func NewNodeSet(scope *Scope) *NodeSet {
	return &NodeSet{scope: scope}
}

// Define appends a node-type literal to the set and returns it.
func (s *NodeSet) Define(name string, opts ...NodeOption) *Node {
	n := &Node{ident: newIdent(name, s.scope), set: s}
	for _, opt := range opts {
		opt(n)
	}
	s.nodes = append(s.nodes, n)
	return n
}

// Scope returns the declaring scope of the set.
func (s *NodeSet) Scope() *Scope {
	return s.scope
}

// Nodes returns the set's literals in declaration order.
func (s *NodeSet) Nodes() []*Node {
	nodes := make([]*Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}
