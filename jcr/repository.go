package jcr

// The interfaces below describe the repository surface jcrbox consumes.
// The library never talks to a live repository itself; it produces Paths and
// type definitions for, and reads nodes and rows from, whatever
// implementation the caller supplies. The memory package provides an
// in-process reference implementation.

// Session is a live connection to a repository workspace.
type Session interface {
	// RootNode returns the workspace root node.
	RootNode() (Node, error)

	// Node returns the node at the given absolute path string, failing
	// with errors.ErrPathNotFound when absent.
	Node(path string) (Node, error)

	// Workspace exposes workspace-level managers.
	Workspace() Workspace

	// Save persists pending changes.
	Save() error
}

// Workspace exposes the managers of a session's workspace.
type Workspace interface {
	NodeTypeManager() NodeTypeManager
	NamespaceRegistry() NamespaceRegistry
}

// NodeTypeManager registers and looks up compiled node types.
type NodeTypeManager interface {
	HasNodeType(name string) (bool, error)

	// NodeType returns the registered definition, failing with
	// errors.ErrPathNotFound when the type is not registered.
	NodeType(name string) (*NodeTypeDefinition, error)

	// RegisterNodeType registers the definition. Re-registering an
	// existing name fails with errors.ErrNodeTypeExists unless
	// allowUpdate is set.
	RegisterNodeType(def *NodeTypeDefinition, allowUpdate bool) (*NodeTypeDefinition, error)
}

// Node is a repository node.
type Node interface {
	// Identifier returns the node's stable unique identifier.
	Identifier() string

	// Name returns the node's (possibly qualified) name.
	Name() string

	// Path returns the node's absolute path string.
	Path() string

	// PrimaryNodeType returns the name of the node's primary type.
	PrimaryNodeType() (string, error)

	// IsNodeType reports whether the node is of the named type, directly
	// or through supertype/mixin relationships.
	IsNodeType(name string) (bool, error)

	// Property returns the values of the named property; ok is false when
	// the property is absent.
	Property(name string) (values []Value, ok bool, err error)

	// SetProperty sets the named property. An empty value list removes
	// the property.
	SetProperty(name string, values ...Value) error

	// Child returns the named child node, failing with
	// errors.ErrPathNotFound when absent.
	Child(name string) (Node, error)

	// HasChild reports whether the named child exists.
	HasChild(name string) (bool, error)

	// AddChild creates and returns a child node of the given primary
	// type.
	AddChild(name, primaryType string) (Node, error)

	// Children returns the child nodes in insertion order.
	Children() ([]Node, error)

	// Remove deletes this node and its subtree.
	Remove() error
}

// Row is one result row of an executed query. Selector-name arguments refer
// to the names assigned by the schema selector table.
type Row interface {
	Value(columnName string) (Value, bool, error)
	Node(selectorName string) (Node, error)
	Path(selectorName string) (string, error)
	Score(selectorName string) (float64, error)
}

// QueryResult is the result of an executed query.
type QueryResult interface {
	Rows() ([]Row, error)
}
