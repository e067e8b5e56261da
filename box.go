// Package jcrbox wraps a repository session with a literal-addressed API:
// node types are registered from compiled literals, nodes are resolved and
// created by Path, and properties and children are accessed by modeled
// constant instead of by raw name string.
package jcrbox

import (
	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
	"github.com/mbenson/jcrbox/logger"
	"github.com/mbenson/jcrbox/schema"
)

// Jcr is the session wrapper and API entry point.
type Jcr struct {
	session          jcr.Session
	allowMetaUpdates bool
}

// Option configures a Jcr.
type Option func(*Jcr)

// AllowMetaUpdates permits updates to workspace metadata, i.e. re-registering
// node types whose definitions have changed.
func AllowMetaUpdates() Option {
	return func(j *Jcr) { j.allowMetaUpdates = true }
}

// New wraps a session.
func New(session jcr.Session, opts ...Option) (*Jcr, error) {
	if session == nil {
		return nil, errors.New("nil session")
	}
	j := &Jcr{session: session}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Session returns the wrapped session.
func (j *Jcr) Session() jcr.Session {
	return j.session
}

// Save persists pending session changes.
func (j *Jcr) Save() error {
	return j.session.Save()
}

// Path parses a path string against the workspace's namespace registry.
func (j *Jcr) Path(path string) (jcr.Path, error) {
	return jcr.ParsePath(j.session.Workspace().NamespaceRegistry(), path)
}

// GetOrRegisterNodeType returns the registered definition of the node-type
// literal, compiling and registering it when absent. When the type already
// exists the registered definition is returned untouched unless meta updates
// are allowed, in which case the freshly compiled definition replaces it.
// Configure callbacks may adjust the compiled definition before registration;
// the name always remains the literal's fullname.
func (j *Jcr) GetOrRegisterNodeType(node *literal.Node,
	configure ...func(*jcr.NodeTypeDefinition) error) (*jcr.NodeTypeDefinition, error) {

	mgr := j.session.Workspace().NodeTypeManager()
	name := node.Fullname()

	has, err := mgr.HasNodeType(name)
	if err != nil {
		return nil, err
	}
	if has && !j.allowMetaUpdates {
		return mgr.NodeType(name)
	}

	def := schema.NodeType(node)
	for _, cfg := range configure {
		if err := cfg(def); err != nil {
			return nil, errors.Wrapf(err, "configuring node type %s", name)
		}
	}
	def.Name = name

	registered, err := mgr.RegisterNodeType(def, j.allowMetaUpdates)
	if err != nil {
		return nil, err
	}
	logger.Logger.Debugw("registered node type", logger.FieldNodeType, name)
	return registered, nil
}

// AddProperty compiles a property literal into def.
func AddProperty(def *jcr.NodeTypeDefinition, p *literal.Property) error {
	pd, err := schema.Property(p)
	if err != nil {
		return err
	}
	def.Properties = append(def.Properties, pd)
	return nil
}

// AddChild compiles a child-node slot literal into def.
func AddChild(def *jcr.NodeTypeDefinition, c *literal.Child) error {
	cd, err := schema.ChildNode(c)
	if err != nil {
		return err
	}
	def.ChildNodes = append(def.ChildNodes, cd)
	return nil
}

// HasNode reports whether a node exists at the path.
func (j *Jcr) HasNode(path jcr.Path) (bool, error) {
	_, err := j.session.Node(path.Absolute().String())
	if err != nil {
		if errors.IsPathNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// HasNodeOfType reports whether a node exists at the path and is of the
// literal's node type, directly or through supertypes.
func (j *Jcr) HasNodeOfType(path jcr.Path, nodeType *literal.Node) (bool, error) {
	n, err := j.session.Node(path.Absolute().String())
	if err != nil {
		if errors.IsPathNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return n.IsNodeType(nodeType.Fullname())
}

// FindOrCreateNode returns the node at path below parent, creating missing
// steps along the way. Intermediate nodes are created with defaultType and
// the last with finalType; an empty type name defers to the repository's
// default. An empty path returns parent itself.
func (j *Jcr) FindOrCreateNode(parent jcr.Node, path jcr.Path, defaultType, finalType string) (jcr.Node, error) {
	if parent == nil {
		return nil, errors.New("nil parent node")
	}
	n := parent
	elements := path.Elements()
	for i, e := range elements {
		step := e.String()
		has, err := n.HasChild(step)
		if err != nil {
			return nil, err
		}
		if has {
			n, err = n.Child(step)
		} else {
			primaryType := defaultType
			if i == len(elements)-1 {
				primaryType = finalType
			}
			n, err = n.AddChild(step, primaryType)
			if err == nil {
				logger.Logger.Debugw("created node",
					logger.FieldPath, n.Path(), logger.FieldNodeType, primaryType)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

// WithNode wraps a node in the literal-addressed convenience API.
func (j *Jcr) WithNode(node jcr.Node) *WithNode {
	return &WithNode{jcr: j, target: node}
}

// WithRoot wraps the workspace root node.
func (j *Jcr) WithRoot() (*WithNode, error) {
	root, err := j.session.RootNode()
	if err != nil {
		return nil, err
	}
	return j.WithNode(root), nil
}

// WithNodeAt wraps the existing node at path, failing with
// errors.ErrPathNotFound when absent.
func (j *Jcr) WithNodeAt(path jcr.Path) (*WithNode, error) {
	n, err := j.session.Node(path.Absolute().String())
	if err != nil {
		return nil, err
	}
	return j.WithNode(n), nil
}

// EnsureNodeAt wraps the node at path, creating it and any missing ancestors.
// Intermediate nodes take defaultType, the node itself finalType; nil
// literals defer to the repository's default type.
func (j *Jcr) EnsureNodeAt(path jcr.Path, defaultType, finalType *literal.Node) (*WithNode, error) {
	root, err := j.session.RootNode()
	if err != nil {
		return nil, err
	}
	n, err := j.FindOrCreateNode(root, path.Relative(), nameOf(defaultType), nameOf(finalType))
	if err != nil {
		return nil, err
	}
	return j.WithNode(n), nil
}

// Remove deletes the node at path and its subtree.
func (j *Jcr) Remove(path jcr.Path) error {
	n, err := j.session.Node(path.Absolute().String())
	if err != nil {
		return err
	}
	return n.Remove()
}

func nameOf(nodeType *literal.Node) string {
	if nodeType == nil {
		return ""
	}
	return nodeType.Fullname()
}
