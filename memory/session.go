package memory

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/logger"
)

// Session is an in-memory repository session over a single node tree.
type Session struct {
	mu       sync.RWMutex
	root     *node
	registry *Registry
	types    *TypeManager
	saves    int
}

// NewSession creates a session with an empty root node.
func NewSession() *Session {
	s := &Session{
		registry: NewRegistry(),
		types:    NewTypeManager(),
	}
	s.root = &node{
		session:     s,
		identifier:  uuid.NewString(),
		primaryType: DefaultNodeType,
	}
	return s
}

// Registry returns the session's namespace registry for direct mutation.
func (s *Session) Registry() *Registry {
	return s.registry
}

// RootNode implements jcr.Session.
func (s *Session) RootNode() (jcr.Node, error) {
	return s.root, nil
}

// Node implements jcr.Session. The path is parsed against the session's
// registry, so both {uri}name and prefix:name element forms resolve.
func (s *Session) Node(path string) (jcr.Node, error) {
	p, err := jcr.ParsePath(s.registry, path)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.root
	for _, e := range p.Elements() {
		child, ok := n.child(e.String())
		if !ok {
			return nil, errors.Wrapf(errors.ErrPathNotFound, "no node at %s", path)
		}
		n = child
	}
	return n, nil
}

// Workspace implements jcr.Session.
func (s *Session) Workspace() jcr.Workspace {
	return workspace{session: s}
}

// Save implements jcr.Session. The tree mutates in place, so Save only
// counts; Saves exposes the count to tests.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (s *Session) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

type workspace struct {
	session *Session
}

func (w workspace) NodeTypeManager() jcr.NodeTypeManager {
	return w.session.types
}

func (w workspace) NamespaceRegistry() jcr.NamespaceRegistry {
	return w.session.registry
}

// node is one in-memory tree node. All access goes through the session lock.
type node struct {
	session     *Session
	parent      *node
	name        string
	identifier  string
	primaryType string
	properties  map[string][]jcr.Value
	children    []*node
	removed     bool
}

func (n *node) Identifier() string {
	return n.identifier
}

func (n *node) Name() string {
	return n.name
}

func (n *node) Path() string {
	n.session.mu.RLock()
	defer n.session.mu.RUnlock()
	return n.path()
}

func (n *node) path() string {
	if n.parent == nil {
		return "/"
	}
	var names []string
	for t := n; t.parent != nil; t = t.parent {
		names = append(names, t.name)
	}
	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(names[i])
	}
	return sb.String()
}

func (n *node) PrimaryNodeType() (string, error) {
	return n.primaryType, nil
}

func (n *node) IsNodeType(name string) (bool, error) {
	return n.session.types.isTypeOf(n.primaryType, name), nil
}

func (n *node) Property(name string) ([]jcr.Value, bool, error) {
	n.session.mu.RLock()
	defer n.session.mu.RUnlock()
	values, ok := n.properties[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]jcr.Value, len(values))
	copy(out, values)
	return out, true, nil
}

func (n *node) SetProperty(name string, values ...jcr.Value) error {
	n.session.mu.Lock()
	defer n.session.mu.Unlock()
	if n.removed {
		return errors.Wrapf(errors.ErrPathNotFound, "node %s was removed", n.name)
	}
	if len(values) == 0 {
		delete(n.properties, name)
		return nil
	}
	if n.properties == nil {
		n.properties = make(map[string][]jcr.Value)
	}
	stored := make([]jcr.Value, len(values))
	copy(stored, values)
	n.properties[name] = stored
	return nil
}

func (n *node) child(name string) (*node, bool) {
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

func (n *node) Child(name string) (jcr.Node, error) {
	n.session.mu.RLock()
	defer n.session.mu.RUnlock()
	c, ok := n.child(name)
	if !ok {
		return nil, errors.Wrapf(errors.ErrPathNotFound, "node %s has no child %q", n.path(), name)
	}
	return c, nil
}

func (n *node) HasChild(name string) (bool, error) {
	n.session.mu.RLock()
	defer n.session.mu.RUnlock()
	_, ok := n.child(name)
	return ok, nil
}

func (n *node) AddChild(name, primaryType string) (jcr.Node, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("child name required")
	}
	if primaryType == "" {
		primaryType = DefaultNodeType
	}
	n.session.mu.Lock()
	defer n.session.mu.Unlock()
	if n.removed {
		return nil, errors.Wrapf(errors.ErrPathNotFound, "node %s was removed", n.name)
	}
	if _, exists := n.child(name); exists {
		return nil, errors.Newf("node %s already has child %q", n.path(), name)
	}
	c := &node{
		session:     n.session,
		parent:      n,
		name:        name,
		identifier:  uuid.NewString(),
		primaryType: primaryType,
	}
	n.children = append(n.children, c)
	logger.Logger.Debugw("added node",
		logger.FieldPath, c.path(),
		logger.FieldNodeType, primaryType,
		logger.FieldIdentifier, c.identifier)
	return c, nil
}

func (n *node) Children() ([]jcr.Node, error) {
	n.session.mu.RLock()
	defer n.session.mu.RUnlock()
	out := make([]jcr.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out, nil
}

func (n *node) Remove() error {
	n.session.mu.Lock()
	defer n.session.mu.Unlock()
	if n.parent == nil {
		return errors.New("cannot remove the root node")
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.removed = true
	return nil
}
