// Package memory is an in-process reference implementation of the jcr
// repository interfaces: a namespace registry, a node-type manager, and a
// mutable node tree behind one session lock. It backs the package tests and
// doubles as an executable description of the surface jcrbox consumes; it is
// not a storage engine.
package memory

import (
	"strings"
	"sync"

	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/jcr"
)

// DefaultNodeType is the primary type given to nodes created without one.
const DefaultNodeType = "nt:unstructured"

// Registry is an in-memory namespace registry with two-way lookup.
type Registry struct {
	mu       sync.RWMutex
	byPrefix map[string]string
	byURI    map[string]string
}

// NewRegistry creates a registry preloaded with the standard jcr and nt
// bindings.
func NewRegistry() *Registry {
	r := &Registry{
		byPrefix: make(map[string]string),
		byURI:    make(map[string]string),
	}
	r.Register("jcr", "http://www.jcp.org/jcr/1.0")
	r.Register("nt", "http://www.jcp.org/jcr/nt/1.0")
	return r
}

// Register binds prefix to uri, replacing any existing binding of either.
func (r *Registry) Register(prefix, uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byPrefix[prefix]; ok {
		delete(r.byURI, old)
	}
	if old, ok := r.byURI[uri]; ok {
		delete(r.byPrefix, old)
	}
	r.byPrefix[prefix] = uri
	r.byURI[uri] = prefix
}

// URI implements jcr.NamespaceRegistry.
func (r *Registry) URI(prefix string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	uri, ok := r.byPrefix[prefix]
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownNamespace, "prefix %q", prefix)
	}
	return uri, nil
}

// Prefix implements jcr.NamespaceRegistry.
func (r *Registry) Prefix(uri string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prefix, ok := r.byURI[uri]
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownNamespace, "uri %q", uri)
	}
	return prefix, nil
}

// TypeManager is an in-memory node-type manager.
type TypeManager struct {
	mu    sync.RWMutex
	types map[string]*jcr.NodeTypeDefinition
}

// NewTypeManager creates a type manager preloaded with a minimal
// nt:unstructured definition so untyped node creation works out of the box.
func NewTypeManager() *TypeManager {
	m := &TypeManager{types: make(map[string]*jcr.NodeTypeDefinition)}
	m.types[DefaultNodeType] = &jcr.NodeTypeDefinition{
		Name:      DefaultNodeType,
		Queryable: true,
	}
	return m
}

// HasNodeType implements jcr.NodeTypeManager.
func (m *TypeManager) HasNodeType(name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.types[name]
	return ok, nil
}

// NodeType implements jcr.NodeTypeManager.
func (m *TypeManager) NodeType(name string) (*jcr.NodeTypeDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	def, ok := m.types[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrPathNotFound, "node type %q", name)
	}
	return def, nil
}

// RegisterNodeType implements jcr.NodeTypeManager.
func (m *TypeManager) RegisterNodeType(def *jcr.NodeTypeDefinition, allowUpdate bool) (*jcr.NodeTypeDefinition, error) {
	if def == nil || strings.TrimSpace(def.Name) == "" {
		return nil, errors.New("node type definition requires a name")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.types[def.Name]; ok && !allowUpdate {
		return nil, errors.Wrapf(errors.ErrNodeTypeExists, "node type %q", def.Name)
	}
	m.types[def.Name] = def
	return def, nil
}

// isTypeOf reports whether typeName is candidate or one of candidate's
// transitive supertypes.
func (m *TypeManager) isTypeOf(candidate, typeName string) bool {
	if candidate == typeName {
		return true
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[string]bool{}
	stack := []string{candidate}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[name] {
			continue
		}
		seen[name] = true
		def, ok := m.types[name]
		if !ok {
			continue
		}
		for _, super := range def.SupertypeNames {
			if super == typeName {
				return true
			}
			stack = append(stack, super)
		}
	}
	return false
}
