// Package literal models strongly-typed, enumerable repository constants:
// node types, properties, and child-node slots. Each literal carries a
// symbolic UPPER_SNAKE_CASE name and an explicit declaring Scope from which
// its namespace, and therefore its fully-qualified name, is derived.
package literal

import (
	"fmt"
	"strings"
	"sync"
)

// Scope is the explicit declaring context of a group of literals. Scopes
// nest through parent pointers; a scope that declares no namespace inherits
// the nearest one declared by an enclosing scope. Scopes are created once at
// package initialization and never mutated afterwards.
type Scope struct {
	name      string
	namespace string
	parent    *Scope
	schema    *Schema
	pathRoot  bool

	resolveNS     sync.Once
	resolvedNS    string
	resolveSchema sync.Once
	resolvedSch   *Schema
}

// ScopeOption configures a Scope at construction.
type ScopeOption func(*Scope)

// WithNamespace declares the scope's namespace URI.
func WithNamespace(uri string) ScopeOption {
	return func(s *Scope) { s.namespace = strings.TrimSpace(uri) }
}

// WithParent nests the scope inside an enclosing scope.
func WithParent(parent *Scope) ScopeOption {
	return func(s *Scope) { s.parent = parent }
}

// WithSchema tags the scope with a selector-name uniqueness group.
func WithSchema(schema *Schema) ScopeOption {
	return func(s *Scope) { s.schema = schema }
}

// AsPathRoot marks the scope as the upper bound for derived storage paths.
func AsPathRoot() ScopeOption {
	return func(s *Scope) { s.pathRoot = true }
}

// NewScope creates a declaring scope.
func NewScope(name string, opts ...ScopeOption) *Scope {
	s := &Scope{name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the scope's own name.
func (s *Scope) Name() string {
	return s.name
}

// Parent returns the enclosing scope, or nil.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// IsPathRoot reports whether the scope terminates derived storage paths.
func (s *Scope) IsPathRoot() bool {
	return s.pathRoot
}

// Namespace resolves the effective namespace of the scope: the first
// namespace declared walking outward through enclosing scopes, or "" when
// none declares one. The result is memoized for the process lifetime.
func (s *Scope) Namespace() string {
	s.resolveNS.Do(func() {
		for t := s; t != nil; t = t.parent {
			if t.namespace != "" {
				s.resolvedNS = t.namespace
				return
			}
		}
	})
	return s.resolvedNS
}

// Schema resolves the effective selector-name group of the scope: the first
// schema tag found walking outward through enclosing scopes, or nil.
// Memoized like Namespace.
func (s *Scope) Schema() *Schema {
	s.resolveSchema.Do(func() {
		for t := s; t != nil; t = t.parent {
			if t.schema != nil {
				s.resolvedSch = t.schema
				return
			}
		}
	})
	return s.resolvedSch
}

// Qualify qualifies basename with the scope's effective namespace, yielding
// {namespace}basename, or basename unchanged when no namespace applies.
func (s *Scope) Qualify(basename string) string {
	ns := s.Namespace()
	if ns == "" {
		return basename
	}
	return fmt.Sprintf("{%s}%s", ns, basename)
}
