// Package query provides typed query parameters, scope-derived storage paths
// for stored queries, and result/row adapters that address query selectors by
// modeled literal instead of by raw selector-name string.
package query

import (
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
)

// Parameter is a named, typed query parameter binding.
type Parameter struct {
	Name  string
	Value jcr.Value
}

// Param creates a parameter binding.
func Param(name string, value jcr.Value) Parameter {
	return Parameter{Name: name, Value: value}
}

// StoragePath derives the absolute repository path under which a query
// declared at scope is stored: one path element per scope, outermost first,
// each qualified with the scope's effective namespace. The walk stops at the
// first scope marked as a path root (inclusive), or at the outermost scope
// when none is marked.
func StoragePath(scope *literal.Scope) jcr.Path {
	var chain []*literal.Scope
	for s := scope; s != nil; s = s.Parent() {
		chain = append(chain, s)
		if s.IsPathRoot() {
			break
		}
	}

	b := jcr.NewPath().Absolute()
	for i := len(chain) - 1; i >= 0; i-- {
		s := chain[i]
		b = b.NextQualified(s.Namespace(), s.Name())
	}
	return b.Build()
}
