// Package jcr holds the core value model of jcrbox: hierarchical paths,
// property types, typed values, compiled type-definition records, and the
// abstract repository interfaces the library produces for and consumes from.
package jcr

// NamespaceRegistry is the read-only prefix<->URI binding consulted when
// parsing and rendering paths. Implementations return an error wrapping
// errors.ErrUnknownNamespace for absent bindings.
type NamespaceRegistry interface {
	// URI resolves a prefix to its namespace URI.
	URI(prefix string) (string, error)

	// Prefix resolves a namespace URI to its registered prefix.
	Prefix(uri string) (string, error)
}
