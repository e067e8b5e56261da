// Package errors provides error handling for jcrbox.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for every failure mode of the library
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := registerType(def); err != nil {
//	    return errors.Wrap(err, "failed to register node type")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMalformedPath) {
//	    // handle syntax error
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for use across jcrbox.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap()/errors.Wrapf() to add context while
// preserving the kind.
var (
	// ErrMalformedPath indicates a path string that does not satisfy the
	// path grammar; the wrapping error reports the byte offset.
	ErrMalformedPath = New("malformed path")

	// ErrUnresolvedPrefix indicates a colon-delimited namespace prefix
	// that could not be resolved, either because no namespace registry was
	// supplied or because the registry has no binding for the prefix.
	ErrUnresolvedPrefix = New("unresolved namespace prefix")

	// ErrUnknownNamespace indicates a prefix or URI absent from a
	// namespace registry.
	ErrUnknownNamespace = New("unknown namespace")

	// ErrInvalidPropertyDefinition indicates conflicting declarative
	// property settings on a modeled literal.
	ErrInvalidPropertyDefinition = New("invalid property definition")

	// ErrConflictingDefaultPrimaryType indicates a child-node literal that
	// declares one default primary type and programmatically contributes a
	// different one.
	ErrConflictingDefaultPrimaryType = New("conflicting default primary types")

	// ErrSchemaInstantiation indicates a selector-name strategy that failed
	// or produced a mapping that is not total and unique within its group.
	ErrSchemaInstantiation = New("cannot instantiate schema")

	// ErrPathNotFound indicates no node exists at the requested path.
	ErrPathNotFound = New("path not found")

	// ErrNodeTypeExists indicates an attempt to re-register an existing
	// node type without meta updates enabled.
	ErrNodeTypeExists = New("node type already registered")
)

// IsPathNotFound checks if an error is or wraps ErrPathNotFound.
func IsPathNotFound(err error) bool {
	return err != nil && Is(err, ErrPathNotFound)
}

// IsMalformedPath checks if an error is or wraps ErrMalformedPath.
func IsMalformedPath(err error) bool {
	return err != nil && Is(err, ErrMalformedPath)
}
