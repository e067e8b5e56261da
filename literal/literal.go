package literal

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/mbenson/jcrbox/jcr"
)

// Literal is a modeled domain constant representing a repository node type,
// property, or child-node slot.
type Literal interface {
	// Name returns the symbolic (conventionally UPPER_SNAKE_CASE) name.
	Name() string

	// Scope returns the declaring scope.
	Scope() *Scope

	// Basename returns the lowerCamelCase repository name derived from
	// the symbolic name.
	Basename() string

	// Fullname returns the namespace-qualified form {namespace}basename,
	// or the bare basename when the declaring scope has no namespace.
	// The form matches a path Element's qualified string, so literal
	// identities and Elements interconvert.
	Fullname() string
}

// Basename transforms an underscore-delimited symbolic name to lower camel
// case: split on '_', capitalize every token but the first, concatenate.
// Deterministic and total.
func Basename(symbol string) string {
	var sb strings.Builder
	first := true
	for _, token := range strings.Split(symbol, "_") {
		if token == "" {
			continue
		}
		lower := strings.ToLower(token)
		if first {
			sb.WriteString(lower)
			first = false
			continue
		}
		r, size := utf8.DecodeRuneInString(lower)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(lower[size:])
	}
	return sb.String()
}

// ident is the common identity of all built-in literal kinds.
type ident struct {
	name     string
	scope    *Scope
	fullname func() string
}

func newIdent(name string, scope *Scope) ident {
	id := ident{name: name, scope: scope}
	id.fullname = sync.OnceValue(func() string {
		return scope.Qualify(Basename(name))
	})
	return id
}

func (id ident) Name() string {
	return id.name
}

func (id ident) Scope() *Scope {
	return id.scope
}

func (id ident) Basename() string {
	return Basename(id.name)
}

func (id ident) Fullname() string {
	return id.fullname()
}

// Element returns the literal's identity as a path element.
func Element(l Literal) jcr.Element {
	return jcr.Element{NS: l.Scope().Namespace(), Name: l.Basename()}
}
