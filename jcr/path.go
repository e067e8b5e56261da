package jcr

import (
	"fmt"
	"strings"

	"github.com/mbenson/jcrbox/errors"
)

// Element is a single path element: a local name optionally qualified by a
// namespace URI. An empty NS means the name is unqualified.
type Element struct {
	NS   string
	Name string
}

// String renders the element in registry-independent form: {uri}name for
// qualified elements, the bare name otherwise.
func (e Element) String() string {
	if e.NS == "" {
		return e.Name
	}
	return fmt.Sprintf("{%s}%s", e.NS, e.Name)
}

// Render renders the element as prefix:name using the supplied registry,
// falling back to bracket form when the URI has no registered prefix.
func (e Element) Render(reg NamespaceRegistry) (string, error) {
	if e.NS == "" || reg == nil {
		return e.String(), nil
	}
	prefix, err := reg.Prefix(e.NS)
	if err != nil {
		if errors.Is(err, errors.ErrUnknownNamespace) {
			return e.String(), nil
		}
		return "", err
	}
	return fmt.Sprintf("%s:%s", prefix, e.Name), nil
}

// Path is an immutable hierarchical repository path: an ordered sequence of
// Elements plus an absolute flag. The zero value is the empty relative path.
// Derived paths share the unaffected portion of the element list; elements
// are never mutated after construction.
type Path struct {
	absolute bool
	elements []Element
}

// PathBuilder assembles a Path element by element.
type PathBuilder struct {
	absolute bool
	elements []Element
}

// NewPath obtains a fresh PathBuilder.
func NewPath() *PathBuilder {
	return &PathBuilder{}
}

// Absolute marks the built Path as absolute.
func (b *PathBuilder) Absolute() *PathBuilder {
	return b.SetAbsolute(true)
}

// SetAbsolute specifies whether the built Path is absolute.
func (b *PathBuilder) SetAbsolute(absolute bool) *PathBuilder {
	b.absolute = absolute
	return b
}

// Next appends an unqualified path element.
func (b *PathBuilder) Next(name string) *PathBuilder {
	return b.NextQualified("", name)
}

// NextQualified appends a namespace-qualified path element.
func (b *PathBuilder) NextQualified(uri, name string) *PathBuilder {
	b.elements = append(b.elements, Element{NS: strings.TrimSpace(uri), Name: name})
	return b
}

// Build returns the assembled Path. The builder remains usable; the built
// Path owns its own copy of the element list.
func (b *PathBuilder) Build() Path {
	elements := make([]Element, len(b.elements))
	copy(elements, b.elements)
	return Path{absolute: b.absolute, elements: elements}
}

// PathError reports a path syntax error at a byte offset.
type PathError struct {
	Path   string
	Offset int
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s at offset %d of %q", e.Reason, e.Offset, e.Path)
}

func (e *PathError) Unwrap() error {
	return errors.ErrMalformedPath
}

type pathParser struct {
	reg  NamespaceRegistry
	path string
	pos  int
}

// ParsePath parses a path string. A registry is required only when the path
// contains colon-delimited namespace prefixes; parsing fails with
// errors.ErrUnresolvedPrefix otherwise. Syntax errors fail with a *PathError
// wrapping errors.ErrMalformedPath; no partial Path is ever returned.
func ParsePath(reg NamespaceRegistry, path string) (Path, error) {
	b := NewPath()
	if err := (&pathParser{reg: reg, path: path}).parse(b); err != nil {
		return Path{}, err
	}
	return b.Build(), nil
}

func (p *pathParser) parse(b *PathBuilder) error {
	if p.path == "" {
		return nil
	}
	if p.path[0] == '/' {
		b.Absolute()
		p.pos++
	}
	for p.valid() {
		start := p.pos
		ns, err := p.namespace()
		if err != nil {
			return err
		}
		name := p.seek('/')
		if name == "" {
			return &PathError{Path: p.path, Offset: start, Reason: "empty path element"}
		}
		b.NextQualified(ns, name)
		if p.valid() {
			p.pos++
		}
	}
	return nil
}

// namespace consumes and returns the namespace portion of the segment
// beginning at the cursor, leaving the cursor at the local name. When the
// segment has no namespace portion the cursor is restored.
func (p *pathParser) namespace() (string, error) {
	start := p.pos

	if p.path[start] == '{' {
		p.pos++
		ns := p.seek('}')
		if !p.valid() {
			return "", &PathError{Path: p.path, Offset: start, Reason: "unterminated namespace URI"}
		}
		p.pos++
		return ns, nil
	}
	for p.valid() {
		switch p.path[p.pos] {
		case '/':
			p.pos = start
			return "", nil
		case ':':
			prefix := p.path[start:p.pos]
			p.pos++
			if p.reg == nil {
				return "", errors.Wrapf(errors.ErrUnresolvedPrefix,
					"no namespace registry specified; cannot resolve prefix %q", prefix)
			}
			uri, err := p.reg.URI(prefix)
			if err != nil {
				return "", errors.Mark(errors.Wrapf(err, "cannot resolve prefix %q", prefix),
					errors.ErrUnresolvedPrefix)
			}
			return uri, nil
		}
		p.pos++
	}
	p.pos = start
	return "", nil
}

func (p *pathParser) seek(c byte) string {
	start := p.pos
	i := strings.IndexByte(p.path[start:], c)
	if i < 0 {
		p.pos = len(p.path)
		return p.path[start:]
	}
	p.pos = start + i
	return p.path[start:p.pos]
}

func (p *pathParser) valid() bool {
	return p.pos < len(p.path)
}

// IsAbsolute reports whether the path is absolute.
func (p Path) IsAbsolute() bool {
	return p.absolute
}

// IsRelative reports whether the path is relative.
func (p Path) IsRelative() bool {
	return !p.absolute
}

// IsEmpty reports whether the path has no elements.
func (p Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Len returns the number of elements.
func (p Path) Len() int {
	return len(p.elements)
}

// Elements returns the path elements in order. The returned slice is a copy.
func (p Path) Elements() []Element {
	elements := make([]Element, len(p.elements))
	copy(elements, p.elements)
	return elements
}

// Parent returns the path with the last element dropped. The empty path is
// its own parent.
func (p Path) Parent() Path {
	if len(p.elements) == 0 {
		return p
	}
	return Path{absolute: p.absolute, elements: p.elements[:len(p.elements)-1]}
}

// Absolute returns this path in absolute form.
func (p Path) Absolute() Path {
	if p.absolute {
		return p
	}
	return Path{absolute: true, elements: p.elements}
}

// Relative returns this path in relative form.
func (p Path) Relative() Path {
	if !p.absolute {
		return p
	}
	return Path{absolute: false, elements: p.elements}
}

// Child obtains a PathBuilder seeded with this path's elements and flag.
func (p Path) Child() *PathBuilder {
	b := NewPath().SetAbsolute(p.absolute)
	b.elements = append(b.elements, p.elements...)
	return b
}

// Equal reports whether two paths have the same absolute flag and elements.
func (p Path) Equal(other Path) bool {
	if p.absolute != other.absolute || len(p.elements) != len(other.elements) {
		return false
	}
	for i, e := range p.elements {
		if e != other.elements[i] {
			return false
		}
	}
	return true
}

// String renders the path in registry-independent form, qualified elements
// as {uri}name, joined by '/', with a leading '/' iff absolute.
func (p Path) String() string {
	var sb strings.Builder
	if p.absolute {
		sb.WriteByte('/')
	}
	for i, e := range p.elements {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Render renders the path using the supplied registry, preferring
// prefix:name form for qualified elements.
func (p Path) Render(reg NamespaceRegistry) (string, error) {
	var sb strings.Builder
	if p.absolute {
		sb.WriteByte('/')
	}
	for i, e := range p.elements {
		if i > 0 {
			sb.WriteByte('/')
		}
		s, err := e.Render(reg)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
