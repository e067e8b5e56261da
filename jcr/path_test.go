package jcr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenson/jcrbox/errors"
)

// mapRegistry is a trivial NamespaceRegistry for tests.
type mapRegistry map[string]string // prefix -> uri

func (m mapRegistry) URI(prefix string) (string, error) {
	if uri, ok := m[prefix]; ok {
		return uri, nil
	}
	return "", errors.Wrapf(errors.ErrUnknownNamespace, "prefix %q", prefix)
}

func (m mapRegistry) Prefix(uri string) (string, error) {
	for p, u := range m {
		if u == uri {
			return p, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownNamespace, "uri %q", uri)
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		absolute bool
		elements []Element
	}{
		{name: "empty relative", path: "", absolute: false, elements: nil},
		{name: "empty absolute", path: "/", absolute: true, elements: nil},
		{
			name:     "single unqualified",
			path:     "a",
			elements: []Element{{Name: "a"}},
		},
		{
			name:     "absolute unqualified",
			path:     "/a/b",
			absolute: true,
			elements: []Element{{Name: "a"}, {Name: "b"}},
		},
		{
			name:     "bracket qualified",
			path:     "{http://x}foo/bar",
			elements: []Element{{NS: "http://x", Name: "foo"}, {Name: "bar"}},
		},
		{
			name:     "trailing slash tolerated",
			path:     "/a/b/",
			absolute: true,
			elements: []Element{{Name: "a"}, {Name: "b"}},
		},
		{
			name:     "mixed segments",
			path:     "/{http://x}a/b/{http://y}c",
			absolute: true,
			elements: []Element{{NS: "http://x", Name: "a"}, {Name: "b"}, {NS: "http://y", Name: "c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePath(nil, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.absolute, p.IsAbsolute())
			assert.Equal(t, tt.elements, p.elements)
		})
	}
}

func TestParsePathWithRegistry(t *testing.T) {
	reg := mapRegistry{"ns": "http://x"}

	prefixed, err := ParsePath(reg, "ns:foo")
	require.NoError(t, err)
	bracketed, err := ParsePath(reg, "{http://x}foo")
	require.NoError(t, err)
	assert.True(t, prefixed.Equal(bracketed))

	// Everything after the colon and before the next slash is local name.
	p, err := ParsePath(reg, "/ns:foo/ns:bar")
	require.NoError(t, err)
	assert.Equal(t, "/{http://x}foo/{http://x}bar", p.String())
}

func TestParsePathErrors(t *testing.T) {
	reg := mapRegistry{"ns": "http://x"}

	tests := []struct {
		name     string
		reg      NamespaceRegistry
		path     string
		sentinel error
		offset   int
	}{
		{name: "unterminated uri", reg: reg, path: "a/{http://x", sentinel: errors.ErrMalformedPath, offset: 2},
		{name: "empty element", reg: reg, path: "a//b", sentinel: errors.ErrMalformedPath, offset: 2},
		{name: "empty local after uri", reg: reg, path: "{http://x}", sentinel: errors.ErrMalformedPath, offset: 0},
		{name: "empty local after prefix", reg: reg, path: "ns:", sentinel: errors.ErrMalformedPath, offset: 0},
		{name: "unknown prefix", reg: reg, path: "nope:foo", sentinel: errors.ErrUnresolvedPrefix},
		{name: "prefix without registry", reg: nil, path: "ns:foo", sentinel: errors.ErrUnresolvedPrefix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.reg, tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			var pe *PathError
			if errors.As(err, &pe) {
				assert.Equal(t, tt.offset, pe.Offset)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	paths := []string{
		"",
		"/",
		"a",
		"/a/b",
		"{http://x}foo",
		"/{http://x}a/b/{http://y}c",
	}
	for _, s := range paths {
		t.Run(s, func(t *testing.T) {
			p, err := ParsePath(nil, s)
			require.NoError(t, err)
			again, err := ParsePath(nil, p.String())
			require.NoError(t, err)
			assert.True(t, p.Equal(again), "parse(render(parse(s))) == parse(s) for %q", s)
		})
	}
}

func TestPathParent(t *testing.T) {
	p, err := ParsePath(nil, "/a/b")
	require.NoError(t, err)
	parent, err := ParsePath(nil, "/a")
	require.NoError(t, err)
	assert.True(t, p.Parent().Equal(parent))

	empty, err := ParsePath(nil, "")
	require.NoError(t, err)
	assert.True(t, empty.Parent().Equal(empty), "empty path is its own parent")
	assert.True(t, empty.Parent().IsEmpty())
}

func TestPathAbsoluteRelative(t *testing.T) {
	p, err := ParsePath(nil, "/a/b")
	require.NoError(t, err)

	assert.True(t, p.Absolute().IsAbsolute())
	assert.False(t, p.Relative().IsAbsolute())

	// Idempotent; no-op conversions return the same value.
	assert.True(t, p.Absolute().Absolute().IsAbsolute())
	assert.False(t, p.Relative().Relative().IsAbsolute())
	assert.True(t, p.Absolute().Equal(p))
	assert.Equal(t, "a/b", p.Relative().String())
}

func TestPathChild(t *testing.T) {
	p, err := ParsePath(nil, "/a")
	require.NoError(t, err)

	child := p.Child().Next("b").Build()
	assert.Equal(t, "/a/b", child.String())
	assert.True(t, child.Parent().Equal(p))

	qualified := p.Child().NextQualified("http://x", "c").Build()
	assert.Equal(t, "/a/{http://x}c", qualified.String())
}

func TestPathBuilder(t *testing.T) {
	p := NewPath().Absolute().NextQualified("http://x", "a").Next("b").Build()
	assert.Equal(t, "/{http://x}a/b", p.String())
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.IsEmpty())

	// The built path is detached from the builder.
	b := NewPath().Next("a")
	first := b.Build()
	b.Next("b")
	assert.Equal(t, "a", first.String())
}

func TestPathRender(t *testing.T) {
	reg := mapRegistry{"ns": "http://x"}

	p, err := ParsePath(reg, "/ns:foo/plain/{http://unknown}bar")
	require.NoError(t, err)

	rendered, err := p.Render(reg)
	require.NoError(t, err)
	assert.Equal(t, "/ns:foo/plain/{http://unknown}bar", rendered)

	// Without a registry the bracket form is used throughout.
	assert.Equal(t, "/{http://x}foo/plain/{http://unknown}bar", p.String())
}

func TestPathEqual(t *testing.T) {
	a, _ := ParsePath(nil, "/a/b")
	b, _ := ParsePath(nil, "/a/b")
	c, _ := ParsePath(nil, "a/b")
	d, _ := ParsePath(nil, "/a/c")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "absolute flag participates in equality")
	assert.False(t, a.Equal(d))
}

func TestPathElementsCopy(t *testing.T) {
	p, _ := ParsePath(nil, "/a/b")
	elements := p.Elements()
	elements[0].Name = "mutated"
	assert.Equal(t, "/a/b", p.String(), "Elements() must not expose internal state")
}

func TestElementString(t *testing.T) {
	assert.Equal(t, "a", Element{Name: "a"}.String())
	assert.Equal(t, "{http://x}a", Element{NS: "http://x", Name: "a"}.String())
}
