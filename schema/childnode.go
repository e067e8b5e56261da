package schema

import (
	"strings"

	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
)

// ChildNode compiles a child-node slot literal into a
// jcr.ChildNodeDefinition.
//
// Declared required primary type names are merged with programmatically
// contributed ones, deduplicated by fullname, declared names first. The
// default primary type resolves from the programmatic capability and the
// declared name: both present and differing fails with
// errors.ErrConflictingDefaultPrimaryType; neither present falls back to the
// single required type when exactly one exists, otherwise stays unset.
func ChildNode(c *literal.Child) (*jcr.ChildNodeDefinition, error) {
	out := &jcr.ChildNodeDefinition{Name: c.Fullname()}

	var declaredRequired []string
	var declaredDefault string
	if def := c.Definition(); def != nil {
		out.AutoCreated = def.AutoCreated
		out.Mandatory = def.Mandatory
		out.Protected = def.Protected
		out.SameNameSiblings = def.SameNameSiblings
		if def.OnParentVersion != jcr.OnParentVersionUnset {
			out.OnParentVersion = def.OnParentVersion
		}
		declaredRequired = def.RequiredPrimaryTypeNames
		declaredDefault = strings.TrimSpace(def.DefaultPrimaryTypeName)
	}

	out.RequiredPrimaryTypeNames = mergeNames(declaredRequired, fullnames(c.RequiredPrimaryTypes()))

	var providedDefault string
	if dt := c.DefaultPrimaryType(); dt != nil {
		providedDefault = dt.Fullname()
	}

	switch {
	case providedDefault != "" && declaredDefault != "" && providedDefault != declaredDefault:
		return nil, errors.Wrapf(errors.ErrConflictingDefaultPrimaryType,
			"%s.%s: %q vs %q", c.Scope().Name(), c.Name(), declaredDefault, providedDefault)
	case providedDefault != "":
		out.DefaultPrimaryTypeName = providedDefault
	case declaredDefault != "":
		out.DefaultPrimaryTypeName = declaredDefault
	case len(out.RequiredPrimaryTypeNames) == 1:
		out.DefaultPrimaryTypeName = out.RequiredPrimaryTypeNames[0]
	}
	return out, nil
}
