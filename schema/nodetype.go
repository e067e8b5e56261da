package schema

import (
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
)

// NodeType compiles a node-type literal into a jcr.NodeTypeDefinition. The
// definition name is always the literal's fullname. Declared supertypes are
// merged with programmatically contributed ones, deduplicated, declared
// names first.
func NodeType(n *literal.Node) *jcr.NodeTypeDefinition {
	out := &jcr.NodeTypeDefinition{
		Name:      n.Fullname(),
		Queryable: true,
	}

	var declared []string
	if def := n.Definition(); def != nil {
		out.Abstract = def.Abstract
		out.Mixin = def.Mixin
		out.OrderableChildNodes = def.OrderableChildNodes
		out.PrimaryItemName = def.PrimaryItemName
		out.Queryable = !def.NonQueryable
		declared = def.Supertypes
	}

	out.SupertypeNames = mergeNames(declared, fullnames(n.Supertypes()))
	return out
}
