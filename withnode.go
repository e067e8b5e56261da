package jcrbox

import (
	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
)

// WithNode is a set of convenience methods around a repository node,
// addressing properties and children by modeled literal. Navigation methods
// return a new WithNode for the reached node; mutators return the receiver
// for chaining.
type WithNode struct {
	jcr    *Jcr
	target jcr.Node
}

// Target returns the wrapped node.
func (w *WithNode) Target() jcr.Node {
	return w.target
}

// IsRoot reports whether the wrapped node is the workspace root.
func (w *WithNode) IsRoot() bool {
	return w.target.Path() == "/"
}

// Parent wraps the parent node. The root is its own parent.
func (w *WithNode) Parent() (*WithNode, error) {
	if w.IsRoot() {
		return w, nil
	}
	p, err := jcr.ParsePath(nil, w.target.Path())
	if err != nil {
		return nil, err
	}
	return w.jcr.WithNodeAt(p.Parent())
}

// Next finds or creates the named child node with the repository's default
// type.
func (w *WithNode) Next(name string) (*WithNode, error) {
	return w.NextOfType(name, nil)
}

// NextOfType finds or creates the named child node of the literal's type.
func (w *WithNode) NextOfType(name string, nodeType *literal.Node) (*WithNode, error) {
	has, err := w.target.HasChild(name)
	if err != nil {
		return nil, err
	}
	var child jcr.Node
	if has {
		child, err = w.target.Child(name)
	} else {
		child, err = w.target.AddChild(name, nameOf(nodeType))
	}
	if err != nil {
		return nil, err
	}
	return w.jcr.WithNode(child), nil
}

// NextLiteral finds or creates the child node named and typed by the
// node-type literal.
func (w *WithNode) NextLiteral(nodeType *literal.Node) (*WithNode, error) {
	return w.NextOfType(nodeType.Fullname(), nodeType)
}

// Walk finds or creates the node at the relative path below the wrapped
// node. Intermediate steps take defaultType, the final step finalType; nil
// literals defer to the repository's default type.
func (w *WithNode) Walk(path jcr.Path, defaultType, finalType *literal.Node) (*WithNode, error) {
	n, err := w.jcr.FindOrCreateNode(w.target, path.Relative(), nameOf(defaultType), nameOf(finalType))
	if err != nil {
		return nil, err
	}
	if n == w.target {
		return w, nil
	}
	return w.jcr.WithNode(n), nil
}

// Find returns the node at the relative path below the wrapped node; ok is
// false when any step is missing. Nothing is created.
func (w *WithNode) Find(path jcr.Path) (*WithNode, bool, error) {
	n := w.target
	for _, e := range path.Relative().Elements() {
		child, err := n.Child(e.String())
		if err != nil {
			if errors.IsPathNotFound(err) {
				return nil, false, nil
			}
			return nil, false, err
		}
		n = child
	}
	if n == w.target {
		return w, true, nil
	}
	return w.jcr.WithNode(n), true, nil
}

// Set sets the property named by the literal; an empty value list removes it.
func (w *WithNode) Set(property *literal.Property, values ...jcr.Value) (*WithNode, error) {
	if err := w.target.SetProperty(property.Fullname(), values...); err != nil {
		return nil, err
	}
	return w, nil
}

// SetEnum sets the property named by the literal to an enumeration constant's
// symbolic name.
func (w *WithNode) SetEnum(property *literal.Property, constant literal.EnumConstant) (*WithNode, error) {
	return w.Set(property, jcr.StringValue(constant.Name))
}

// Get returns the values of the property named by the literal; ok is false
// when the property is absent.
func (w *WithNode) Get(property *literal.Property) ([]jcr.Value, bool, error) {
	return w.target.Property(property.Fullname())
}

// GetSingle returns the single value of the property named by the literal,
// failing with errors.ErrPathNotFound when the property is absent and
// rejecting multi-valued properties.
func (w *WithNode) GetSingle(property *literal.Property) (jcr.Value, error) {
	values, ok, err := w.Get(property)
	if err != nil {
		return jcr.Value{}, err
	}
	if !ok {
		return jcr.Value{}, errors.Wrapf(errors.ErrPathNotFound,
			"node %s has no property %s", w.target.Path(), property.Fullname())
	}
	if len(values) != 1 {
		return jcr.Value{}, errors.Newf("property %s of node %s has %d values",
			property.Fullname(), w.target.Path(), len(values))
	}
	return values[0], nil
}

// Has reports whether the node has the property named by the literal.
func (w *WithNode) Has(property *literal.Property) (bool, error) {
	_, ok, err := w.target.Property(property.Fullname())
	return ok, err
}

// Children wraps the node's children in insertion order.
func (w *WithNode) Children() ([]*WithNode, error) {
	children, err := w.target.Children()
	if err != nil {
		return nil, err
	}
	out := make([]*WithNode, len(children))
	for i, c := range children {
		out[i] = w.jcr.WithNode(c)
	}
	return out, nil
}

// Remove deletes the wrapped node and its subtree.
func (w *WithNode) Remove() error {
	return w.target.Remove()
}
