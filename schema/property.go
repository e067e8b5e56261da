package schema

import (
	"github.com/mbenson/jcrbox/errors"
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
)

// Property compiles a property literal into a jcr.PropertyDefinition.
//
// When the declarative record constrains the property to an enumeration, the
// required type is forced to STRING, the value constraints become the
// enumeration's symbolic names, and the default values the names of its
// default-flagged constants. Otherwise constraints and defaults come from
// the record, heterogeneous default values unioned into one deduplicated
// set. Unset sentinel fields are not applied.
func Property(p *literal.Property) (*jcr.PropertyDefinition, error) {
	out := &jcr.PropertyDefinition{
		Name:               p.Fullname(),
		FullTextSearchable: true,
		QueryOrderable:     true,
	}

	def := p.Definition()
	if def == nil {
		return out, nil
	}
	if err := validateProperty(p, def); err != nil {
		return nil, err
	}

	out.AutoCreated = def.AutoCreated
	out.Mandatory = def.Mandatory
	out.Multiple = def.Multiple
	out.Protected = def.Protected
	out.FullTextSearchable = !def.NoFullTextSearch
	out.QueryOrderable = !def.NoQueryOrder

	if len(def.AvailableQueryOperators) > 0 {
		out.AvailableQueryOperators = append([]string(nil), def.AvailableQueryOperators...)
	}
	if def.OnParentVersion != jcr.OnParentVersionUnset {
		out.OnParentVersion = def.OnParentVersion
	}
	if def.RequiredType != jcr.PropertyTypeUndefined {
		out.RequiredType = def.RequiredType
	}

	if e := def.ConstrainAsEnum; e != nil {
		out.RequiredType = jcr.PropertyTypeString
		if names := e.Names(); len(names) > 0 {
			out.ValueConstraints = names
		}
		for _, name := range e.DefaultNames() {
			out.DefaultValues = append(out.DefaultValues, jcr.StringValue(name))
		}
		return out, nil
	}

	if len(def.ValueConstraints) > 0 {
		out.ValueConstraints = append([]string(nil), def.ValueConstraints...)
	}
	out.DefaultValues = dedupValues(def.DefaultValues)
	return out, nil
}

// validateProperty rejects conflicting declarative settings, naming the
// offending literal. The at-most-one-enumeration rule is enforced
// structurally by the single ConstrainAsEnum field.
func validateProperty(p *literal.Property, def *literal.PropertyDefinition) error {
	if def.ConstrainAsEnum == nil {
		return nil
	}
	if len(def.ValueConstraints) > 0 {
		return errors.Wrapf(errors.ErrInvalidPropertyDefinition,
			"cannot specify both constrainAsEnum and valueConstraints: %s.%s",
			p.Scope().Name(), p.Name())
	}
	if def.RequiredType != jcr.PropertyTypeUndefined && def.RequiredType != jcr.PropertyTypeString {
		return errors.Wrapf(errors.ErrInvalidPropertyDefinition,
			"constrainAsEnum implies STRING property type: %s.%s",
			p.Scope().Name(), p.Name())
	}
	return nil
}

// dedupValues unions possibly heterogeneously typed values into one set,
// preserving first-occurrence order.
func dedupValues(values []jcr.Value) []jcr.Value {
	if len(values) == 0 {
		return nil
	}
	var out []jcr.Value
	seen := make(map[jcr.Value]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
