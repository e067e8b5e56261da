package literal

import "github.com/mbenson/jcrbox/jcr"

// PropertyDefinition is the optional declarative record of a property
// literal. Zero-valued fields are "unset" and are not applied by the schema
// compiler: jcr.PropertyTypeUndefined leaves the required type open,
// jcr.OnParentVersionUnset leaves versioning behavior to the repository, and
// the inverted NoFullTextSearch/NoQueryOrder flags keep the repository
// defaults of full-text-searchable, query-orderable properties.
type PropertyDefinition struct {
	RequiredType jcr.PropertyType

	AutoCreated      bool
	Mandatory        bool
	Multiple         bool
	Protected        bool
	NoFullTextSearch bool
	NoQueryOrder     bool

	OnParentVersion jcr.OnParentVersion

	AvailableQueryOperators []string

	// ValueConstraints restricts permitted values. Mutually exclusive
	// with ConstrainAsEnum.
	ValueConstraints []string

	// DefaultValues may mix heterogeneously typed literals; the compiler
	// unions them into one deduplicated value set.
	DefaultValues []jcr.Value

	// ConstrainAsEnum constrains the property to the symbolic names of
	// the referenced enumeration. Implies a STRING required type; at most
	// one enumeration may be referenced (enforced structurally).
	ConstrainAsEnum *Enum
}

// Property is a modeled property literal.
type Property struct {
	ident
	def *PropertyDefinition
}

// NewProperty creates a property literal under scope. The definition record
// may be nil.
func NewProperty(scope *Scope, name string, def *PropertyDefinition) *Property {
	return &Property{ident: newIdent(name, scope), def: def}
}

// Definition returns the declarative record, or nil.
func (p *Property) Definition() *PropertyDefinition {
	return p.def
}

// QualifiedProperty pairs a property with the query source it belongs to,
// for addressing a property of a specific selector.
type QualifiedProperty struct {
	Source   Source
	Property *Property
}

// Of qualifies the property relative to source.
func (p *Property) Of(source Source) QualifiedProperty {
	return QualifiedProperty{Source: source, Property: p}
}
