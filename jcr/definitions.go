package jcr

// NodeTypeDefinition is a compiled, repository-submittable node type.
// Instances are produced by the schema compiler and handed to a
// NodeTypeManager; they are constructed fresh per compilation and never
// mutated afterwards.
type NodeTypeDefinition struct {
	Name                string
	Abstract            bool
	Mixin               bool
	OrderableChildNodes bool
	PrimaryItemName     string
	Queryable           bool

	// SupertypeNames is ordered and deduplicated, declaratively specified
	// names first.
	SupertypeNames []string

	Properties []*PropertyDefinition
	ChildNodes []*ChildNodeDefinition
}

// PropertyDefinition is a compiled property definition record.
type PropertyDefinition struct {
	Name               string
	RequiredType       PropertyType
	AutoCreated        bool
	Mandatory          bool
	Multiple           bool
	Protected          bool
	QueryOrderable     bool
	FullTextSearchable bool
	OnParentVersion    OnParentVersion

	AvailableQueryOperators []string
	ValueConstraints        []string
	DefaultValues           []Value
}

// ChildNodeDefinition is a compiled child-node definition record.
type ChildNodeDefinition struct {
	Name            string
	AutoCreated     bool
	Mandatory       bool
	Protected       bool
	OnParentVersion OnParentVersion

	// RequiredPrimaryTypeNames is deduplicated by fullname, declaratively
	// specified names first.
	RequiredPrimaryTypeNames []string

	// DefaultPrimaryTypeName is empty when no default could be resolved.
	DefaultPrimaryTypeName string

	SameNameSiblings bool
}
