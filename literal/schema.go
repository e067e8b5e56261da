package literal

// Source is a literal usable as a query source. Selector names are assigned
// per Source within a Schema group.
type Source interface {
	Literal

	// SourceSet returns the enumeration the source was declared in.
	SourceSet() *NodeSet
}

// SelectorNameStrategy generates the selector-name table for a schema
// group. Implementations must return a total mapping whose names are unique
// within the supplied source list; the assignment layer rejects anything
// else with errors.ErrSchemaInstantiation.
type SelectorNameStrategy interface {
	GenerateSelectors(sources []Source) (map[Source]string, error)
}

// Schema defines a lexicon of source enumerations among which generated
// selector names are unique. A Schema is attached to a Scope via WithSchema
// and found by literals through the scope walk; sources whose scope chain
// carries no Schema fall back to an implicit group containing only their own
// enumeration.
type Schema struct {
	members  []*NodeSet
	strategy SelectorNameStrategy
}

// NewSchema creates a selector-name uniqueness group over the member sets.
// A nil strategy selects the default initials-based algorithm.
func NewSchema(strategy SelectorNameStrategy, members ...*NodeSet) *Schema {
	return &Schema{members: members, strategy: strategy}
}

// Add registers member sets after construction. Sets usually declare their
// scope with WithSchema before they can be enumerated here, so registration
// happens in two steps during package initialization; the group must be
// complete before any selector name is requested.
func (s *Schema) Add(members ...*NodeSet) {
	s.members = append(s.members, members...)
}

// Members returns the member sets in tag order.
func (s *Schema) Members() []*NodeSet {
	members := make([]*NodeSet, len(s.members))
	copy(members, s.members)
	return members
}

// Strategy returns the configured strategy, or nil for the default.
func (s *Schema) Strategy() SelectorNameStrategy {
	return s.strategy
}

// Sources returns every literal of every member set: declaration order
// within each set, sets in tag order. This is the stable iteration order
// selector assignment relies on for deterministic collision tie-breaking.
func (s *Schema) Sources() []Source {
	var sources []Source
	for _, set := range s.members {
		for _, n := range set.nodes {
			sources = append(sources, n)
		}
	}
	return sources
}
