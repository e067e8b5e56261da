package literal

// EnumConstant is one symbolic constant of a value Enum, optionally flagged
// as a default value.
type EnumConstant struct {
	Name    string
	Default bool
}

// Constant creates an enum constant.
func Constant(name string) EnumConstant {
	return EnumConstant{Name: name}
}

// DefaultConstant creates an enum constant flagged as a default value for
// properties constrained to its enumeration.
func DefaultConstant(name string) EnumConstant {
	return EnumConstant{Name: name, Default: true}
}

// Enum is a closed set of symbolic values a property may be constrained to
// via PropertyDefinition.ConstrainAsEnum. Constants keep declaration order.
type Enum struct {
	name      string
	constants []EnumConstant
}

// NewEnum creates a value enumeration.
func NewEnum(name string, constants ...EnumConstant) *Enum {
	return &Enum{name: name, constants: constants}
}

// Name returns the enumeration's name, used in diagnostics.
func (e *Enum) Name() string {
	return e.name
}

// Constants returns the constants in declaration order.
func (e *Enum) Constants() []EnumConstant {
	constants := make([]EnumConstant, len(e.constants))
	copy(constants, e.constants)
	return constants
}

// Names returns all symbolic names in declaration order.
func (e *Enum) Names() []string {
	names := make([]string, len(e.constants))
	for i, c := range e.constants {
		names[i] = c.Name
	}
	return names
}

// DefaultNames returns the symbolic names of the constants flagged default,
// in declaration order; zero or more.
func (e *Enum) DefaultNames() []string {
	var names []string
	for _, c := range e.constants {
		if c.Default {
			names = append(names, c.Name)
		}
	}
	return names
}
