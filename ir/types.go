package ir

// Cardinality tags whether a value is a single item or a collection.
type Cardinality int

const (
	// One is a single value.
	One Cardinality = iota
	// Many is a collection of values.
	Many
)

func (c Cardinality) String() string {
	if c == Many {
		return "Many"
	}

	return "One"
}

// Type is a primitive data field type.
type Type int

const (
	// Boolean is a true/false value.
	Boolean Type = iota
	// DateTime is a point in time.
	DateTime
	// Float is a floating-point number.
	Float
	// Int is an integer.
	Int
	// String is a sequence of characters.
	String
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "Boolean"
	case DateTime:
		return "DateTime"
	case Float:
		return "Float"
	case Int:
		return "Int"
	case String:
		return "String"
	default:
		return ""
	}
}

// RelationKind classifies a model relation from the declaring side.
type RelationKind int

const (
	// OneToOne is an owned single reference (`field: @Model`).
	OneToOne RelationKind = iota
	// OneToMany is an owned array reference (`field: [@Model]`).
	OneToMany
	// ManyToOne is a plain single reference (`field: Model`).
	ManyToOne
	// ManyToMany is a plain array reference (`field: [Model]`).
	ManyToMany
)

func (k RelationKind) String() string {
	switch k {
	case OneToOne:
		return "OneToOne"
	case OneToMany:
		return "OneToMany"
	case ManyToOne:
		return "ManyToOne"
	case ManyToMany:
		return "ManyToMany"
	default:
		return ""
	}
}
