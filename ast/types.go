package ast

import (
	"fmt"

	"github.com/dragonfly-lang/dragonfly/parser"
)

// ScalarKind discriminates the scalar forms of the surface language.
type ScalarKind int

const (
	// ScalarBoolean is the `Boolean` primitive.
	ScalarBoolean ScalarKind = iota
	// ScalarDateTime is the `DateTime` primitive.
	ScalarDateTime
	// ScalarFloat is the `Float` primitive.
	ScalarFloat
	// ScalarInt is the `Int` primitive.
	ScalarInt
	// ScalarString is the `String` primitive.
	ScalarString
	// ScalarReference is a reference to a declared enum or model by name.
	ScalarReference
	// ScalarOwned is an owned model reference, written `@Name`.
	ScalarOwned
)

// Scalar is a single surface type: a primitive, a reference, or an owned
// reference. Name is set for references only.
type Scalar struct {
	Kind ScalarKind
	Name string
}

func (s Scalar) String() string {
	switch s.Kind {
	case ScalarBoolean:
		return "Boolean"
	case ScalarDateTime:
		return "DateTime"
	case ScalarFloat:
		return "Float"
	case ScalarInt:
		return "Int"
	case ScalarString:
		return "String"
	case ScalarReference:
		return s.Name
	case ScalarOwned:
		return "@" + s.Name
	default:
		return ""
	}
}

// Type is a scalar or an array of a scalar. Cardinality at source level is
// implicit in the array form.
type Type struct {
	Scalar Scalar
	Array  bool
}

func (t Type) String() string {
	if t.Array {
		return fmt.Sprintf("[%s]", t.Scalar)
	}

	return t.Scalar.String()
}

// ParseScalar parses a scalar type.
func ParseScalar(input string) (Scalar, string, *parser.Error) {
	scalar, rest, err := parser.Choice(input, []parser.Parser[Scalar]{
		scalarLiteral("Boolean", ScalarBoolean),
		scalarLiteral("DateTime", ScalarDateTime),
		scalarLiteral("Float", ScalarFloat),
		scalarLiteral("Int", ScalarInt),
		scalarLiteral("String", ScalarString),
		parseOwned,
		parseReference,
	})
	if err != nil {
		return Scalar{}, "", parser.NewCustom(
			"expected one of: Boolean, DateTime, Float, Int, String, @<capitalized>, <capitalized>",
		)
	}

	return scalar, rest, nil
}

func scalarLiteral(literal string, kind ScalarKind) parser.Parser[Scalar] {
	return func(input string) (Scalar, string, *parser.Error) {
		_, rest, err := parser.Literal(input, literal)
		if err != nil {
			return Scalar{}, "", err
		}

		return Scalar{Kind: kind}, rest, nil
	}
}

func parseOwned(input string) (Scalar, string, *parser.Error) {
	_, rest, err := parser.At(input)
	if err != nil {
		return Scalar{}, "", err
	}

	name, rest, err := parser.Capitalized(rest)
	if err != nil {
		return Scalar{}, "", err
	}

	return Scalar{Kind: ScalarOwned, Name: name}, rest, nil
}

func parseReference(input string) (Scalar, string, *parser.Error) {
	name, rest, err := parser.Capitalized(input)
	if err != nil {
		return Scalar{}, "", err
	}

	return Scalar{Kind: ScalarReference, Name: name}, rest, nil
}

// ParseType parses a scalar type or an array of a scalar type.
func ParseType(input string) (Type, string, *parser.Error) {
	return parser.Choice(input, []parser.Parser[Type]{
		func(input string) (Type, string, *parser.Error) {
			scalar, rest, err := ParseScalar(input)
			if err != nil {
				return Type{}, "", err
			}

			return Type{Scalar: scalar}, rest, nil
		},
		func(input string) (Type, string, *parser.Error) {
			scalar, rest, err := parser.Between(input, "[", ParseScalar, "]")
			if err != nil {
				return Type{}, "", err
			}

			return Type{Scalar: scalar, Array: true}, rest, nil
		},
	})
}
