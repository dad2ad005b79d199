package ast

import (
	"fmt"

	"github.com/dragonfly-lang/dragonfly/internal/ordmap"
	"github.com/dragonfly-lang/dragonfly/parser"
)

// ReturnTypeKind distinguishes a single model return from an array return.
type ReturnTypeKind int

const (
	// ReturnModel is a single-model return type.
	ReturnModel ReturnTypeKind = iota
	// ReturnArray is an array-of-model return type.
	ReturnArray
)

// ReturnType is a query return type: a model reference or an array of one.
type ReturnType struct {
	Kind ReturnTypeKind
	Name string
}

// ParseReturnType parses `Name` or `[Name]`, rejecting anything that is not
// a reference.
func ParseReturnType(input string) (ReturnType, string, *parser.Error) {
	parsed, rest, err := ParseType(input)
	if err != nil {
		return ReturnType{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	if parsed.Scalar.Kind != ScalarReference {
		return ReturnType{}, "", parser.NewCustomf("Expected return type, found `%s`.", parsed)
	}

	kind := ReturnModel
	if parsed.Array {
		kind = ReturnArray
	}

	return ReturnType{Kind: kind, Name: parsed.Scalar.Name}, rest, nil
}

// Argument is a query argument: a `$name: Type` pair.
type Argument struct {
	Name string
	Type Type
}

func (a Argument) String() string {
	return fmt.Sprintf("$%s: %s", a.Name, a.Type)
}

// Query is a query declaration.
type Query struct {
	Name       string
	Arguments  *ordmap.Map[Argument]
	Schema     Schema
	ReturnType ReturnType
	Where      *Where
}

func parseQueryReference(input string) (string, string, *parser.Error) {
	_, rest, err := parser.Dollar(input)
	if err != nil {
		return "", "", err
	}

	return parser.Alphabetics(rest)
}

// ParseArgument parses a `$name: Type` argument.
func ParseArgument(input string) (Argument, string, *parser.Error) {
	name, rest, err := parseQueryReference(input)
	if err != nil {
		return Argument{}, "", err
	}

	_, rest, err = parser.Colon(rest)
	if err != nil {
		return Argument{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	argumentType, rest, err := ParseType(rest)
	if err != nil {
		return Argument{}, "", err
	}

	return Argument{Name: name, Type: argumentType}, rest, nil
}

func parseQueryArguments(input string) (*ordmap.Map[Argument], string, *parser.Error) {
	arguments := ordmap.New[Argument]()

	_, rest, err := parser.ParenOpen(input)
	if err != nil {
		return arguments, input, nil
	}

	argument, rest, err := ParseArgument(rest)
	if err != nil {
		return nil, "", err
	}

	arguments.Insert(argument.Name, argument)

	for {
		_, newRest, err := parser.Comma(rest)
		if err != nil {
			break
		}

		newRest, _ = parser.Spaces(newRest)

		argument, newRest, err := ParseArgument(newRest)
		if err != nil {
			return nil, "", err
		}

		if _, exists := arguments.Insert(argument.Name, argument); exists {
			return nil, "", parser.NewCustomf("duplicate argument `%s`.", argument.Name)
		}

		rest = newRest
	}

	_, rest, err = parser.ParenClose(rest)
	if err != nil {
		return nil, "", err
	}

	return arguments, rest, nil
}

// ParseQuery parses a `query name(args): ReturnType { schema where? }`
// declaration.
func ParseQuery(input string) (*Query, string, *parser.Error) {
	_, rest, err := parser.Literal(input, "query")
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	name, rest, err := parser.Alphabetics(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	arguments, rest, err := parseQueryArguments(rest)
	if err != nil {
		return nil, "", err
	}

	_, rest, err = parser.Colon(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	returnType, rest, err := ParseReturnType(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	schema, rest, err := ParseSchema(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	var where *Where

	if parsed, ok, newRest, _ := parser.Option(rest, func(input string) (Where, string, *parser.Error) {
		return ParseWhere(input)
	}); ok {
		where = &parsed
		rest = newRest
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return nil, "", err
	}

	return &Query{
		Name:       name,
		Arguments:  arguments,
		Schema:     schema,
		ReturnType: returnType,
		Where:      where,
	}, rest, nil
}
