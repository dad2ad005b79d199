package ast

import (
	"fmt"

	"github.com/dragonfly-lang/dragonfly/internal/ordmap"
	"github.com/dragonfly-lang/dragonfly/parser"
)

// Field is a single model field.
type Field struct {
	Name string
	Type Type
}

func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name, f.Type)
}

// Model is a model declaration: a name plus an ordered collection of fields
// with unique names.
type Model struct {
	Name   string
	Fields *ordmap.Map[Field]
}

// ParseField parses a `name: Type` field.
func ParseField(input string) (Field, string, *parser.Error) {
	name, rest, err := parser.CamelCase(input)
	if err != nil {
		return Field{}, "", err
	}

	_, rest, err = parser.Colon(rest)
	if err != nil {
		return Field{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	fieldType, rest, err := ParseType(rest)
	if err != nil {
		return Field{}, "", err
	}

	return Field{Name: name, Type: fieldType}, rest, nil
}

// ParseModel parses a `model Name { field... }` declaration. At least one
// field is required and field names must be unique.
func ParseModel(input string) (*Model, string, *parser.Error) {
	_, rest, err := parser.Literal(input, "model")
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	name, rest, err := parser.Capitalized(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	fields := ordmap.New[Field]()

	for {
		field, newRest, err := ParseField(rest)
		if err != nil {
			break
		}

		newRest, _ = parser.Spaces(newRest)

		if _, exists := fields.Insert(field.Name, field); exists {
			return nil, "", parser.NewCustomf(
				"Duplicate field name `%s` in model `%s`.",
				field.Name,
				name,
			)
		}

		rest = newRest
	}

	if fields.IsEmpty() {
		return nil, "", parser.NewCustomf(
			"Expected at least one field in model `%s`.",
			name,
		)
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return nil, "", err
	}

	return &Model{Name: name, Fields: fields}, rest, nil
}
