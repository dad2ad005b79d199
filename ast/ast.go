// Package ast defines the surface syntax tree of the Dragonfly language and
// the grammar that produces it.
//
// A source file is a sequence of enum, model, and query declarations.
// Parsing is whitespace-insensitive between tokens and stops at the first
// error.
package ast

import (
	"github.com/dragonfly-lang/dragonfly/internal/ordmap"
	"github.com/dragonfly-lang/dragonfly/parser"
)

// Ast is the parsed form of a whole source file. The three namespaces keep
// declaration order.
type Ast struct {
	Enums   *ordmap.Map[*Enum]
	Models  *ordmap.Map[*Model]
	Queries *ordmap.Map[*Query]
}

// New returns an empty Ast.
func New() *Ast {
	return &Ast{
		Enums:   ordmap.New[*Enum](),
		Models:  ordmap.New[*Model](),
		Queries: ordmap.New[*Query](),
	}
}

// Parse parses a whole source file. Declarations may appear in any order;
// duplicate top-level names are an error.
func Parse(input string) (*Ast, string, *parser.Error) {
	tree := New()

	for input != "" {
		rest, _ := parser.Spaces(input)

		if model, newRest, err := ParseModel(rest); err == nil {
			if _, exists := tree.Models.Insert(model.Name, model); exists {
				return nil, "", parser.NewCustomf("Duplicate model name `%s`", model.Name)
			}

			input = newRest
		} else if query, newRest, err := ParseQuery(rest); err == nil {
			if _, exists := tree.Queries.Insert(query.Name, query); exists {
				return nil, "", parser.NewCustomf("Duplicate query name `%s`", query.Name)
			}

			input = newRest
		} else if declaration, newRest, err := ParseEnum(rest); err == nil {
			if _, exists := tree.Enums.Insert(declaration.Name, declaration); exists {
				return nil, "", parser.NewCustomf("Duplicate enum name `%s`", declaration.Name)
			}

			input = newRest
		} else {
			return nil, "", parser.NewCustom("Expected an enum, model, or query.")
		}

		input, _ = parser.Spaces(input)
	}

	input, _ = parser.Spaces(input)

	return tree, input, nil
}
