package ast

import (
	"github.com/dragonfly-lang/dragonfly/parser"
)

// SchemaNode is one node of a query schema: a field leaf or a relation with
// nested nodes.
type SchemaNode struct {
	Name  string
	Nodes []SchemaNode
}

// IsField reports whether the node is a leaf.
func (n SchemaNode) IsField() bool {
	return len(n.Nodes) == 0
}

// Schema describes the shape of the data a query returns: a root alias plus
// nested nodes.
type Schema struct {
	Name  string
	Nodes []SchemaNode
}

func parseSchemaRelation(input string) (SchemaNode, string, *parser.Error) {
	name, rest, err := parser.Alphabetics(input)
	if err != nil {
		return SchemaNode{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return SchemaNode{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	nodes, rest, err := parser.Many1(rest, func(input string) (SchemaNode, string, *parser.Error) {
		input, _ = parser.Spaces(input)

		node, rest, err := ParseSchemaNode(input)
		if err != nil {
			return SchemaNode{}, "", err
		}

		rest, _ = parser.Spaces(rest)

		return node, rest, nil
	})
	if err != nil {
		return SchemaNode{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return SchemaNode{}, "", err
	}

	return SchemaNode{Name: name, Nodes: nodes}, rest, nil
}

func parseSchemaField(input string) (SchemaNode, string, *parser.Error) {
	name, rest, err := parser.CamelCase(input)
	if err != nil {
		return SchemaNode{}, "", err
	}

	return SchemaNode{Name: name}, rest, nil
}

// ParseSchemaNode parses a schema node: a relation block or a bare field
// name.
func ParseSchemaNode(input string) (SchemaNode, string, *parser.Error) {
	return parser.Choice(input, []parser.Parser[SchemaNode]{
		parseSchemaRelation,
		parseSchemaField,
	})
}

// ParseSchema parses a `rootAlias { node... }` schema block.
func ParseSchema(input string) (Schema, string, *parser.Error) {
	name, rest, err := parser.Alphabetics(input)
	if err != nil {
		return Schema{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Schema{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	nodes, rest, err := parser.Many1(rest, func(input string) (SchemaNode, string, *parser.Error) {
		node, rest, err := ParseSchemaNode(input)
		if err != nil {
			return SchemaNode{}, "", err
		}

		rest, _ = parser.Spaces(rest)

		return node, rest, nil
	})
	if err != nil {
		return Schema{}, "", err
	}

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return Schema{}, "", err
	}

	return Schema{Name: name, Nodes: nodes}, rest, nil
}
