package ast

import (
	"slices"
	"strings"

	"github.com/dragonfly-lang/dragonfly/parser"
)

// Operator is a condition operator.
type Operator int

const (
	// OperatorContains requires the field to contain the argument value.
	OperatorContains Operator = iota
	// OperatorEquals requires the field to equal the argument value.
	OperatorEquals
)

func (o Operator) String() string {
	switch o {
	case OperatorContains:
		return "contains"
	case OperatorEquals:
		return "equals"
	default:
		return ""
	}
}

// ParseOperator parses `contains` or `equals`.
func ParseOperator(input string) (Operator, string, *parser.Error) {
	return parser.Choice(input, []parser.Parser[Operator]{
		func(input string) (Operator, string, *parser.Error) {
			return parser.Tag(input, literalParser("contains"), OperatorContains)
		},
		func(input string) (Operator, string, *parser.Error) {
			return parser.Tag(input, literalParser("equals"), OperatorEquals)
		},
	})
}

func literalParser(literal string) parser.Parser[string] {
	return func(input string) (string, string, *parser.Error) {
		return parser.Literal(input, literal)
	}
}

// Path is a non-empty ordered sequence of field names leading to the field a
// condition refers to.
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Condition requires a field, addressed by path, to relate to a query
// argument through an operator.
type Condition struct {
	Path     Path
	Operator Operator
	Argument string
}

// Where is a where clause: a root alias plus the conditions that queried
// data must meet.
type Where struct {
	Name       string
	Conditions []Condition
}

func parseConditionSegment(input string) (string, string, *parser.Error) {
	segment, rest, err := parser.CamelCase(input)
	if err != nil {
		return "", "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return "", "", err
	}

	rest, _ = parser.Spaces(rest)

	return segment, rest, nil
}

func parseConditionLeaf(input string) (Operator, string, string, *parser.Error) {
	operator, rest, err := ParseOperator(input)
	if err != nil {
		return 0, "", "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.Colon(rest)
	if err != nil {
		return 0, "", "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.Dollar(rest)
	if err != nil {
		return 0, "", "", err
	}

	argument, rest, err := parser.CamelCase(rest)
	if err != nil {
		return 0, "", "", err
	}

	rest, _ = parser.Spaces(rest)

	return operator, argument, rest, nil
}

// parseConditions walks the nested brace structure of a where clause with a
// path stack: each opened segment pushes, each closing brace pops, and each
// operator leaf emits a condition for the current path.
func parseConditions(input string) ([]Condition, string, *parser.Error) {
	var (
		path       Path
		conditions []Condition
	)

	for {
		if segment, rest, err := parseConditionSegment(input); err == nil {
			path = append(path, segment)
			input = rest

			continue
		}

		if operator, argument, rest, err := parseConditionLeaf(input); err == nil {
			if len(path) == 0 {
				return nil, "", parser.NewCustom("A condition must refer to a field.")
			}

			conditions = append(conditions, Condition{
				Path:     slices.Clone(path),
				Operator: operator,
				Argument: argument,
			})
			input = rest

			continue
		}

		if len(path) > 0 {
			if _, rest, err := parser.BraceClose(input); err == nil {
				rest, _ = parser.Spaces(rest)
				path = path[:len(path)-1]
				input = rest

				continue
			}
		}

		return conditions, input, nil
	}
}

// ParseWhere parses a `where { rootAlias { ... } }` clause.
func ParseWhere(input string) (Where, string, *parser.Error) {
	_, rest, err := parser.Literal(input, "where")
	if err != nil {
		return Where{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Where{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	name, rest, err := parser.CamelCase(rest)
	if err != nil {
		return Where{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Where{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	conditions, rest, err := parseConditions(rest)
	if err != nil {
		return Where{}, "", err
	}

	rest, _ = parser.Spaces(rest)

	if _, newRest, err := parser.BraceClose(rest); err != nil {
		return Where{}, "", parser.NewCustomf("Expected closing brace for root node `%s`.", name)
	} else {
		rest = newRest
	}

	rest, _ = parser.Spaces(rest)

	if _, newRest, err := parser.BraceClose(rest); err != nil {
		return Where{}, "", parser.NewCustom("Expected closing brace for where clause.")
	} else {
		rest = newRest
	}

	return Where{Name: name, Conditions: conditions}, rest, nil
}
