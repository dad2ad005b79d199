package ast

import (
	"slices"

	"github.com/dragonfly-lang/dragonfly/parser"
)

// Enum is an enumerated type declaration. Variants keep declaration order
// and are unique.
type Enum struct {
	Name     string
	Variants []string
}

func parseEnumVariant(input string) (string, string, *parser.Error) {
	variant, rest, err := parser.PascalCase(input)
	if err != nil {
		return "", "", err
	}

	rest, _ = parser.Spaces(rest)

	return variant, rest, nil
}

// ParseEnum parses an `enum Name { Variant... }` declaration.
func ParseEnum(input string) (*Enum, string, *parser.Error) {
	_, rest, err := parser.Literal(input, "enum")
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	name, rest, err := parser.PascalCase(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return nil, "", err
	}

	rest, _ = parser.Spaces(rest)

	var variants []string

	for {
		variant, newRest, err := parseEnumVariant(rest)
		if err != nil {
			break
		}

		if slices.Contains(variants, variant) {
			return nil, "", parser.NewCustom("Duplicate enum value.")
		}

		variants = append(variants, variant)
		rest = newRest
	}

	if len(variants) == 0 {
		return nil, "", parser.NewCustomf("Enum `%s` has no values.", name)
	}

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return nil, "", err
	}

	return &Enum{Name: name, Variants: variants}, rest, nil
}
