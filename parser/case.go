package parser

import (
	"fmt"
	"strings"
)

// Capitalized consumes an uppercase letter followed by zero or more
// alphabetic characters. Type names are built from these.
func Capitalized(input string) (string, string, *Error) {
	head, rest, err := Uppercase(input)
	if err != nil {
		actual := firstRune(input)

		return "", "", NewUnexpectedChar(
			fmt.Sprintf(
				"Expected capitalized identifier to start with uppercase character, found '%c'.",
				actual,
			),
			actual,
		)
	}

	tail, rest, _ := Many(rest, Alphabetics)

	return string(head) + strings.Join(tail, ""), rest, nil
}

// PascalCase consumes one or more Capitalized segments.
func PascalCase(input string) (string, string, *Error) {
	parts, rest, err := Many1(input, Capitalized)
	if err == nil {
		return strings.Join(parts, ""), rest, nil
	}

	if input == "" {
		return "", "", NewUnexpectedEOF()
	}

	actual := firstRune(input)

	return "", "", NewUnexpectedChar(
		fmt.Sprintf(
			"Expected segment of PascalCase identifier to start with uppercase character, found '%c'.",
			actual,
		),
		actual,
	)
}

// CamelCase consumes one or more lowercase letters followed by zero or more
// Capitalized segments. Field, query, and argument names are built from
// these.
func CamelCase(input string) (string, string, *Error) {
	head, rest, err := Many1(input, Lowercase)
	if err != nil {
		if err.Kind != KindUnexpectedChar {
			return "", "", err
		}

		if input == "" {
			return "", "", NewUnexpectedEOF()
		}

		actual := firstRune(input)

		return "", "", NewUnexpectedChar(
			fmt.Sprintf(
				"Expected camelCase identifier to start with lowercase character, found '%c'.",
				actual,
			),
			actual,
		)
	}

	tail, rest, _ := Many(rest, Capitalized)

	return string(head) + strings.Join(tail, ""), rest, nil
}

func firstRune(input string) rune {
	for _, c := range input {
		return c
	}

	return 0
}
