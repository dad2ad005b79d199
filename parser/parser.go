// Package parser implements the combinator library underneath the Dragonfly
// grammar.
//
// A parser for T consumes the front of an input string and returns the parsed
// value together with the unconsumed remainder, or a structured *Error. All
// parsers are pure functions; there is no shared state and no I/O.
package parser

import (
	"fmt"
	"strings"
)

// A Parser consumes the front of input and returns the parsed value and the
// remaining input.
type Parser[T any] func(input string) (T, string, *Error)

// Map applies parse and transforms its result with f.
func Map[T, U any](input string, parse Parser[T], f func(T) U) (U, string, *Error) {
	value, rest, err := parse(input)
	if err != nil {
		var zero U

		return zero, "", err
	}

	return f(value), rest, nil
}

// Tag applies parse and replaces its result with value.
func Tag[T, U any](input string, parse Parser[T], value U) (U, string, *Error) {
	_, rest, err := parse(input)
	if err != nil {
		var zero U

		return zero, "", err
	}

	return value, rest, nil
}

// Between parses the open literal, then parse, then the close literal, and
// returns the middle value.
func Between[T any](input, open string, parse Parser[T], close string) (T, string, *Error) {
	var zero T

	_, rest, err := Literal(input, open)
	if err != nil {
		return zero, "", err
	}

	value, rest, err := parse(rest)
	if err != nil {
		return zero, "", err
	}

	_, rest, err = Literal(rest, close)
	if err != nil {
		return zero, "", err
	}

	return value, rest, nil
}

// Many applies parse zero or more times. It never fails.
func Many[T any](input string, parse Parser[T]) ([]T, string, *Error) {
	var values []T

	for {
		value, rest, err := parse(input)
		if err != nil {
			return values, input, nil
		}

		values = append(values, value)
		input = rest
	}
}

// Many1 applies parse one or more times, failing with parse's error when the
// first application fails.
func Many1[T any](input string, parse Parser[T]) ([]T, string, *Error) {
	head, rest, err := parse(input)
	if err != nil {
		return nil, "", err
	}

	tail, rest, _ := Many(rest, parse)

	return append([]T{head}, tail...), rest, nil
}

// Choice tries each parser in order and returns the first success. When all
// alternatives fail, it returns an unmatched-choice error carrying every
// failure.
func Choice[T any](input string, parsers []Parser[T]) (T, string, *Error) {
	var errors []*Error

	for _, parse := range parsers {
		value, rest, err := parse(input)
		if err == nil {
			return value, rest, nil
		}

		errors = append(errors, err)
	}

	var zero T

	return zero, "", NewUnmatchedChoice(errors)
}

// Option applies parse zero or one time. On failure it consumes nothing and
// reports absence.
func Option[T any](input string, parse Parser[T]) (T, bool, string, *Error) {
	value, rest, err := parse(input)
	if err != nil {
		var zero T

		return zero, false, input, nil
	}

	return value, true, rest, nil
}

// Char consumes exactly the character want.
func Char(input string, want rune) (rune, string, *Error) {
	runes := []rune(input)
	if len(runes) == 0 {
		return 0, "", NewUnexpectedEOF()
	}

	if runes[0] != want {
		return 0, "", NewUnexpectedChar(
			fmt.Sprintf("Expected character '%c', found '%c'.", want, runes[0]),
			runes[0],
		)
	}

	return want, string(runes[1:]), nil
}

// Literal consumes exactly the string want.
func Literal(input, want string) (string, string, *Error) {
	if input == "" {
		return "", "", NewUnexpectedEOF()
	}

	if rest, ok := strings.CutPrefix(input, want); ok {
		return want, rest, nil
	}

	return "", "", NewUnmatchedLiteral(want)
}
