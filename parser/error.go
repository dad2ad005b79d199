package parser

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the failure modes of a parser.
type ErrorKind int

const (
	// KindUnexpectedEOF means the input ended before the parser was done.
	KindUnexpectedEOF ErrorKind = iota
	// KindUnexpectedChar means the next character did not satisfy the parser.
	KindUnexpectedChar
	// KindUnmatchedLiteral means the input did not start with an expected
	// literal.
	KindUnmatchedLiteral
	// KindUnmatchedChoice means every alternative of a choice failed.
	KindUnmatchedChoice
	// KindCustom carries a hand-written message, used for duplicates and
	// structural issues discovered during parsing.
	KindCustom
)

// Error is the failure value returned by every parser in this package.
type Error struct {
	Kind ErrorKind

	// Message describes the expectation for KindUnexpectedChar and carries
	// the full text for KindCustom.
	Message string

	// Actual is the offending character for KindUnexpectedChar.
	Actual rune

	// Expected is the literal that failed to match for KindUnmatchedLiteral.
	Expected string

	// Errors collects the alternative failures for KindUnmatchedChoice.
	Errors []*Error
}

// NewUnexpectedEOF returns an end-of-input error.
func NewUnexpectedEOF() *Error {
	return &Error{Kind: KindUnexpectedEOF}
}

// NewUnexpectedChar returns an unexpected-character error. The message
// describes what the parser expected.
func NewUnexpectedChar(message string, actual rune) *Error {
	return &Error{Kind: KindUnexpectedChar, Message: message, Actual: actual}
}

// NewUnmatchedLiteral returns an error for a literal that did not match.
func NewUnmatchedLiteral(expected string) *Error {
	return &Error{Kind: KindUnmatchedLiteral, Expected: expected}
}

// NewUnmatchedChoice returns an error collecting the failures of every
// alternative tried by Choice.
func NewUnmatchedChoice(errors []*Error) *Error {
	return &Error{Kind: KindUnmatchedChoice, Errors: errors}
}

// NewCustom returns an error with a hand-written message.
func NewCustom(message string) *Error {
	return &Error{Kind: KindCustom, Message: message}
}

// NewCustomf returns a formatted custom error.
func NewCustomf(format string, args ...any) *Error {
	return NewCustom(fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnexpectedEOF:
		return "Unexpected end of input."
	case KindUnexpectedChar:
		return e.Message
	case KindUnmatchedLiteral:
		return fmt.Sprintf("Expected literal `%s`.", e.Expected)
	case KindUnmatchedChoice:
		var b strings.Builder

		b.WriteString("No matching alternative:")

		for _, err := range e.Errors {
			b.WriteString("\n  ")
			b.WriteString(err.Error())
		}

		return b.String()
	case KindCustom:
		return e.Message
	default:
		return "Unknown parse error."
	}
}
