package parser

// CharIf consumes one character satisfying predicate. The description is used
// in the error when the character does not satisfy it.
func CharIf(input string, predicate func(rune) bool, description string) (rune, string, *Error) {
	runes := []rune(input)
	if len(runes) == 0 {
		return 0, "", NewUnexpectedEOF()
	}

	if !predicate(runes[0]) {
		return 0, "", NewUnexpectedChar(description, runes[0])
	}

	return runes[0], string(runes[1:]), nil
}

// CharsIf consumes a one-or-more run of characters satisfying predicate.
func CharsIf(input string, predicate func(rune) bool, description string) (string, string, *Error) {
	head, rest, err := CharIf(input, predicate, description)
	if err != nil {
		return "", "", err
	}

	result := []rune{head}

	for {
		c, newRest, err := CharIf(rest, predicate, description)
		if err != nil {
			return string(result), rest, nil
		}

		result = append(result, c)
		rest = newRest
	}
}

// Alphabetics consumes a run of ASCII letters.
func Alphabetics(input string) (string, string, *Error) {
	return CharsIf(input, isASCIIAlphabetic, "Expected alphabetic character.")
}

// Lowercase consumes one ASCII lowercase letter.
func Lowercase(input string) (rune, string, *Error) {
	return CharIf(input, isASCIILowercase, "Expected lowercase character.")
}

// Uppercase consumes one ASCII uppercase letter.
func Uppercase(input string) (rune, string, *Error) {
	return CharIf(input, isASCIIUppercase, "Expected uppercase character.")
}

// Space consumes one ASCII whitespace character.
func Space(input string) (rune, string, *Error) {
	return CharIf(input, isASCIIWhitespace, "Expected whitespace character.")
}

// Spaces consumes zero or more ASCII whitespace characters. It never fails.
func Spaces(input string) (string, *Error) {
	_, rest, _ := Many(input, Space)

	return rest, nil
}

func isASCIIAlphabetic(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIILowercase(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func isASCIIUppercase(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIIWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
