package parser

// Punctuation helpers for the characters the grammar uses between tokens.

// BraceOpen consumes '{'.
func BraceOpen(input string) (rune, string, *Error) {
	return Char(input, '{')
}

// BraceClose consumes '}'.
func BraceClose(input string) (rune, string, *Error) {
	return Char(input, '}')
}

// ParenOpen consumes '('.
func ParenOpen(input string) (rune, string, *Error) {
	return Char(input, '(')
}

// ParenClose consumes ')'.
func ParenClose(input string) (rune, string, *Error) {
	return Char(input, ')')
}

// Colon consumes ':'.
func Colon(input string) (rune, string, *Error) {
	return Char(input, ':')
}

// Comma consumes ','.
func Comma(input string) (rune, string, *Error) {
	return Char(input, ',')
}

// Dollar consumes '$'.
func Dollar(input string) (rune, string, *Error) {
	return Char(input, '$')
}

// At consumes '@'.
func At(input string) (rune, string, *Error) {
	return Char(input, '@')
}
