package parser

import (
	"reflect"
	"testing"
)

func TestChar(t *testing.T) {
	value, rest, err := Char("abc", 'a')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != 'a' || rest != "bc" {
		t.Fatalf("got %q rest %q", value, rest)
	}
}

func TestCharUnexpected(t *testing.T) {
	_, _, err := Char("abc", 'b')
	if err == nil || err.Kind != KindUnexpectedChar {
		t.Fatalf("expected unexpected-character error, got %v", err)
	}

	if err.Error() != "Expected character 'b', found 'a'." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCharEOF(t *testing.T) {
	_, _, err := Char("", 'a')
	if err == nil || err.Kind != KindUnexpectedEOF {
		t.Fatalf("expected EOF error, got %v", err)
	}
}

func TestLiteral(t *testing.T) {
	value, rest, err := Literal("model Foo", "model")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != "model" || rest != " Foo" {
		t.Fatalf("got %q rest %q", value, rest)
	}
}

func TestLiteralUnmatched(t *testing.T) {
	_, _, err := Literal("query q", "model")
	if err == nil || err.Kind != KindUnmatchedLiteral || err.Expected != "model" {
		t.Fatalf("expected unmatched-literal error, got %v", err)
	}
}

func TestLiteralEOF(t *testing.T) {
	_, _, err := Literal("", "model")
	if err == nil || err.Kind != KindUnexpectedEOF {
		t.Fatalf("expected EOF error, got %v", err)
	}
}

func TestCharsIf(t *testing.T) {
	value, rest, err := CharsIf("abc123", func(c rune) bool {
		return c >= 'a' && c <= 'z'
	}, "Expected letter.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != "abc" || rest != "123" {
		t.Fatalf("got %q rest %q", value, rest)
	}
}

func TestCharsIfEmpty(t *testing.T) {
	_, _, err := CharsIf("123", func(c rune) bool {
		return c >= 'a' && c <= 'z'
	}, "Expected letter.")
	if err == nil || err.Kind != KindUnexpectedChar {
		t.Fatalf("expected unexpected-character error, got %v", err)
	}
}

func TestManyNeverFails(t *testing.T) {
	values, rest, err := Many("123", Lowercase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(values) != 0 || rest != "123" {
		t.Fatalf("got %v rest %q", values, rest)
	}
}

func TestMany1PropagatesError(t *testing.T) {
	_, _, err := Many1("123", Lowercase)
	if err == nil || err.Kind != KindUnexpectedChar {
		t.Fatalf("expected unexpected-character error, got %v", err)
	}
}

func TestChoice(t *testing.T) {
	value, rest, err := Choice("bar", []Parser[string]{
		func(input string) (string, string, *Error) {
			return Literal(input, "foo")
		},
		func(input string) (string, string, *Error) {
			return Literal(input, "bar")
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != "bar" || rest != "" {
		t.Fatalf("got %q rest %q", value, rest)
	}
}

func TestChoiceCollectsErrors(t *testing.T) {
	_, _, err := Choice("baz", []Parser[string]{
		func(input string) (string, string, *Error) {
			return Literal(input, "foo")
		},
		func(input string) (string, string, *Error) {
			return Literal(input, "bar")
		},
	})
	if err == nil || err.Kind != KindUnmatchedChoice {
		t.Fatalf("expected unmatched-choice error, got %v", err)
	}

	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 collected errors, got %d", len(err.Errors))
	}
}

func TestOption(t *testing.T) {
	_, ok, rest, err := Option("123", Lowercase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ok || rest != "123" {
		t.Fatalf("expected absent option without consuming, got ok=%v rest %q", ok, rest)
	}

	value, ok, rest, err := Option("abc", Lowercase)
	if err != nil || !ok || value != 'a' || rest != "bc" {
		t.Fatalf("got %q ok=%v rest %q err=%v", value, ok, rest, err)
	}
}

func TestBetween(t *testing.T) {
	value, rest, err := Between("[Int]", "[", func(input string) (string, string, *Error) {
		return Literal(input, "Int")
	}, "]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != "Int" || rest != "" {
		t.Fatalf("got %q rest %q", value, rest)
	}
}

func TestSpaces(t *testing.T) {
	rest, err := Spaces(" \t\n x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rest != "x" {
		t.Fatalf("got rest %q", rest)
	}
}

func TestCapitalized(t *testing.T) {
	value, rest, err := Capitalized("FooBar1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != "FooBar" || rest != "1" {
		t.Fatalf("got %q rest %q", value, rest)
	}
}

func TestCapitalizedLowerStart(t *testing.T) {
	_, _, err := Capitalized("foo")
	if err == nil || err.Kind != KindUnexpectedChar {
		t.Fatalf("expected unexpected-character error, got %v", err)
	}

	want := "Expected capitalized identifier to start with uppercase character, found 'f'."
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestPascalCase(t *testing.T) {
	value, rest, err := PascalCase("CountryName ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != "CountryName" || rest != " " {
		t.Fatalf("got %q rest %q", value, rest)
	}
}

func TestPascalCaseEOF(t *testing.T) {
	_, _, err := PascalCase("")
	if err == nil || err.Kind != KindUnexpectedEOF {
		t.Fatalf("expected EOF error, got %v", err)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
		rest  string
	}{
		{name: "plain", input: "foo ", value: "foo", rest: " "},
		{name: "segments", input: "fooBarBaz{", value: "fooBarBaz", rest: "{"},
		{name: "stops at digit", input: "foo1", value: "foo", rest: "1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, rest, err := CamelCase(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if value != test.value || rest != test.rest {
				t.Fatalf("got %q rest %q", value, rest)
			}
		})
	}
}

func TestCamelCaseUpperStart(t *testing.T) {
	_, _, err := CamelCase("Foo")
	if err == nil || err.Kind != KindUnexpectedChar {
		t.Fatalf("expected unexpected-character error, got %v", err)
	}

	want := "Expected camelCase identifier to start with lowercase character, found 'F'."
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCamelCaseEOF(t *testing.T) {
	_, _, err := CamelCase("")
	if err == nil || err.Kind != KindUnexpectedEOF {
		t.Fatalf("expected EOF error, got %v", err)
	}
}

func TestMap(t *testing.T) {
	value, rest, err := Map("abc", Alphabetics, func(s string) int {
		return len(s)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != 3 || rest != "" {
		t.Fatalf("got %d rest %q", value, rest)
	}
}

func TestTag(t *testing.T) {
	value, rest, err := Tag("contains:", func(input string) (string, string, *Error) {
		return Literal(input, "contains")
	}, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != 42 || rest != ":" {
		t.Fatalf("got %d rest %q", value, rest)
	}
}

func TestDeterminism(t *testing.T) {
	first, rest1, err1 := CamelCase("imageTitle rest")
	second, rest2, err2 := CamelCase("imageTitle rest")

	if !reflect.DeepEqual(first, second) || rest1 != rest2 || !reflect.DeepEqual(err1, err2) {
		t.Fatal("parsing the same input twice differed")
	}
}
