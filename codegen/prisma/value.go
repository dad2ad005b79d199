package prisma

import (
	"fmt"
	"strings"
)

// ValueKind discriminates the value grammar of attributes and block
// properties.
type ValueKind int

const (
	// ValueArray is a bracketed, comma-separated list.
	ValueArray ValueKind = iota
	// ValueBoolean is `true` or `false`.
	ValueBoolean
	// ValueFunction is a function call.
	ValueFunction
	// ValueKeyword is a bare identifier.
	ValueKeyword
	// ValueNumber is a numeric literal.
	ValueNumber
	// ValueString is a double-quoted string.
	ValueString
)

// Function is a function-call value, `name(parameters...)`.
type Function struct {
	Name       string
	Parameters []Value
}

func (f Function) String() string {
	parameters := make([]string, 0, len(f.Parameters))

	for _, parameter := range f.Parameters {
		parameters = append(parameters, parameter.String())
	}

	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(parameters, ", "))
}

// Value is one value of the attribute grammar.
type Value struct {
	Kind     ValueKind
	Values   []Value
	Boolean  bool
	Function Function
	Text     string
}

// Array returns an array value.
func Array(values ...Value) Value {
	return Value{Kind: ValueArray, Values: values}
}

// Boolean returns a boolean value.
func Boolean(value bool) Value {
	return Value{Kind: ValueBoolean, Boolean: value}
}

// Call returns a function-call value.
func Call(name string, parameters ...Value) Value {
	return Value{Kind: ValueFunction, Function: Function{Name: name, Parameters: parameters}}
}

// Keyword returns a bare identifier value.
func Keyword(text string) Value {
	return Value{Kind: ValueKeyword, Text: text}
}

// Number returns a numeric value.
func Number(text string) Value {
	return Value{Kind: ValueNumber, Text: text}
}

// Text returns a double-quoted string value.
func Text(text string) Value {
	return Value{Kind: ValueString, Text: text}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueArray:
		elements := make([]string, 0, len(v.Values))

		for _, element := range v.Values {
			elements = append(elements, element.String())
		}

		return fmt.Sprintf("[%s]", strings.Join(elements, ", "))
	case ValueBoolean:
		return fmt.Sprintf("%t", v.Boolean)
	case ValueFunction:
		return v.Function.String()
	case ValueKeyword, ValueNumber:
		return v.Text
	case ValueString:
		return fmt.Sprintf("%q", v.Text)
	default:
		return ""
	}
}

// Argument is an attribute argument: a value with an optional name.
type Argument struct {
	Name  string
	Value Value
}

func (a Argument) String() string {
	if a.Name == "" {
		return a.Value.String()
	}

	return fmt.Sprintf("%s: %s", a.Name, a.Value)
}
