package prisma

import (
	"fmt"
	"strings"
)

// FieldAttribute is an `@name(arguments)` attribute following a field's
// type. It renders with a leading space.
type FieldAttribute struct {
	Group     string
	Name      string
	Arguments []Argument
}

func (a FieldAttribute) String() string {
	var builder strings.Builder

	builder.WriteString(" @")

	if a.Group != "" {
		builder.WriteString(a.Group)
		builder.WriteString(".")
	}

	builder.WriteString(a.Name)

	if len(a.Arguments) > 0 {
		arguments := make([]string, 0, len(a.Arguments))

		for _, argument := range a.Arguments {
			arguments = append(arguments, argument.String())
		}

		fmt.Fprintf(&builder, "(%s)", strings.Join(arguments, ", "))
	}

	return builder.String()
}

// BlockAttribute is an `@@name(arguments)` attribute inside a block.
type BlockAttribute struct {
	Group     string
	Name      string
	Arguments []Argument
}

func (a BlockAttribute) write(builder *strings.Builder, level int) {
	builder.WriteString(indent(level))
	builder.WriteString("@@")

	if a.Group != "" {
		builder.WriteString(a.Group)
		builder.WriteString(".")
	}

	builder.WriteString(a.Name)

	if len(a.Arguments) > 0 {
		arguments := make([]string, 0, len(a.Arguments))

		for _, argument := range a.Arguments {
			arguments = append(arguments, argument.String())
		}

		fmt.Fprintf(builder, "(%s)", strings.Join(arguments, ", "))
	}

	builder.WriteString("\n")
}

// AttributeID is the standard `@id` attribute.
func AttributeID() FieldAttribute {
	return FieldAttribute{Name: "id"}
}

// AttributeUnique is the standard `@unique` attribute.
func AttributeUnique() FieldAttribute {
	return FieldAttribute{Name: "unique"}
}

// AttributeDefaultAutoincrement is the standard
// `@default(autoincrement())` attribute.
func AttributeDefaultAutoincrement() FieldAttribute {
	return FieldAttribute{
		Name:      "default",
		Arguments: []Argument{{Value: Call("autoincrement")}},
	}
}

// AttributeDefaultNow is the standard `@default(now())` attribute.
func AttributeDefaultNow() FieldAttribute {
	return FieldAttribute{
		Name:      "default",
		Arguments: []Argument{{Value: Call("now")}},
	}
}
